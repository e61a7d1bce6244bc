// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/inp"
	"github.com/cpmech/lgar/out"
	"github.com/cpmech/lgar/sim"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logger  zerolog.Logger
	verbose bool   // show messages of the simulation loop
	alias   string // word appended to the simulation key
	plot    bool   // save figures of results
	nowrite bool   // skip writing result tables
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger = zerolog.New(output).With().Timestamp().Str("app", "lgar").Logger()
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd returns the lgar command line
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lgar",
		Short:         "Layered Green-Ampt with Redistribution soil column simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages of the simulation loop")
	root.PersistentFlags().StringVarP(&alias, "alias", "a", "", "word appended to the simulation key")
	root.AddCommand(runCmd(), checkCmd())
	return root
}

// runCmd runs simulations
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file.sim>...",
		Short: "Run simulations and write results to the output directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			for _, fn := range args {
				err := runOne(ctx, fn)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plot, "plot", false, "save figures of results")
	cmd.Flags().BoolVar(&nowrite, "nowrite", false, "do not write result tables")
	return cmd
}

// checkCmd reads and validates simulation files
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.sim>...",
		Short: "Read and validate simulation files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, fn := range args {
				s, err := inp.ReadSim(fn, alias, false)
				if err != nil {
					logger.Error().Err(err).Str("file", fn).Msg("invalid simulation")
					return err
				}
				logger.Info().Str("file", fn).Str("key", s.Key).
					Int("layers", s.Global.NumLayers()).
					Float64("depth_cm", s.Global.SoilDepth).
					Int("timesteps", s.Nsteps).
					Int("substeps", s.Nsub).
					Msg("simulation is valid")
				if verbose {
					io.Pf("%v\n", s.Soils)
				}
			}
			return nil
		},
	}
}

// runOne runs one simulation file
func runOne(ctx context.Context, fn string) (err error) {
	log := logger.With().Str("file", fn).Logger()
	m, err := sim.NewMain(fn, alias, !nowrite || plot, verbose)
	if err != nil {
		log.Error().Err(err).Msg("cannot allocate simulation")
		return
	}
	log.Info().Str("key", m.Sim.Key).Int("timesteps", m.Sim.Nsteps).Int("substeps", m.Sim.Nsub).Msg("simulation started")
	runErr := m.Run(ctx)

	// results of completed timesteps are kept even on failures
	if !nowrite && len(m.Results) > 0 {
		files, err := out.WriteResults(m)
		if err != nil {
			log.Error().Err(err).Msg("cannot write results")
			return err
		}
		log.Info().Strs("files", files).Msg("results written")
	}
	if plot && len(m.Results) > 0 {
		out.PlotResults(m, m.Sim.DirOut, m.Sim.Key)
		log.Info().Str("dirout", m.Sim.DirOut).Msg("figures saved")
	}
	if len(m.Warnings) > 0 {
		log.Warn().Int("count", len(m.Warnings)).Float64("max_residual_cm", m.Summary.MaxAbsRes).Msg("mass balance warnings")
	}
	if runErr != nil {
		log.Error().Err(runErr).Int("completed", len(m.Results)).Msg("simulation failed")
		return runErr
	}
	log.Info().
		Float64("precip_cm", m.Summary.Precip).
		Float64("runoff_cm", m.Summary.Runoff).
		Float64("infil_cm", m.Summary.Infil).
		Float64("perc_cm", m.Summary.Perc).
		Float64("aet_cm", m.Summary.Aet).
		Float64("residual_cm", m.Summary.Residual).
		Msg("simulation finished")
	return
}
