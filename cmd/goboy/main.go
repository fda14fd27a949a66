package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/serial"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/profile"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
	"github.com/thelolagemann/gomeboy-core/pkg/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel    string
		debug       bool
		trace       bool
		maxCycles   uint64
		webAddr     string
		profilePath string
		serialOut   bool
	)

	rootCmd := &cobra.Command{
		Use:          "goboy [rom]",
		Short:        "Run a Game Boy ROM on the SM83 core",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := log.NewWithLevel(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}

			// open the rom file
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts := []gameboy.Opt{gameboy.WithLogger(logger), gameboy.MaxCycles(maxCycles)}
			if debug {
				opts = append(opts, gameboy.Debug())
			}
			if serialOut {
				opts = append(opts, gameboy.WithSerialObserver(serial.NewWriter(cmd.OutOrStdout())))
			}

			var tr tracers
			if trace {
				tr = append(tr, logTracer{logger})
			}
			var hist *profile.Histogram
			if profilePath != "" {
				hist = profile.NewHistogram()
				tr = append(tr, hist)
			}
			if len(tr) > 0 {
				opts = append(opts, gameboy.WithTracer(tr))
			}

			if webAddr != "" {
				hub := web.NewHub(logger)
				go hub.Run(ctx)
				go func() {
					if err := hub.ListenAndServe(ctx, webAddr); err != nil {
						logger.Errorf("web: %v", err)
					}
				}()

				status := make(chan gameboy.Status, 1)
				go func() {
					for {
						select {
						case <-ctx.Done():
							return
						case s := <-status:
							if err := hub.SendStatus(s); err != nil {
								logger.Errorf("web: %v", err)
							}
						}
					}
				}()
				opts = append(opts, gameboy.WithSerialObserver(hub), gameboy.WithStatus(status, 0))
			}

			g, err := gameboy.NewGameBoy(rom, opts...)
			if err != nil {
				return err
			}

			err = g.Run(ctx)
			if hist != nil {
				if err := hist.Save(profilePath, 24); err != nil {
					logger.Errorf("saving profile: %v", err)
				}
				logger.Infof("profile of %d instructions written to %s", hist.Total(), profilePath)
			}

			switch {
			case errors.Is(err, gameboy.ErrBreakpoint), errors.Is(err, gameboy.ErrCycleLimit), errors.Is(err, context.Canceled):
				logger.Infof("stopped: %v (PC=0x%04X, %d cycles)", err, g.CPU.PC, g.Timer.Cycles())
				return nil
			default:
				return err
			}
		},
	}

	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (error, warn, info, debug)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Stop at the LD B, B breakpoint")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "Log every instruction executed (at debug level)")
	rootCmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "Stop after this many M-cycles (0 = no limit)")
	rootCmd.Flags().StringVar(&webAddr, "web", "", "Stream serial output and status to websocket clients at this address")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "Write a PNG chart of executed instructions to this path")
	rootCmd.Flags().BoolVar(&serialOut, "serial", true, "Echo serial output to stdout")

	return rootCmd
}

// tracers fans a trace out to several tracers.
type tracers []cpu.Tracer

func (t tracers) Trace(pc uint16, opcode uint8, instruction cpu.Instruction) {
	for _, tr := range t {
		tr.Trace(pc, opcode, instruction)
	}
}

type logTracer struct {
	log log.Logger
}

func (l logTracer) Trace(pc uint16, opcode uint8, instruction cpu.Instruction) {
	l.log.Debugf("0x%04X  %02X  %s", pc, opcode, instruction)
}
