package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/thelolagemann/sm83/internal/corpus"
	"github.com/thelolagemann/sm83/internal/gameboy"
	"github.com/thelolagemann/sm83/pkg/debug"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sm83",
		Short: "SM83 core runner",
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	logger := func() log.Logger {
		if verbose {
			return log.NewDebug()
		}
		return log.New()
	}

	// run command
	var cycles uint64
	var debugAddr string

	runCmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Execute a ROM for a T-cycle budget, echoing serial output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			opts := []gameboy.Opt{
				gameboy.WithLogger(logger()),
				gameboy.WithSerialWriter(os.Stdout),
			}
			if debugAddr != "" {
				hub := debug.NewHub(logger())
				go hub.Run()
				go func() {
					if err := http.ListenAndServe(debugAddr, hub); err != nil {
						fmt.Fprintf(os.Stderr, "debug server: %v\n", err)
					}
				}()
				opts = append(opts, gameboy.WithDebugHub(hub))
			}

			gb, err := gameboy.NewGameBoy(rom, opts...)
			if err != nil {
				return err
			}
			gb.Run(cycles)
			fmt.Fprintf(os.Stderr, "\nexecuted %d machine cycles\n", gb.Cycles())
			return nil
		},
	}
	runCmd.Flags().Uint64Var(&cycles, "cycles", 10*gameboy.ClockSpeed, "T-cycle budget")
	runCmd.Flags().StringVar(&debugAddr, "debug-addr", "", "serve a websocket debug stream on this address")
	rootCmd.AddCommand(runCmd)

	// doctor command
	var output string

	doctorCmd := &cobra.Command{
		Use:   "doctor <rom>",
		Short: "Execute a ROM, emitting a gameboy-doctor trace line per instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			gb, err := gameboy.NewGameBoy(rom,
				gameboy.WithLogger(log.NewNullLogger()),
				gameboy.WithDoctor(out),
			)
			if err != nil {
				return err
			}
			gb.Run(cycles)
			return nil
		},
	}
	doctorCmd.Flags().Uint64Var(&cycles, "cycles", 10*gameboy.ClockSpeed, "T-cycle budget")
	doctorCmd.Flags().StringVarP(&output, "output", "o", "", "write the trace to a file instead of stdout")
	rootCmd.AddCommand(doctorCmd)

	// corpus command
	corpusCmd := &cobra.Command{
		Use:   "corpus <file>...",
		Short: "Run single-opcode conformance records against the core",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := corpus.NewRunner(logger())
			failed := 0
			for _, path := range args {
				n, err := runner.RunFile(path)
				if err != nil {
					return err
				}
				failed += n
			}
			if failed > 0 {
				return fmt.Errorf("%d records failed", failed)
			}
			fmt.Println("all records passed")
			return nil
		},
	}
	rootCmd.AddCommand(corpusCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
