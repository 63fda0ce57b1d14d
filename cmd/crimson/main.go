// Package main provides the crimson lab CLI: deterministic scenarios
// that drive the intrusive red-black tree and record a snapshot of the
// tree after every structural step.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	opts := &scenarioOptions{log: logger}

	rootCmd := &cobra.Command{
		Use:   "crimson",
		Short: "Red-black tree lab driver",
		Long: `Crimson drives the intrusive red-black tree through
deterministic scenarios and records a snapshot after every step.

Scenarios:
  rand      shuffled insert, then remove in insertion order
  sorted    ascending insert, then remove in insertion order
  first     remove the minimum until the tree is empty
  last      remove the maximum until the tree is empty
  root      remove the root until the tree is empty
  replace   swap every record for a fresh one, then remove all
  iterate   walk the tree forward and backward
  book      run the order book demo on top of the tree`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().IntVar(&opts.length, "len", 15, "number of records per scenario")
	rootCmd.PersistentFlags().Uint32Var(&opts.seed, "seed", 1337, "seed for the deterministic shuffle")
	rootCmd.PersistentFlags().StringVar(&opts.outDir, "out", "", "directory for snapshot files (none when empty)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "dot", "snapshot format: dot or html")
	rootCmd.PersistentFlags().StringVar(&opts.archiveDir, "archive", "", "pebble directory archiving every snapshot (none when empty)")

	for _, name := range []string{"rand", "sorted", "first", "last", "root", "replace", "iterate"} {
		rootCmd.AddCommand(newScenarioCommand(name, opts))
	}
	rootCmd.AddCommand(newBookCommand(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newScenarioCommand(name string, opts *scenarioOptions) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: "Run the " + name + " scenario",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runScenario(name, opts)
		},
	}
}
