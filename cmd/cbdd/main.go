// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command cbdd runs classic BDD workloads (CNF formulas, pigeonhole problems
// and n-queens) and reports statistics about the node table and the caches.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/dalzilio/cbdd/internal/log"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "cbdd [subcommand]",
	Short:             "cbdd builds BDDs with complemented edges for classic benchmarks",
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

var (
	capacity *int
	buckets  *int
	gcEvery  *int
	verbose  *bool
	sections *string
)

func init() {
	flags := rootCmd.PersistentFlags()
	capacity = flags.IntP("capacity", "n", 1<<22, "number of cells in the node table")
	buckets = flags.Int("buckets", 0, "number of buckets in the unique table (default: capacity)")
	gcEvery = flags.Int("gc-every", 50, "collect garbage every N steps (0 to disable)")
	verbose = flags.BoolP("verbose", "v", false, "log debug records")
	sections = flags.String("log", "cli", "comma-separated list of log sections to enable (bdd, cli, all)")

	rootCmd.AddCommand(CnfCmd)
	rootCmd.AddCommand(PhpCmd)
	rootCmd.AddCommand(QueensCmd)
}

var logger = log.DefaultLogger.With("section", "cli")

func setupLogging(cmd *cobra.Command, args []string) error {
	if *verbose {
		log.Level.Set(slog.LevelDebug)
	}
	log.Enable(strings.Split(*sections, ",")...)
	return nil
}
