package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zwang271/mltl-inference/search"
)

const defaultMaxBoolFuncSize = 6

var mineFlags = struct {
	dataset    *string
	beamWidth  *int
	maxDepth   *int
	maxVars    *int
	boundsStep *int
	workers    *int
	logLevel   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Search a labeled trace dataset for classifying MLTL formulas",
		RunE:  runMine,
	}
	mineFlags.dataset = cmd.Flags().String("dataset", "", "dataset root containing pos_train/neg_train/pos_test/neg_test (required)")
	mineFlags.beamWidth = cmd.Flags().Int("beam-width", 256, "capacity of each of the best/worst formula banks")
	mineFlags.maxDepth = cmd.Flags().Int("max-depth", 3, "maximum temporal nesting depth")
	mineFlags.maxVars = cmd.Flags().Int("max-vars", 3, "number of trace variables combined into one Boolean sub-function")
	mineFlags.boundsStep = cmd.Flags().Int("bounds-step", 1, "stride over the [lb,ub] bounds grid")
	mineFlags.workers = cmd.Flags().Int("workers", 0, "worker pool size (0 = all cores)")
	mineFlags.logLevel = cmd.Flags().String("log-level", "info", "one of debug|info|warn|error")
	cmd.MarkFlagRequired("dataset")
	rootCmd.AddCommand(cmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	level, err := parseLogLevel(*mineFlags.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := search.Config{
		DatasetPath: *mineFlags.dataset,
		MaxVars:     *mineFlags.maxVars,
		// No flag exposes this independently; defaultMaxBoolFuncSize
		// matches the typical value DefaultConfig uses.
		MaxBoolFuncSize: defaultMaxBoolFuncSize,
		BoundsStep:      *mineFlags.boundsStep,
		MaxFormulas:     *mineFlags.beamWidth,
		MaxDepth:        *mineFlags.maxDepth,
		Workers:         *mineFlags.workers,
	}

	driver, err := search.NewDriver(cfg, logger)
	if err != nil {
		return fmt.Errorf("mltlminer: %w", err)
	}
	defer driver.Close()

	report, err := driver.Run(context.Background())
	if err != nil {
		return fmt.Errorf("mltlminer: %w", err)
	}

	printReport(os.Stdout, report)
	return nil
}

func printReport(w *os.File, report search.Report) {
	printRanking(w, "best bank, by training accuracy", report.BestByTrain)
	printRanking(w, "best bank, by test accuracy", report.BestByTest)
	printRanking(w, "worst bank, by training accuracy", report.WorstByTrain)
	printRanking(w, "worst bank, by test accuracy", report.WorstByTest)
}

func printRanking(w *os.File, title string, results []search.Result) {
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "%-8s %-8s %s\n", "train", "test", "formula")
	for _, r := range results {
		fmt.Fprintf(w, "%-8.4f %-8.4f %s\n", r.TrainAcc, r.TestAcc, r.Formula.AsPrettyString())
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("mltlminer: unknown log level %q", s)
	}
}
