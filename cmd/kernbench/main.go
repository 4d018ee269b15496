// Command kernbench runs numeric workloads under their execution variants
// and prints a timing comparison per workload.
//
// Usage:
//
//	kernbench [flags] [workload-name ...]
//
// Without arguments it runs all known workloads.
//
// Examples:
//
//	kernbench interp
//	kernbench -runs 25 interp mandel
//	kernbench -config bench.yaml
//	kernbench -list
//	kernbench -cpuinfo
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-perf/internal/cpu"
	"github.com/cwbudde/algo-perf/kernel/interp"
	"github.com/cwbudde/algo-perf/suite"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	size := flag.Int("size", 0, "element count for the interp workload (0 = config value)")
	runs := flag.Int("runs", 0, "measured runs per variant (0 = config value)")
	warmup := flag.Int("warmup", -1, "warmup runs per variant (-1 = config value)")
	workers := flag.Int("workers", 0, "worker count for parallel variants (0 = one per core)")
	list := flag.Bool("list", false, "list workload names and interp strategies")
	cpuinfo := flag.Bool("cpuinfo", false, "print detected CPU features and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernbench [flags] [workload-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Runs numeric workloads under their execution variants and prints\n")
		fmt.Fprintf(os.Stderr, "a timing comparison per workload. Without arguments it runs all.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernbench interp\n")
		fmt.Fprintf(os.Stderr, "  kernbench -runs 25 interp mandel\n")
		fmt.Fprintf(os.Stderr, "  kernbench -config bench.yaml\n")
		fmt.Fprintf(os.Stderr, "  kernbench -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *cpuinfo {
		printCPUInfo()
		return
	}

	cfg, err := suite.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *size > 0 {
		cfg.InterpSize = *size
	}
	if *runs > 0 {
		cfg.Runs = *runs
	}
	if *warmup >= 0 {
		cfg.Warmup = *warmup
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Workloads = args
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	runner, err := suite.NewRunner(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		if err := report.WriteTable(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write report: %v\n", err)
			os.Exit(1)
		}
	}
}

func printList() {
	fmt.Println("Workloads:")
	for _, name := range suite.KnownWorkloads() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println("\nInterp strategies:")
	for _, name := range interp.Strategies() {
		fmt.Printf("  %s\n", name)
	}
}

func newLogger(verbose bool) *zap.Logger {
	dev := zap.NewDevelopmentConfig()
	if !verbose {
		dev.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := dev.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func printCPUInfo() {
	f := cpu.DetectFeatures()
	fmt.Printf("Architecture: %s\n", f.Architecture)
	fmt.Printf("Cores:        %d\n", cpu.Cores())
	fmt.Printf("Best SIMD:    %s\n", f.Best())
	fmt.Printf("SSE2:         %v\n", f.HasSSE2)
	fmt.Printf("AVX:          %v\n", f.HasAVX)
	fmt.Printf("AVX2:         %v\n", f.HasAVX2)
	fmt.Printf("AVX-512:      %v\n", f.HasAVX512)
	fmt.Printf("NEON:         %v\n", f.HasNEON)
}
