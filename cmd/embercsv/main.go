package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"

	"github.com/reoring/embercsv"
)

// defaultFeatures is the EMBER header/section set the tool was built around.
// Override with -features.
var defaultFeatures = []string{
	"md5",
	"machine",
	"sizeof_code",
	"major_linker_version",
	"minor_linker_version",
	"major_operating_system_version",
	"minor_operating_system_version",
	"major_image_version",
	"minor_image_version",
	"major_subsystem_version",
	"minor_subsystem_version",
	"sizeof_headers",
	"subsystem",
	"sizeof_heap_commit",
	"sections_mean_entropy",
	"sections_min_entropy",
	"sections_max_entropy",
	"sections_mean_rawsize",
	"sections_min_rawsize",
	"sections_max_rawsize",
	"sections_mean_virtualsize",
	"sections_min_virtualsize",
	"sections_max_virtualsize",
	"label",
}

func main() {
	var (
		featuresPath string
		skipErrors   bool
		progress     int64
		verbose      bool
		dumpOnError  bool
	)
	flag.StringVar(&featuresPath, "features", "", "YAML file listing the features to extract (default: built-in EMBER set)")
	flag.BoolVar(&skipErrors, "skip-errors", false, "emit valid rows and report failures instead of aborting on the first")
	flag.Int64Var(&progress, "progress", 10000, "rows between progress log lines")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&dumpOnError, "dump-on-error", false, "dump each failing record to stderr")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: embercsv [flags] input.jsonl[.gz] ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	features := defaultFeatures
	if featuresPath != "" {
		var err error
		features, err = embercsv.LoadFeatures(featuresPath)
		if err != nil {
			logger.Error("loading features", "err", err)
			os.Exit(1)
		}
	}

	opt := embercsv.Options{Logger: logger, ProgressEvery: progress}
	if skipErrors {
		opt.Mode = embercsv.SkipAndReport
	}
	if dumpOnError {
		opt.OnFailure = func(rec embercsv.Mapping, iss embercsv.Issues) {
			fmt.Fprintf(os.Stderr, "record failed: %s\n", iss.Error())
			if rec != nil {
				spew.Fdump(os.Stderr, rec)
			}
		}
	}
	conv := embercsv.NewConverter(features, opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exit := 0
	for _, path := range flag.Args() {
		if err := conv.Convert(ctx, path); err != nil {
			logger.Error("conversion failed", "input", path, "err", err)
			exit = 1
		}
	}
	os.Exit(exit)
}
