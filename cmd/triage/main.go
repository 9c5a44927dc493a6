package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/triage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		rulesPath = flag.String("rules", "./configs/triage.yaml", "path to the triage rules file")
		incoming  = flag.String("incoming", "./data/incoming", "incoming packages directory")
		clean     = flag.String("clean", "./data/clean", "clean packages directory")
		flagged   = flag.String("flagged", "./data/flagged", "flagged packages directory")
		resolved  = flag.String("resolved", "./data/resolved", "resolved packages directory")
		pkgID     = flag.String("package", "", "process a single package by id (default: all incoming)")
		resolve   = flag.String("resolve", "", "move a flagged package to resolved and exit")
		timeout   = flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	)
	flag.Parse()

	logger := common.NewLogger()

	cfg := common.TriageConfig{
		RulesPath:   *rulesPath,
		IncomingDir: *incoming,
		CleanDir:    *clean,
		FlaggedDir:  *flagged,
		ResolvedDir: *resolved,
	}
	store := triage.NewStore(cfg, logger)

	if *resolve != "" {
		dest, err := store.Resolve(*resolve)
		if err != nil {
			printError("Error: resolving %s: %v\n", *resolve, err)
			os.Exit(1)
		}
		fmt.Printf("resolved %s -> %s\n", *resolve, dest)
		return
	}

	rules, err := triage.LoadRules(cfg.RulesPath)
	if err != nil {
		printError("Error: loading rules from %s: %v\n", cfg.RulesPath, err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		TessdataDir:      os.Getenv("TESSDATA_PREFIX"),
		ArtifactCacheDir: "./tmp",
	}, logger)
	engine := triage.NewEngine(logger, store, rules, extractor)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	if *pkgID != "" {
		res, err := engine.Run(ctx, *pkgID)
		if err != nil {
			printError("Error: triaging %s: %v\n", *pkgID, err)
			os.Exit(1)
		}
		if res == nil {
			fmt.Printf("%s was empty and has been removed\n", *pkgID)
			return
		}
		printResult(res.PackageID, string(res.Status), res.DestPath)
	} else {
		results, err := engine.RunAll(ctx)
		if err != nil {
			printError("Error: triage run: %v\n", err)
			os.Exit(1)
		}
		for _, res := range results {
			printResult(res.PackageID, string(res.Status), res.DestPath)
		}
		fmt.Printf("%d package(s) in %s\n", len(results), time.Since(start).Round(time.Millisecond))
	}
}

func printResult(packageID, status, dest string) {
	fmt.Printf("%-30s %-22s %s\n", packageID, status, dest)
}
