package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"

	"github.com/ironsheep/stimulus-features/internal/batch"
	"github.com/ironsheep/stimulus-features/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("stimulus-features %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	cfg, err := parseArgs(os.Args)
	if err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprint(os.Stderr, usage.text)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "stimulus-features: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("STIMULUS_LOG_LEVEL") == "debug" {
		cfg.Verbose = true
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stimulus-features: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if cfg.Verbose {
		logger.Debugf("stimulus-features v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := batch.Run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Errorf("Feature extraction failed: %v", err)
		stop()
		logger.Close()
		os.Exit(1)
	}
}

type usageError struct {
	text string
}

func (e *usageError) Error() string { return e.text }

// parseArgs builds the run configuration: defaults, then the optional YAML
// file, then any flags given on the command line.
func parseArgs(args []string) (*config.Config, error) {
	parser := argparse.NewParser("stimulus-features",
		"Extract pixel counts and convex hull areas of two color groups from stimulus images")

	configFile := parser.String("c", "config", &argparse.Options{Help: "YAML config file"})
	input := parser.String("i", "input", &argparse.Options{Help: "Directory searched recursively for images"})
	output := parser.String("o", "output", &argparse.Options{Help: "CSV file to write"})
	ext := parser.String("", "ext", &argparse.Options{Help: "Image file extension (default " + config.DefaultExtension + ")"})
	color1 := parser.String("", "color1", &argparse.Options{Help: "First reference color (default " + config.DefaultColor1 + ")"})
	color2 := parser.String("", "color2", &argparse.Options{Help: "Second reference color (default " + config.DefaultColor2 + ")"})
	background := parser.String("", "background", &argparse.Options{Help: "Mask background color (default " + config.DefaultBackground + ")"})
	hullPolicy := parser.Selector("", "hull", []string{"zero", "strict", "error"}, &argparse.Options{Help: "Degenerate hull handling: zero area, or strict (alias error) to fail the image"})
	skipErrors := parser.Flag("", "skip-errors", &argparse.Options{Help: "Skip images that fail instead of aborting the run"})
	maskDir := parser.String("", "masks", &argparse.Options{Help: "Write label mask previews to this directory"})
	maskScale := parser.Int("", "mask-scale", &argparse.Options{Help: "Enlarge mask previews by this factor", Default: 0})
	checkComponents := parser.Flag("", "check-components", &argparse.Options{Help: "Warn when blob counts differ from filename labels"})
	verbose := parser.Flag("", "verbose", &argparse.Options{Help: "Enable debug logging"})

	if err := parser.Parse(args); err != nil {
		return nil, &usageError{text: parser.Usage(err)}
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.InputDir, *input)
	override(&cfg.OutputFile, *output)
	override(&cfg.Extension, *ext)
	override(&cfg.Color1, *color1)
	override(&cfg.Color2, *color2)
	override(&cfg.Background, *background)
	override(&cfg.HullPolicy, *hullPolicy)
	override(&cfg.MaskDir, *maskDir)
	if *skipErrors {
		cfg.OnError = config.OnErrorSkip
	}
	if *maskScale > 0 {
		cfg.MaskScale = *maskScale
	}
	if *checkComponents {
		cfg.CheckComponents = true
	}
	if *verbose {
		cfg.Verbose = true
	}

	if cfg.InputDir == "" {
		return nil, &usageError{text: parser.Usage(errors.New("an input directory is required (--input or input_dir in --config)"))}
	}
	return cfg, nil
}
