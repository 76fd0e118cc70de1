// Command tracescope builds the step trace of a classic search or scan
// algorithm and prints it, encodes it, or plays it back in the terminal.
//
//	tracescope [flags] <problem> <args...>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/lvtrace/playback"
)

var version = "dev"

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// config holds all CLI configuration parsed from flags, the optional config
// file and positional arguments.
type config struct {
	format      string
	play        bool
	interval    time.Duration
	speed       float64
	maxSteps    int
	configPath  string
	verbose     bool
	showVersion bool
	problem     string
	args        []string
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if cfg.showVersion {
		fmt.Printf("tracescope %s\n", version)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// parseFlags parses args into a config. Values from -config apply only to
// flags that were not set explicitly.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("tracescope", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.format, "format", formatText, "Output format: text, json, yaml")
	fs.BoolVar(&cfg.play, "play", false, "Play the trace in an interactive terminal player")
	fs.DurationVar(&cfg.interval, "interval", playback.DefaultInterval, "Player tick interval at speed 1")
	fs.Float64Var(&cfg.speed, "speed", 1, "Player speed multiplier")
	fs.IntVar(&cfg.maxSteps, "max-steps", 0, "Abort the build after this many steps (0: no limit)")
	fs.StringVar(&cfg.configPath, "config", "", "YAML file with defaults for format, interval, speed, max_steps")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Verbose logging")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.configPath != "" {
		fc, err := loadConfigFile(cfg.configPath)
		if err != nil {
			return cfg, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := fc.apply(&cfg, set); err != nil {
			return cfg, err
		}
	}

	switch cfg.format {
	case formatText, formatJSON, formatYAML:
	default:
		return cfg, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.interval <= 0 {
		return cfg, fmt.Errorf("interval must be positive, got %s", cfg.interval)
	}
	if cfg.speed <= 0 {
		return cfg, fmt.Errorf("speed must be positive, got %g", cfg.speed)
	}
	if cfg.maxSteps < 0 {
		return cfg, fmt.Errorf("max-steps must not be negative, got %d", cfg.maxSteps)
	}

	if fs.NArg() > 0 {
		cfg.problem = fs.Arg(0)
		cfg.args = fs.Args()[1:]
	}

	return cfg, nil
}

// newLogger returns a text logger on w; verbose lowers the level to Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run builds the requested trace and dispatches to the output mode.
// Returns an exit code: 0 for success, 1 for failure, 2 for usage errors.
func run(ctx context.Context, cfg config, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, cfg.verbose)

	if cfg.problem == "" {
		printHelp(stderr, version)
		return 2
	}
	p, ok := problems[cfg.problem]
	if !ok {
		logger.Error("unknown problem", "problem", cfg.problem)
		return 2
	}

	start := time.Now()
	v, err := p.build(cfg.args, buildOptions{ctx: ctx, maxSteps: cfg.maxSteps})
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "usage: tracescope %s %s\n", cfg.problem, p.usage)
			return 2
		}
		logger.Error("build failed", "problem", cfg.problem, "err", err)
		return 1
	}
	logger.Debug("trace built",
		"problem", cfg.problem,
		"family", v.Family(),
		"steps", v.Len(),
		"elapsed", time.Since(start))

	if cfg.play {
		if err := runPlayer(ctx, cfg, v, logger); err != nil {
			logger.Error("player failed", "err", err)
			return 1
		}
		return 0
	}

	if err := v.Encode(stdout, cfg.format); err != nil {
		logger.Error("write failed", "format", cfg.format, "err", err)
		return 1
	}

	return 0
}
