// Package main is the entry point for the stanza editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/stanza/internal/app"
	"github.com/dshills/stanza/internal/config"
	"github.com/dshills/stanza/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	cfgPath := flags.configPath
	if cfgPath == "" {
		// Best effort; an unresolvable config dir just means defaults.
		cfgPath, _ = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, cleanup, err := buildLogger(cfg, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()
	app.SetLogger(logger)

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		Backend:    term,
		Logger:     logger,
		Files:      flags.files,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Stop()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return application.ExitCode()
}

// buildLogger wires logging to the configured file. Without one, logs
// are discarded: the terminal belongs to the renderer.
func buildLogger(cfg *config.Config, flags cliFlags) (*app.Logger, func(), error) {
	level := cfg.Logging.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}

	path := cfg.Logging.File
	if flags.logFile != "" {
		path = flags.logFile
	}
	if path == "" {
		return app.NullLogger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(level),
		Output: f,
		Prefix: "stanza",
	})
	return logger, func() { _ = f.Close() }, nil
}

type cliFlags struct {
	configPath string
	logLevel   string
	logFile    string
	files      []string
}

func parseFlags() cliFlags {
	var flags cliFlags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&flags.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&flags.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Stanza - a modal terminal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: stanza [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stanza                      Open with a scratch buffer\n")
		fmt.Fprintf(os.Stderr, "  stanza file.go              Open a file\n")
		fmt.Fprintf(os.Stderr, "  stanza -log-file /tmp/s.log Debug a session\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Stanza %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch flags.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", flags.logLevel)
		os.Exit(1)
	}

	flags.files = flag.Args()

	return flags
}
