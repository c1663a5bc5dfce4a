/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Global flags
var (
	flagAPIKey    string
	flagLimit     int
	flagPage      int
	flagJSON      bool
	flagWidth     int
	flagLogLevel  string
	flagLogFile   string
	flagNoHistory bool
)

// logger is configured by the root command before any subcommand runs
var logger = zerolog.Nop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lfm",
	Short: "Look up music metadata on Last.fm",
	Long: `lfm looks up artists, albums, tracks, tags and charts on Last.fm.

Every lookup needs a Last.fm API key. Run 'lfm auth' to store one in
~/.config/lfm/config.yaml, or set LFM_API_KEY (LASTFM_API_KEY and the
VITE_, REACT_APP_ and NEXT_PUBLIC_ variants are also recognized).

You can get an API key from: https://www.last.fm/api/account/create`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = setupLogger(flagLogFile, flagLogLevel)
		log.Logger = logger
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagAPIKey, "api-key", "", "Last.fm API key (overrides config and environment)")
	flags.IntVar(&flagLimit, "limit", 0, "Number of results per page (default from config)")
	flags.IntVar(&flagPage, "page", 0, "Page of results to fetch")
	flags.BoolVar(&flagJSON, "json", false, "Print results as JSON")
	flags.IntVar(&flagWidth, "width", 0, "Output width in columns (0=auto)")
	flags.StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&flagLogFile, "log-file", "", "Log file path (default: stderr)")
	flags.BoolVar(&flagNoHistory, "no-history", false, "Do not record this lookup in the history")
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logFile, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Set up output
	var output *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			output = os.Stderr
		} else {
			output = f
		}
	} else {
		output = os.Stderr
	}

	// Create logger
	l := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Use pretty console output if logging to stderr
	if output == os.Stderr {
		l = l.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return l
}
