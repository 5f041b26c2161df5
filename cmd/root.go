// Package cmd implements the parley command line interface.
package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/parley-sh/parley/internal/app"
	"github.com/parley-sh/parley/internal/config"
	"github.com/parley-sh/parley/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	serverURL             string
	transcriptPath        string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "TUI for viewing conversation transcripts and composing messages",
	Long: `Parley is a terminal conversation viewer and composer. It renders a
live transcript feed of messages and breadcrumbs, stages pasted or
dropped images as attachments, and sends composed messages over a
websocket backend. With no backend configured it runs in offline
loopback mode, which also makes it a standalone JSONL transcript
viewer.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "Websocket backend URL (overrides config)")
	rootCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "JSONL transcript file to open (overrides config)")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("parley %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("parley %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Flags win over the config file
	if serverURL != "" {
		cfg.SetServerURL(serverURL)
	}
	if transcriptPath != "" {
		cfg.SetTranscriptPath(transcriptPath)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	defer logger.Close()

	m, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("error starting app: %w", err)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
