package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mselkit/ganttline/internal/core/model"
	"github.com/mselkit/ganttline/internal/util"
	"github.com/mselkit/ganttline/internal/viewer"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Output related
	outputFormat string

	// Timeline related
	labelField   string
	serialFilter string
	sortMode     string
	disambiguate bool

	rootCmd = &cobra.Command{
		Use:   "ganttline [flags] <csv>",
		Short: "Gantt timeline viewer for MSEL event logs",
		Long: `ganttline derives a two-level Gantt timeline from an MSEL-style CSV event log
(columns: Serial, Time, Subject, Message, ImageURL, From, Method).

The overview shows one interval per serial; selecting a serial shows one
interval per inject, labeled by persona or channel.

Examples:
  ganttline events.csv                         # Overview timeline as a table
  ganttline --output chart events.csv          # Overview as terminal Gantt bars
  ganttline --serial EX-042 events.csv         # One serial's inject timeline
  ganttline --serial EX-042 --label channel events.csv
  ganttline --sort start --output json events.csv
  ganttline view events.csv                    # Interactive viewer`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}
)

const defaultLogFile = "~/.ganttline/logs/app.log"

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile,
		"Log file path")
	rootCmd.PersistentFlags().StringVar(&labelField, "label", "persona",
		"Detail axis label column (persona, channel)")
	rootCmd.PersistentFlags().BoolVar(&disambiguate, "disambiguate", true,
		"Append a sequence number to detail axis labels so equal values stay distinct")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, chart)")
	rootCmd.Flags().StringVarP(&serialFilter, "serial", "s", "",
		"Render the inject-level timeline of this serial instead of the overview")
	rootCmd.Flags().StringVar(&sortMode, "sort", "identity",
		"Overview row order (identity = first-occurrence, start = chronological)")
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	config, err := buildConfig(args[0])
	if err != nil {
		return err
	}
	config.OutputFormat = outputFormat

	return viewer.New(config).Run()
}

func buildConfig(csvPath string) (*viewer.Config, error) {
	field, err := parseLabelField(labelField)
	if err != nil {
		return nil, err
	}

	switch sortMode {
	case "identity", "start":
	default:
		return nil, fmt.Errorf("invalid sort mode %q: must be identity or start", sortMode)
	}

	return &viewer.Config{
		CSVPath:      csvPath,
		LabelField:   field,
		Serial:       serialFilter,
		SortByStart:  sortMode == "start",
		Disambiguate: disambiguate,
	}, nil
}

func parseLabelField(value string) (model.LabelField, error) {
	switch strings.ToLower(value) {
	case "persona", "":
		return model.LabelPersona, nil
	case "channel":
		return model.LabelChannel, nil
	default:
		return model.LabelPersona, fmt.Errorf("invalid label field %q: must be persona or channel", value)
	}
}

func initLogging() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	path := expandPath(logFile)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, path, debug)
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
