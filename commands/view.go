package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/mselkit/ganttline/internal/viewer"
	"github.com/spf13/cobra"
)

var viewNoFollow bool

var viewCmd = &cobra.Command{
	Use:   "view <csv>",
	Short: "Interactive terminal timeline viewer",
	Long: `Opens the timeline in an interactive terminal view.

Keys:
  n / right arrow   focus next serial
  p / left arrow    focus previous serial
  o / Esc           back to the overview
  e                 expand/collapse the focused serial in place
  l                 toggle persona/channel axis labels
  r                 reload the CSV
  q / Ctrl+C        quit

The CSV is watched for changes and reloaded automatically unless --no-follow
is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVar(&viewNoFollow, "no-follow", false,
		"Do not watch the CSV for changes")
}

func runView(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	config, err := buildConfig(args[0])
	if err != nil {
		return err
	}
	config.OutputFormat = "chart"
	config.NoFollow = viewNoFollow

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		cancel()
	}()

	return viewer.New(config).RunInteractive(ctx)
}
