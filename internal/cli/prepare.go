// internal/cli/prepare.go
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gitlab-timesheet/internal/config"
	"gitlab-timesheet/internal/export"
	"gitlab-timesheet/internal/gitlab"
	"gitlab-timesheet/internal/timesheet"
)

var (
	prepareAllProjects bool
	prepareCopyFrom    string
	prepareCopyTo      string
	prepareNoSave      bool
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Prepare the monthly table and save it as an Excel file",
	Args:  cobra.NoArgs,
	RunE:  runPrepare,
}

func init() {
	prepareCmd.Flags().BoolVar(&prepareAllProjects, "all-projects", false,
		"Include all active projects, not just owned/membership ones")
	prepareCmd.Flags().StringVar(&prepareCopyFrom, "copy-from", "",
		"Day of month (e.g. 05) to copy a row from before saving")
	prepareCmd.Flags().StringVar(&prepareCopyTo, "copy-to", "",
		"Day of month to copy the row onto")
	prepareCmd.Flags().BoolVar(&prepareNoSave, "no-save", false,
		"Print the table without writing the Excel file")
	prepareCmd.MarkFlagsRequiredTogether("copy-from", "copy-to")
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg.LogLevel)

	ctx := cmd.Context()
	client := gitlab.NewClient(cfg.GitLabURL, cfg.GitLabToken, logger)

	first, last := timesheet.ResolvePeriod(time.Now(), cfg.CutoverDay)
	logger.Info("Resolved reporting period",
		"first", first.Format("2006-01-02"), "last", last.Format("2006-01-02"))

	projects := client.DiscoverProjects(ctx, cfg.ProjectIDSet, prepareAllProjects)
	if len(projects) == 0 {
		logger.Warn("No projects matched the configured allow-list")
	}

	aggregator := timesheet.NewAggregator(client, logger, cfg.UserID)
	buckets := aggregator.Aggregate(ctx, projects, first, last)
	rows := timesheet.BuildTable(buckets, cfg.UserID, cfg.MandayHours)

	if prepareCopyFrom != "" {
		rows = timesheet.CopyFromTo(rows, prepareCopyFrom, prepareCopyTo, logger)
	}

	export.Print(os.Stdout, rows)

	if !prepareNoSave {
		path, err := export.WriteXLSX(cfg.OutputDir, rows, cfg.UserID)
		if err != nil {
			return fmt.Errorf("failed to save table: %w", err)
		}
		fmt.Printf("> Data has been saved to %s\n", path)
	}

	return nil
}
