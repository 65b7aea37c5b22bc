package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shopsync/internal/config"
	"shopsync/internal/report"
	"shopsync/internal/ui"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List saved deployment reports",
	RunE:  runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	appConfig, err := config.Load()
	if err != nil {
		return err
	}
	reportDir := appConfig.Deployment.ReportDir
	if reportDir == "" {
		reportDir = filepath.Join(config.GetConfigPath(), "reports")
	}

	sink := report.NewSink(reportDir, appConfig.Deployment.MaxReports)
	paths, err := sink.List()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		ui.ShowInfo("No deployment reports found")
		return nil
	}

	table := ui.NewTable()
	table.AddHeader("Date", "Status", "Changes", "Applied", "Failed", "File")
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 - paths come from the report directory
		if err != nil {
			continue
		}
		var r report.Report
		if err := json.Unmarshal(data, &r); err != nil || r.Result == nil || r.Summary == nil {
			continue
		}
		table.AddRow(
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(r.Result.OverallStatus),
			fmt.Sprintf("%d", r.Summary.TotalChanges),
			fmt.Sprintf("%d", r.Result.SuccessfulOperations),
			fmt.Sprintf("%d", r.Result.FailedOperations),
			filepath.Base(path),
		)
	}
	table.Render()
	return nil
}
