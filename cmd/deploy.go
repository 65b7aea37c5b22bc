package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"shopsync/internal/attribute"
	"shopsync/internal/config"
	"shopsync/internal/deploy"
	"shopsync/internal/diff"
	"shopsync/internal/report"
	"shopsync/internal/ui"
)

var (
	deployFile         string
	deployYes          bool
	deployCI           bool
	deployDryRun       bool
	deployFailOnDelete bool
	deployInclude      []string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Apply local configuration changes to the platform",
	Long: `Compare the local desired-state configuration against the live platform
state, show the change set, and apply it through the staged deployment
pipeline. Stages run in a fixed order and a failing stage never prevents
later stages from running.`,
	Run: runDeployCmd,
}

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().StringVarP(&deployFile, "file", "f", config.DefaultDesiredFile, "Desired-state configuration file")
	deployCmd.Flags().BoolVarP(&deployYes, "yes", "y", false, "Skip the confirmation prompt")
	deployCmd.Flags().BoolVar(&deployCI, "ci", false, "Non-interactive mode: no prompts, machine-friendly output")
	deployCmd.Flags().BoolVarP(&deployDryRun, "dry-run", "d", false, "Show what would be deployed without executing")
	deployCmd.Flags().BoolVar(&deployFailOnDelete, "fail-on-delete", false, "Fail before deploying when the diff contains deletions")
	deployCmd.Flags().StringSliceVar(&deployInclude, "include", nil, "Restrict to the named sections (e.g. \"Channels\")")
}

func runDeployCmd(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cfg, err := config.LoadDesired(deployFile)
	if err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitValidationFailed)
	}
	if err := deploy.Preflight(cfg); err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitValidationFailed)
	}

	store, appConfig, err := buildStore()
	if err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitFailure)
	}

	// The cache and resolver span the whole diff-and-deploy run, so an
	// attribute resolved during diff is never looked up again during deploy.
	cache := attribute.NewCache()
	resolver := attribute.NewResolver(store, cache, func(msg string) { ui.ShowInfo(msg) })
	engine := diff.NewEngine(store, resolver, diff.Options{Include: deployInclude})

	spinner := ui.NewSpinner("Fetching remote configuration...")
	spinner.Start()
	summary, err := engine.Compare(ctx, cfg)
	spinner.Stop(err == nil, "")
	if err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitFailure)
	}

	ui.RenderDiff(summary)
	if !summary.HasChanges() {
		return
	}

	policy := deploy.Policy{FailOnDelete: deployFailOnDelete || appConfig.Deployment.FailOnDelete}
	if err := deploy.CheckPolicy(summary, policy); err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitPolicyBlocked)
	}

	if deployDryRun {
		ui.ShowInfo("Dry run: no changes were applied")
		return
	}

	if !deployYes && !deployCI {
		confirmed, err := ui.Confirm(fmt.Sprintf("Apply %d change(s)?", summary.TotalChanges))
		if err != nil || !confirmed {
			ui.ShowInfo("Deployment aborted")
			return
		}
	}

	if !deployCI {
		ui.ShowHeader("Deployment")
	}

	dc := &deploy.Context{
		Store:     store,
		Config:    cfg,
		Summary:   summary,
		Cache:     cache,
		Resolver:  resolver,
		Workers:   appConfig.Deployment.Workers,
		StartedAt: time.Now(),
	}
	pipeline := deploy.NewPipeline(deploy.Registry())
	result, metrics := pipeline.Execute(ctx, dc)

	ui.RenderDeployment(result, metrics.Duration())

	// Report persistence is fire-and-forget: a sink failure never fails
	// the deployment.
	reportDir := appConfig.Deployment.ReportDir
	if reportDir == "" {
		reportDir = filepath.Join(config.GetConfigPath(), "reports")
	}
	sink := report.NewSink(reportDir, appConfig.Deployment.MaxReports)
	if path, err := sink.Save(metrics, summary, result); err != nil {
		ui.ShowWarning(fmt.Sprintf("Failed to save deployment report: %v", err))
	} else if !deployCI {
		ui.ShowInfo(fmt.Sprintf("Deployment report saved to %s", path))
	}

	os.Exit(deploy.ExitCode(result.OverallStatus))
}
