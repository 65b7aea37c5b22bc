package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopsync/internal/attribute"
	"shopsync/internal/config"
	"shopsync/internal/deploy"
	"shopsync/internal/diff"
	"shopsync/internal/ui"
)

var (
	diffFile    string
	diffJSON    bool
	diffInclude []string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show the changes between local and remote configuration",
	Long: `Compare the local desired-state configuration against the live platform
state and print the resulting change set without applying anything.`,
	Run: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVarP(&diffFile, "file", "f", config.DefaultDesiredFile, "Desired-state configuration file")
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "Print the diff as JSON")
	diffCmd.Flags().StringSliceVar(&diffInclude, "include", nil, "Restrict to the named sections (e.g. \"Channels\")")
}

func runDiff(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cfg, err := config.LoadDesired(diffFile)
	if err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitValidationFailed)
	}
	if err := deploy.Preflight(cfg); err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitValidationFailed)
	}

	store, _, err := buildStore()
	if err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitFailure)
	}

	cache := attribute.NewCache()
	resolver := attribute.NewResolver(store, cache, nil)
	engine := diff.NewEngine(store, resolver, diff.Options{Include: diffInclude})

	spinner := ui.NewSpinner("Fetching remote configuration...")
	spinner.Start()
	summary, err := engine.Compare(ctx, cfg)
	spinner.Stop(err == nil, "")
	if err != nil {
		ui.ShowError(err)
		os.Exit(deploy.ExitFailure)
	}

	if diffJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			ui.ShowError(err)
			os.Exit(deploy.ExitFailure)
		}
		fmt.Println(string(data))
		return
	}
	ui.RenderDiff(summary)
}
