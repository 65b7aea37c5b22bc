package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopsync/internal/config"
	"shopsync/internal/ui"
)

const starterConfig = `# shopsync desired-state configuration
shop:
  displayGrossPrices: true
  trackInventoryByDefault: true

channels:
  - name: Germany
    slug: germany
    currencyCode: EUR
    defaultCountry: DE
    isActive: true

productTypes:
  - name: Clothing
    isShippingRequired: true
    productAttributes:
      - name: Size
        inputType: DROPDOWN
        values: [S, M, L, XL]

categories:
  - name: Apparel
    slug: apparel
    subcategories:
      - name: Shirts
        slug: shirts
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter configuration",
	Long: `Create a starter desired-state document and, if needed, the application
configuration with the platform endpoint.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(config.DefaultDesiredFile); err == nil {
		ui.ShowWarning(fmt.Sprintf("%s already exists, leaving it untouched", config.DefaultDesiredFile))
	} else {
		if err := os.WriteFile(config.DefaultDesiredFile, []byte(starterConfig), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.DefaultDesiredFile, err)
		}
		ui.ShowSuccess(fmt.Sprintf("Created %s", config.DefaultDesiredFile))
	}

	appConfig, err := config.Load()
	if err != nil {
		return err
	}
	if appConfig.Remote.Endpoint == "" {
		endpoint, err := ui.Input("Platform API endpoint (leave empty to configure later):", "")
		if err != nil {
			return err
		}
		if endpoint != "" {
			appConfig.Remote.Endpoint = endpoint
			if err := config.Save(appConfig); err != nil {
				return err
			}
			ui.ShowSuccess("Saved application config")
		}
	}

	ui.ShowInfo("Next: 'shopsync auth login', then 'shopsync diff'")
	return nil
}
