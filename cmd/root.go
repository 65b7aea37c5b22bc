package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopsync",
	Short: "Sync declarative e-commerce configuration to your platform",
	Long: "shopsync compares a locally authored configuration of your shop\n" +
		"(channels, product types, page types, categories, attributes) against\n" +
		"the live platform state, shows the resulting change set, and applies\n" +
		"it through a staged deployment pipeline.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
