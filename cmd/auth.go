package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"shopsync/internal/config"
	"shopsync/internal/ui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the platform API token",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the platform API token",
	Long: `Store the platform API token in the OS keyring. When no keyring is
available the token is encrypted and kept in the config file instead.`,
	RunE: runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API token is configured",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	RunE:  runAuthLogout,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd, authStatusCmd, authLogoutCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	appConfig, err := config.Load()
	if err != nil {
		return err
	}

	if appConfig.Remote.Endpoint == "" {
		endpoint, err := ui.Input("Platform API endpoint:", "")
		if err != nil {
			return err
		}
		appConfig.Remote.Endpoint = endpoint
	}

	token, err := ui.Password("API token:")
	if err != nil {
		return err
	}

	if err := keyring.Set(keyringService, appConfig.Remote.Endpoint, token); err != nil {
		ui.ShowWarning("OS keyring unavailable, storing encrypted token in config file")
		encrypted, encErr := config.EncryptToken(token)
		if encErr != nil {
			return encErr
		}
		appConfig.Remote.Token = encrypted
	}

	if err := config.Save(appConfig); err != nil {
		return err
	}
	ui.ShowSuccess("Token stored")
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	appConfig, err := config.Load()
	if err != nil {
		return err
	}
	if appConfig.Remote.Endpoint == "" {
		ui.ShowWarning("No platform endpoint configured")
		return nil
	}

	if _, err := keyring.Get(keyringService, appConfig.Remote.Endpoint); err == nil {
		ui.ShowSuccess(fmt.Sprintf("Token for %s stored in OS keyring", appConfig.Remote.Endpoint))
		return nil
	}
	if appConfig.Remote.Token != "" {
		ui.ShowSuccess(fmt.Sprintf("Encrypted token for %s stored in config file", appConfig.Remote.Endpoint))
		return nil
	}
	ui.ShowWarning("No API token stored")
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	appConfig, err := config.Load()
	if err != nil {
		return err
	}

	_ = keyring.Delete(keyringService, appConfig.Remote.Endpoint)
	if appConfig.Remote.Token != "" {
		appConfig.Remote.Token = ""
		if err := config.Save(appConfig); err != nil {
			return err
		}
	}
	ui.ShowSuccess("Token removed")
	return nil
}
