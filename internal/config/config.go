package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"shopsync/pkg/models"
)

func GetConfigPath() string {
	// Check for environment variable first
	if configPath := os.Getenv("SHOPSYNC_CONFIG"); configPath != "" {
		return filepath.Dir(configPath)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".shopsync")
}

func GetConfigFile() string {
	if configFile := os.Getenv("SHOPSYNC_CONFIG"); configFile != "" {
		return filepath.Clean(configFile)
	}
	return filepath.Join(GetConfigPath(), "config.yaml")
}

// Load reads the app config file and applies SHOPSYNC_* environment
// overrides on top, e.g. SHOPSYNC_REMOTE_ENDPOINT or
// SHOPSYNC_DEPLOYMENT_WORKERS. A missing file yields the environment-only
// configuration.
func Load() (*models.Config, error) {
	v := viper.New()
	v.SetConfigFile(GetConfigFile())
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SHOPSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(GetConfigFile()); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &models.Config{
		Remote: models.Remote{
			Endpoint: v.GetString("remote.endpoint"),
			Token:    v.GetString("remote.token"),
		},
		Deployment: models.DeploymentConfig{
			FailOnDelete: v.GetBool("deployment.fail_on_delete"),
			Workers:      v.GetInt("deployment.workers"),
			ReportDir:    v.GetString("deployment.report_dir"),
			MaxReports:   v.GetInt("deployment.max_reports"),
		},
	}, nil
}

func Save(config *models.Config) error {
	configPath := GetConfigPath()
	if err := os.MkdirAll(configPath, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(GetConfigFile(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func Exists() bool {
	_, err := os.Stat(GetConfigFile())
	return err == nil
}
