package models

// Config is the application configuration (~/.shopsync/config.yaml), as
// opposed to the desired-state document it deploys.
type Config struct {
	Remote     Remote           `yaml:"remote"`
	Deployment DeploymentConfig `yaml:"deployment"`
}

// Remote holds platform API connection settings. Token may be stored as an
// ENC[...] encrypted value or left empty when the OS keyring is used.
type Remote struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token,omitempty"`
}

// DeploymentConfig contains deployment-specific settings.
type DeploymentConfig struct {
	FailOnDelete bool   `yaml:"fail_on_delete"` // block runs whose diff contains deletions
	Workers      int    `yaml:"workers"`        // per-stage worker pool size
	ReportDir    string `yaml:"report_dir"`     // deployment report directory
	MaxReports   int    `yaml:"max_reports"`    // reports kept before pruning
}
