package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration.
// This is injected into use cases and contains all resolved settings.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Context settings
	Network       string // target network name, resolved by the pipeline
	AdminIdentity string // named signing identity, never secret material

	// Execution settings
	Debug          bool
	NonInteractive bool
	DryRun         bool
	Timeout        time.Duration

	// Toolchain settings
	StellarBin string

	// Persistence settings
	StateFile string

	// ContractsDir overrides the default contracts workspace lookup
	// (./contracts, then ../contracts) when set in herd.toml.
	ContractsDir string
}

// ProjectConfig is the optional herd.toml project file.
type ProjectConfig struct {
	Contracts ContractsConfig `toml:"contracts"`
	Deploy    DeployConfig    `toml:"deploy"`
}

// ContractsConfig configures where the contract workspace lives.
type ContractsConfig struct {
	Dir string `toml:"dir"`
}

// DeployConfig configures deployment defaults.
type DeployConfig struct {
	StateFile string `toml:"state_file"`
	Network   string `toml:"network"`
}
