package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine project root: %w", err)
		}
	}
	if !filepath.IsAbs(projectRoot) {
		absPath, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = absPath
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		Network:        v.GetString("network"),
		AdminIdentity:  v.GetString("admin"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		DryRun:         v.GetBool("dry_run"),
		Timeout:        v.GetDuration("timeout"),
		StellarBin:     v.GetString("stellar_bin"),
		StateFile:      v.GetString("state_file"),
	}

	// Optional project file; flags and env vars take precedence.
	projectConfig, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load herd.toml: %w", err)
	}
	if projectConfig != nil {
		if projectConfig.Contracts.Dir != "" {
			cfg.ContractsDir = projectConfig.Contracts.Dir
		}
		if projectConfig.Deploy.StateFile != "" && !v.IsSet("state_file") {
			cfg.StateFile = projectConfig.Deploy.StateFile
		}
		if projectConfig.Deploy.Network != "" && !v.IsSet("network") {
			cfg.Network = projectConfig.Deploy.Network
		}
	}

	if !filepath.IsAbs(cfg.StateFile) {
		cfg.StateFile = filepath.Join(projectRoot, cfg.StateFile)
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	// Deployment parameters may live in the project .env; load it into the
	// environment before viper reads it.
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	v := viper.New()

	v.SetEnvPrefix("HERD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("network", "testnet")
	v.SetDefault("timeout", "10m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("stellar_bin", "stellar")
	v.SetDefault("state_file", ".env")

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
		}
	})

	return v
}

// loadProjectConfig reads herd.toml if present; a missing file is not an error.
func loadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	path := filepath.Join(projectRoot, "herd.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var projectConfig ProjectConfig
	if _, err := toml.DecodeFile(path, &projectConfig); err != nil {
		return nil, err
	}
	return &projectConfig, nil
}
