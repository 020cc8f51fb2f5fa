package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// DataDirName holds local state such as config.local.json
const DataDirName = ".xform"

// Provider creates RuntimeConfig for Wire dependency injection.
// Every fatal configuration problem surfaces here, before any file is resolved.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	env, err := envModeFrom(v)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Env:            env,
		Debug:          v.GetBool("debug"),
		JSON:           v.GetBool("json"),
		NonInteractive: v.GetBool("non-interactive"),
		Concurrency:    v.GetInt("concurrency"),
		Timeout:        v.GetDuration("timeout"),
		ManifestPath:   v.GetString("manifest"),
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = filepath.Join(projectRoot, ManifestFile)
	} else if !filepath.IsAbs(cfg.ManifestPath) {
		cfg.ManifestPath = filepath.Join(projectRoot, cfg.ManifestPath)
	}

	// Load the static rule set
	transform, path, source, err := LoadTransformConfig(projectRoot, v.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load transform config: %w", err)
	}
	cfg.ConfigPath = path
	cfg.ConfigSource = source

	label := path
	if label == "" {
		label = source
	}

	// Versions are read once here and frozen into the plugin options
	versions, err := LoadDerivedVersions(cfg.ManifestPath, transform.Versions)
	if err != nil {
		return nil, fmt.Errorf("failed to derive versions: %w", err)
	}
	cfg.Versions = versions

	if err := ExpandVersions(transform, versions, label); err != nil {
		return nil, err
	}
	if err := ValidateTransformConfig(transform, label); err != nil {
		return nil, err
	}
	cfg.Transform = transform

	return cfg, nil
}

// envModeFrom picks the environment mode. --env, XFORM_ENV and the local config
// must name a known mode. NODE_ENV is only read when none of them is set, and
// like the transform executor it only distinguishes "test" from everything else.
func envModeFrom(v *viper.Viper) (config.EnvMode, error) {
	if v.IsSet("env") {
		return config.ParseEnvMode(v.GetString("env"))
	}
	mode, err := config.ParseEnvMode(v.GetString("node_env"))
	if err != nil {
		return config.EnvOther, nil
	}
	return mode, nil
}

// FindProjectRoot walks up from the current directory to the repository root:
// the first directory holding a transform config or a workspace package.json.
// When neither exists the nearest package.json wins.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	nearest := ""
	for {
		if FindTransformConfig(dir) != "" {
			return dir, nil
		}

		manifest := filepath.Join(dir, ManifestFile)
		if _, err := os.Stat(manifest); err == nil {
			if IsWorkspaceRoot(manifest) {
				return dir, nil
			}
			if nearest == "" {
				nearest = dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			if nearest != "" {
				return nearest, nil
			}
			// Reached root without finding a manifest
			return "", fmt.Errorf("not in a JavaScript project (%s not found)", ManifestFile)
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	loadEnvFiles(projectRoot)

	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix("XFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// env has no default so an unset mode falls through to NODE_ENV
	_ = v.BindEnv("env", "XFORM_ENV")
	_ = v.BindEnv("node_env", "NODE_ENV")

	// Set defaults
	v.SetDefault("concurrency", 8)
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(f.Name, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// loadEnvFiles loads .env files from the project root without overriding
// variables already set in the process environment.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
