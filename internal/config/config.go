// SPDX-License-Identifier: MIT

// Package config loads the optional ansible-toolbox user configuration.
// Configuration is strictly optional: a missing file yields the defaults,
// and CLI flags always win over file and environment values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory and
	// the environment variable prefix.
	AppName = "ansible-toolbox"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
)

// Config holds the user-tunable settings.
type Config struct {
	// Image is the tag of the toolbox image to build and run.
	Image string `mapstructure:"image"`
	// BaseImage is the FROM line of the generated Dockerfile.
	BaseImage string `mapstructure:"base_image"`
	// PythonPackages are pip packages always added to the built image,
	// before the fixed defaults.
	PythonPackages []string `mapstructure:"python_packages"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Image:     "ansible-toolbox:latest",
		BaseImage: "docker.io/alpine:latest",
	}
}

// Dir returns the configuration directory, $XDG_CONFIG_HOME/ansible-toolbox
// (defaulting to ~/.config/ansible-toolbox).
func Dir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. When path is non-empty it names the config
// file to use exclusively; the file must then exist. Otherwise the default
// location is searched and a missing file is not an error. Environment
// variables prefixed ANSIBLE_TOOLBOX_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("image", defaults.Image)
	v.SetDefault("base_image", defaults.BaseImage)
	v.SetDefault("python_packages", defaults.PythonPackages)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(AppName), "-", "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load configuration %s: %w", path, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to load configuration: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}
