// Copyright (c) 2025 Visvasity LLC

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/visvasity/bytevec/bytevec"
)

// Config holds the settings of a vecdemo command.
type Config struct {
	Capacity  int  `mapstructure:"capacity"`
	Count     int  `mapstructure:"count"`
	Unchecked bool `mapstructure:"unchecked"`
	ElemSize  int  `mapstructure:"elem-size"`

	MinCapacity int  `mapstructure:"min-capacity"`
	MaxBytes    int  `mapstructure:"max-bytes"`
	Verbose     bool `mapstructure:"verbose"`
}

// Limits returns the allocation policy for the vector.
func (c *Config) Limits() bytevec.Limits {
	return bytevec.Limits{
		MinCapacity: c.MinCapacity,
		MaxBytes:    c.MaxBytes,
	}
}

// loadConfig merges the flags of cmd with the environment and the config file.
// Flags set on the command line take precedence.
func loadConfig(v *viper.Viper, cmd *cobra.Command, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("vecdemo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vecdemo")
	}

	// Allow environment variables
	v.SetEnvPrefix("VECDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}
