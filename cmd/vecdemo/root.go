// Copyright (c) 2025 Visvasity LLC

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/visvasity/bytevec/bytevec"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := new(rootOptions)
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "vecdemo",
		Short: "Demonstrates the bytevec growable array",
		Long: `vecdemo builds a vector of 4-byte integers and prints its contents.

Settings are read from flags, from VECDEMO_* environment variables and from
an optional vecdemo.yaml file in the working directory or $HOME/.vecdemo.

Examples:
  # Fill half of a 20 element vector and dump it
  vecdemo run

  # Dump every capacity slot, including the unused ones
  vecdemo run --capacity 40 --count 25 --unchecked

  # Show the allocation limits for 8 byte elements
  vecdemo limits --elem-size 8`,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./vecdemo.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().Int("min-capacity", bytevec.MinCapacity, "smallest capacity ever allocated")
	cmd.PersistentFlags().Int("max-bytes", bytevec.MaxBytes, "largest storage size in bytes")

	cmd.AddCommand(newRunCmd(v, opts))
	cmd.AddCommand(newLimitsCmd(v, opts))
	return cmd
}
