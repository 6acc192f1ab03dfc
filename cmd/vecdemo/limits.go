// Copyright (c) 2025 Visvasity LLC

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/visvasity/bytevec/bytevec"
)

func newLimitsCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Print the effective allocation limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v, cmd, opts.configFile)
			if err != nil {
				return err
			}
			return printLimits(cmd.OutOrStdout(), config)
		},
	}

	cmd.Flags().Int("elem-size", int32Size, "element size in bytes")
	return cmd
}

func printLimits(w io.Writer, config *Config) error {
	// Constructing a vector validates the limits.
	vec, err := bytevec.NewWithLimits(0, config.ElemSize, config.Limits())
	if err != nil {
		return fmt.Errorf("checking limits: %w", err)
	}
	defer bytevec.Destroy(&vec)

	limits := vec.Limits()
	fmt.Fprintf(w, "min-capacity: %d\n", limits.MinCapacity)
	fmt.Fprintf(w, "max-bytes: %d\n", limits.MaxBytes)
	fmt.Fprintf(w, "growth-factor: %d\n", bytevec.GrowthFactor)
	if config.ElemSize == 0 {
		fmt.Fprintf(w, "max-elements: unlimited\n")
	} else {
		fmt.Fprintf(w, "max-elements: %d\n", limits.MaxBytes/config.ElemSize)
	}
	return nil
}
