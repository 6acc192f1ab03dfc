// Copyright (c) 2025 Visvasity LLC

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/visvasity/bytevec/bytevec"
)

const int32Size = 4

func newRunCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill a vector of 4-byte integers and dump it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v, cmd, opts.configFile)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), config)
		},
	}

	cmd.Flags().Int("capacity", bytevec.MinCapacity, "initial vector capacity")
	cmd.Flags().Int("count", -1, "number of values to push (default is half the capacity)")
	cmd.Flags().Bool("unchecked", false, "dump every capacity slot, not just the elements")
	return cmd
}

func runDemo(w io.Writer, config *Config) error {
	vec, err := bytevec.NewWithLimits(config.Capacity, int32Size, config.Limits())
	if err != nil {
		return fmt.Errorf("creating vector: %w", err)
	}
	defer bytevec.Destroy(&vec)

	count := config.Count
	if count < 0 {
		count = vec.Cap() / 2
	}

	x := make(bytevec.Elem, int32Size)
	for i := 0; i < count; i++ {
		x.SetInt32At(0, int32(i))
		if err := vec.PushBack(x); err != nil {
			return fmt.Errorf("pushing value %d: %w", i, err)
		}
	}

	// Read the values back through their addresses.
	for i := 0; i < count; i++ {
		if got := vec.At(i).Int32At(0); got != int32(i) {
			return fmt.Errorf("element %d holds %d", i, got)
		}
	}
	if config.Verbose {
		log.Printf("pushed %d values: %v", count, vec)
	}

	dump := vec.Dump
	if config.Unchecked {
		dump = vec.DumpUnchecked
	}
	if err := dump(w, bytevec.Int32Formatter); err != nil {
		return err
	}
	fmt.Fprintln(w, vec)
	return nil
}
