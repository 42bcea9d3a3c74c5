package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arenakit/arenakit/arena"
	"github.com/arenakit/arenakit/arena/alloc"
	"github.com/arenakit/arenakit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	var size int
	var power uint32

	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Create and initialize a region file",
		Long: `The create command writes a new region file of the given size and lays
out the initial allocator state: one free chunk spanning the whole region.

Example:
  arenactl create scratch.region --size 65536
  arenactl create scratch.region --size 4096 --power 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0], size, power)
		},
	}
	cmd.Flags().IntVar(&size, "size", 65536, "Region size in bytes (multiple of 4, at least 16)")
	cmd.Flags().Uint32Var(&power, "power", 2, "Size-class exponent (1-8)")
	return cmd
}

func runCreate(path string, size int, power uint32) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %s", path)
	}

	printVerbose("Writing %d zero bytes to %s\n", size, path)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		return err
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := arena.NewRegion(data)
	if err != nil {
		return err
	}
	if _, err := alloc.New(r, power); err != nil {
		return err
	}
	if err := mmfile.Sync(data); err != nil {
		return err
	}

	printInfo("Initialized %s: %d words, power=%d\n", path, r.Words(), power)
	return nil
}
