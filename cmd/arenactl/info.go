package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arenakit/arenakit/arena"
	"github.com/arenakit/arenakit/arena/alloc"
	"github.com/arenakit/arenakit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	var power uint32

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print the chunk map of a region file",
		Long: `The info command maps a region file, rebuilds the free lists from its
chunk tiling, and prints the chunk map: every chunk with its offset, size,
and status (plus size class for free chunks), then the free-list contents.

Example:
  arenactl info scratch.region`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], power)
		},
	}
	cmd.Flags().Uint32Var(&power, "power", 2, "Size-class exponent the region was built with")
	return cmd
}

func runInfo(path string, power uint32) error {
	printVerbose("Mapping region: %s\n", path)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := arena.NewRegion(data)
	if err != nil {
		return err
	}
	h, err := alloc.Attach(r, power)
	if err != nil {
		return err
	}

	h.Dump(os.Stdout)
	return nil
}
