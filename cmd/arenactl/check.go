package main

import (
	"github.com/spf13/cobra"

	"github.com/arenakit/arenakit/arena"
	"github.com/arenakit/arenakit/arena/alloc"
	"github.com/arenakit/arenakit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	var power uint32

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Verify the structural invariants of a region file",
		Long: `The check command walks a region file's chunk tiling and free lists and
verifies every structural invariant: exact tiling, matching boundary tags,
maximal coalescing, and consistent, correctly classified free lists.

Example:
  arenactl check scratch.region`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], power)
		},
	}
	cmd.Flags().Uint32Var(&power, "power", 2, "Size-class exponent the region was built with")
	return cmd
}

func runCheck(path string, power uint32) error {
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
	if err := h.CheckIntegrity(); err != nil {
		return err
	}

	printInfo("%s: OK\n", path)
	return nil
}
