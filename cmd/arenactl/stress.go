package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/arenakit/arenakit/arena"
	"github.com/arenakit/arenakit/arena/alloc"
	"github.com/arenakit/arenakit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newStressCmd())
}

func newStressCmd() *cobra.Command {
	var (
		size    int
		power   uint32
		ops     int
		seed    int64
		maxSize int
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Churn an anonymous region with random alloc/free/resize traffic",
		Long: `The stress command maps an anonymous region, drives a random mix of
allocations, releases, and resizes against it, and prints the allocator's
counters. With --verbose it verifies the structural invariants every 10000
operations; without it, they are verified only after the drain. After
draining all live allocations the region must collapse back to a single
free chunk.

Example:
  arenactl stress --size 1048576 --ops 100000 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(size, power, ops, seed, maxSize)
		},
	}
	cmd.Flags().IntVar(&size, "size", 1<<20, "Region size in bytes")
	cmd.Flags().Uint32Var(&power, "power", 2, "Size-class exponent (1-8)")
	cmd.Flags().IntVar(&ops, "ops", 100000, "Number of operations to run")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&maxSize, "max-alloc", 512, "Largest single request in bytes")
	return cmd
}

func runStress(size int, power uint32, ops int, seed int64, maxSize int) error {
	data, cleanup, err := mmfile.MapAnon(size)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := arena.NewRegion(data)
	if err != nil {
		return err
	}
	h, err := alloc.New(r, power)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	var live []alloc.Ref
	var failed int

	for op := 0; op < ops; op++ {
		switch choice := rng.Intn(10); {
		case choice < 5:
			ref, _, allocErr := h.Alloc(1 + rng.Intn(maxSize))
			if allocErr != nil {
				failed++
				break
			}
			live = append(live, ref)
		case choice < 8:
			if len(live) == 0 {
				break
			}
			i := rng.Intn(len(live))
			if freeErr := h.Free(live[i]); freeErr != nil {
				return fmt.Errorf("op %d: free: %w", op, freeErr)
			}
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		default:
			if len(live) == 0 {
				break
			}
			i := rng.Intn(len(live))
			ref, _, reallocErr := h.Realloc(live[i], 1+rng.Intn(maxSize))
			if reallocErr != nil {
				failed++
				break
			}
			live[i] = ref
		}

		if verbose && op%10000 == 0 {
			if checkErr := h.CheckIntegrity(); checkErr != nil {
				return fmt.Errorf("op %d: %w", op, checkErr)
			}
			printVerbose("op %d: %d live, %d failed\n", op, len(live), failed)
		}
	}

	for _, ref := range live {
		if freeErr := h.Free(ref); freeErr != nil {
			return fmt.Errorf("drain: %w", freeErr)
		}
	}
	if err := h.CheckIntegrity(); err != nil {
		return fmt.Errorf("after drain: %w", err)
	}
	if got, want := r.Word(0), int32(int64(r.Words())-2); got != want {
		return fmt.Errorf("drained region has head tag %d, want %d", got, want)
	}

	st := h.Stats()
	printInfo("ops: %d (%d exhausted)\n", ops, failed)
	printInfo("alloc: %d calls, %d splits\n", st.AllocCalls, st.Splits)
	printInfo("free: %d calls, %d left merges, %d right merges\n",
		st.FreeCalls, st.CoalesceLeft, st.CoalesceRight)
	printInfo("realloc: %d calls (%d in place, %d right, %d around, %d moved)\n",
		st.ReallocCalls, st.ResizeInPlace, st.ResizeRight, st.ResizeAround, st.ResizeMove)
	printInfo("words: %d allocated, %d freed\n", st.WordsAllocated, st.WordsFreed)
	return nil
}
