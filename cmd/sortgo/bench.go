package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/sortgo"
	"github.com/hupe1980/sortgo/testutil"
	"github.com/spf13/cobra"
)

func newBenchCmd(flags *globalFlags) *cobra.Command {
	var (
		iterations int
		size       int
	)

	cmd := &cobra.Command{
		Use:   "bench [ARRAY]",
		Short: "Compare sorting variants over repeated runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []int
			switch {
			case len(args) == 1:
				parsed, err := parseArray(args[0])
				if err != nil {
					return err
				}
				data = parsed
			default:
				seed := flags.seed
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				data = testutil.NewRNG(seed).Ints(size, size)
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}
			sorter, err := sortgo.NewOrderedSorter[int](opts...)
			if err != nil {
				return err
			}

			variants := []struct {
				name string
				run  func([]int) error
			}{
				{"hybrid", func(d []int) error { return sorter.SortInPlace(d) }},
				{"introsort", sorter.Introsort},
				{"parallel", func(d []int) error { return sorter.ParallelSort(d) }},
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Array size: %d\nIterations: %d\n\n", len(data), iterations)
			fmt.Fprintf(out, "%-12s %-12s %-12s %-12s %-12s\n", "Variant", "Mean", "Median", "Min", "Max")

			for _, v := range variants {
				durations := make([]time.Duration, 0, iterations)
				for i := 0; i < iterations; i++ {
					work := slices.Clone(data)
					start := time.Now()
					if err := v.run(work); err != nil {
						return err
					}
					durations = append(durations, time.Since(start))
				}
				mean, median, minD, maxD := summarize(durations)
				fmt.Fprintf(out, "%-12s %-12s %-12s %-12s %-12s\n",
					v.name, mean, median, minD, maxD)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 5, "number of runs per variant")
	cmd.Flags().IntVar(&size, "size", 10000, "generated array size when no array is given")
	return cmd
}

func summarize(durations []time.Duration) (mean, median, minD, maxD time.Duration) {
	if len(durations) == 0 {
		return 0, 0, 0, 0
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	mean = (total / time.Duration(len(sorted))).Round(time.Microsecond)
	median = sorted[len(sorted)/2].Round(time.Microsecond)
	minD = sorted[0].Round(time.Microsecond)
	maxD = sorted[len(sorted)-1].Round(time.Microsecond)
	return mean, median, minD, maxD
}
