package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/sortgo"
	"github.com/spf13/cobra"
)

func newDemoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo ARRAY",
		Short: "Sort an array with each variant and report timings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseArray(args[0])
			if err != nil {
				return err
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

			want := slices.Clone(data)
			slices.Sort(want)
			if flags.reverse {
				slices.Reverse(want)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Original: %v\n", data)
			for _, v := range variants {
				work := slices.Clone(data)
				start := time.Now()
				if err := v.run(work); err != nil {
					return err
				}
				fmt.Fprintf(out, "%-10s %v  (%s, correct=%t)\n",
					v.name+":", work, time.Since(start).Round(time.Microsecond), slices.Equal(work, want))
			}
			return nil
		},
	}
}
