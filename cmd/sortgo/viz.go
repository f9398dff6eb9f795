package main

import (
	"fmt"

	"github.com/hupe1980/sortgo"
	"github.com/hupe1980/sortgo/viz"
	"github.com/spf13/cobra"
)

func newVizCmd(flags *globalFlags) *cobra.Command {
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "viz ARRAY",
		Short: "Show the partition-by-partition progress of a sort",
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

			recorder := viz.NewRecorder(data, maxSteps)
			opts = append(opts,
				sortgo.WithPartitionHook(recorder.Hook()),
				// Every range must go through the partitioner to be visible.
				sortgo.WithInsertionThreshold(0),
				// Snapshots read the whole sequence, so the sort must stay
				// sequential even when --parallel is set.
				sortgo.WithParallel(false),
			)
			if err := sortgo.SortInPlace(data, opts...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			steps := recorder.Steps()
			fmt.Fprintf(out, "Total steps: %d\n", len(steps))
			fmt.Fprint(out, viz.Render(steps))
			if recorder.Truncated() {
				fmt.Fprintln(out, "... (further steps omitted)")
			}
			fmt.Fprintf(out, "Final: %v\n", data)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxSteps, "max-steps", viz.DefaultMaxSteps, "maximum number of recorded steps")
	return cmd
}
