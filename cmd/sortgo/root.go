package main

import (
	"github.com/hupe1980/sortgo"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	strategy string
	reverse  bool
	seed     int64
	parallel bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "sortgo",
		Short:         "Hybrid quicksort demonstration tool",
		Long:          "Demonstrate, visualize and benchmark the sortgo hybrid sorting engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.strategy, "strategy", sortgo.PivotMedianOfThree.String(), "pivot strategy (random, first, last, median-of-three, median-of-medians, adaptive)")
	cmd.PersistentFlags().BoolVar(&flags.reverse, "reverse", false, "sort in descending order")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "seed for random pivot selection (0 = nondeterministic)")
	cmd.PersistentFlags().BoolVar(&flags.parallel, "parallel", false, "enable the concurrent dispatcher")

	cmd.AddCommand(
		newDemoCmd(flags),
		newVizCmd(flags),
		newBenchCmd(flags),
	)
	return cmd
}

func (f *globalFlags) options() ([]sortgo.Option, error) {
	strategy, err := sortgo.ParsePivotStrategy(f.strategy)
	if err != nil {
		return nil, err
	}

	opts := []sortgo.Option{
		sortgo.WithPivotStrategy(strategy),
		sortgo.WithReverse(f.reverse),
		sortgo.WithParallel(f.parallel),
	}
	if f.seed != 0 {
		opts = append(opts, sortgo.WithSeed(f.seed))
	}
	return opts, nil
}
