package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/gridfile"
	"github.com/katalvlaran/gridpath/gridgraph"
)

type generateOptions struct {
	rows, cols int
	seed       int64
	obstacles  float64
	minCost    float64
	maxCost    float64
	decimals   int
	output     string
}

func newGenerateCmd(ro *rootOptions) *cobra.Command {
	gen := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random grid document with start and goal in opposite corners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, ro, gen)
		},
	}
	f := cmd.Flags()
	f.IntVar(&gen.rows, "rows", 10, "number of rows")
	f.IntVar(&gen.cols, "cols", 10, "number of columns")
	f.Int64Var(&gen.seed, "seed", 1, "random seed")
	f.Float64Var(&gen.obstacles, "obstacles", 0.2, "obstacle probability in [0,1)")
	f.Float64Var(&gen.minCost, "min-cost", 0.1, "lowest cell cost")
	f.Float64Var(&gen.maxCost, "max-cost", 1, "highest cell cost")
	f.IntVar(&gen.decimals, "decimals", 1, "decimal places of generated costs")
	f.StringVarP(&gen.output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, ro *rootOptions, gopts *generateOptions) error {
	// Option constructors panic on meaningless input; check flags first.
	if gopts.obstacles < 0 || gopts.obstacles >= 1 {
		return fmt.Errorf("--obstacles %g outside [0,1)", gopts.obstacles)
	}
	if gopts.minCost < 0 || gopts.maxCost < gopts.minCost {
		return fmt.Errorf("cost range [%g,%g] must satisfy 0 <= min <= max", gopts.minCost, gopts.maxCost)
	}
	if gopts.decimals < 0 || gopts.decimals > builder.MaxDecimals {
		return fmt.Errorf("--decimals %d outside [0,%d]", gopts.decimals, builder.MaxDecimals)
	}

	start := gridgraph.Coord{Row: 0, Col: 0}
	goal := gridgraph.Coord{Row: gopts.rows - 1, Col: gopts.cols - 1}
	opts := []builder.BuilderOption{
		builder.WithSeed(gopts.seed),
		builder.WithUniformCost(gopts.minCost, gopts.maxCost),
		builder.WithDecimals(gopts.decimals),
		builder.WithObstacleRatio(gopts.obstacles),
	}
	if gopts.rows > 0 && gopts.cols > 0 {
		opts = append(opts, builder.WithOpen(start, goal))
	}
	g, err := builder.Grid(gopts.rows, gopts.cols, opts...)
	if err != nil {
		return err
	}

	data, err := gridfile.Marshal(gridfile.FromGrid(g, start, goal))
	if err != nil {
		return err
	}
	ro.logger.Info("grid generated",
		slog.Int("rows", g.Rows),
		slog.Int("cols", g.Cols),
		slog.Int64("seed", gopts.seed),
		slog.Int("components", len(g.ConnectedComponents())),
	)

	if gopts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(gopts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", gopts.output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", gopts.output)

	return nil
}
