package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

type findOptions struct {
	file          string
	start         string
	goal          string
	heuristic     string
	maxExpansions int
	plain         bool
}

func newFindCmd(ro *rootOptions) *cobra.Command {
	fo := &findOptions{}
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the cheapest path between two cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, ro, fo)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&fo.file, "file", "f", "", "grid document (YAML)")
	f.StringVar(&fo.start, "start", "", "start cell as row,col (overrides the file)")
	f.StringVar(&fo.goal, "goal", "", "goal cell as row,col (overrides the file)")
	f.StringVar(&fo.heuristic, "heuristic", "", "heuristic: manhattan or zero (overrides the file)")
	f.IntVar(&fo.maxExpansions, "max-expansions", 0, "stop after n expansions, 0 = unlimited (overrides the file)")
	f.BoolVar(&fo.plain, "plain", false, "print maps without colors")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runFind(cmd *cobra.Command, ro *rootOptions, fo *findOptions) error {
	doc, g, err := loadGrid(ro.logger, fo.file)
	if err != nil {
		return err
	}
	start, err := coordOr(fo.start, "start", doc.StartCoord)
	if err != nil {
		return err
	}
	goal, err := coordOr(fo.goal, "goal", doc.GoalCoord)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("heuristic") {
		doc.Search.Heuristic = fo.heuristic
	}
	if cmd.Flags().Changed("max-expansions") {
		doc.Search.MaxExpansions = fo.maxExpansions
	}
	opts, err := doc.SearchOptions()
	if err != nil {
		return err
	}
	opts = append(opts, astar.WithContext(cmd.Context()), astar.WithLogger(ro.logger))

	res, err := astar.Search(g, start, goal, opts...)
	if errors.Is(err, astar.ErrExpansionLimit) {
		return fmt.Errorf("%w after %d expansions", err, res.Expanded)
	}
	if err != nil {
		return err
	}
	ro.logger.Info("search finished",
		slog.Bool("found", res.Found),
		slog.Int("expanded", res.Expanded),
	)

	draw := func(path []gridgraph.Coord) string {
		if fo.plain {
			return render.Text(g, path)
		}
		return render.Styled(g, path, render.DefaultTheme())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Map %dx%d, start %s, goal %s:\n", g.Rows, g.Cols, start, goal)
	fmt.Fprint(out, draw(nil))
	if !res.Found {
		fmt.Fprintf(out, "\nNo path found (%d expansions).\n", res.Expanded)
		return nil
	}

	fmt.Fprintln(out, "\nPath found!")
	fmt.Fprintf(out, "Path: %s\n", formatPath(res.Path))
	fmt.Fprintf(out, "Cost: %.6g (with start cell: %.6g)\n", res.Cost, g.PathCostInclusive(res.Path))
	fmt.Fprintf(out, "Expanded: %d\n", res.Expanded)
	fmt.Fprintln(out, "\nMap with path:")
	fmt.Fprint(out, draw(res.Path))

	return nil
}

func formatPath(path []gridgraph.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}
