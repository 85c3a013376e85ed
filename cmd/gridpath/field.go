package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/render"
)

type fieldOptions struct {
	file    string
	from    string
	maxCost float64
}

func newFieldCmd(ro *rootOptions) *cobra.Command {
	fo := &fieldOptions{}
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Print the cheapest cost from one cell to every other cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := loadGrid(ro.logger, fo.file)
			if err != nil {
				return err
			}
			from, err := coordOr(fo.from, "from", doc.StartCoord)
			if err != nil {
				return err
			}

			var opts []dijkstra.Option
			if cmd.Flags().Changed("max-cost") {
				opts = append(opts, dijkstra.WithMaxCost(fo.maxCost))
			}
			f, err := dijkstra.Distances(g, from, opts...)
			if err != nil {
				return err
			}
			ro.logger.Info("cost field computed",
				slog.String("from", from.String()),
				slog.Int("reached", f.Reached()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cost field from %s:\n", from)
			fmt.Fprint(out, render.Field(g, f))
			fmt.Fprintf(out, "Reached: %d of %d cells\n", f.Reached(), g.Len())

			return nil
		},
	}
	cmd.Flags().StringVarP(&fo.file, "file", "f", "", "grid document (YAML)")
	cmd.Flags().StringVar(&fo.from, "from", "", "source cell as row,col (defaults to the file's start)")
	cmd.Flags().Float64Var(&fo.maxCost, "max-cost", 0, "leave cells costlier than this unreached")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
