package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/render"
)

func newComponentsCmd(ro *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Label the connected regions of passable cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := loadGrid(ro.logger, file)
			if err != nil {
				return err
			}
			comps := g.ConnectedComponents()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Components(g))
			fmt.Fprintf(out, "Components: %d\n", len(comps))
			for i, comp := range comps {
				fmt.Fprintf(out, "  %d: %d cells from %s\n", i, len(comp), g.CoordOf(comp[0]))
			}
			if start, goal, err := doc.Endpoints(); err == nil && g.InBounds(start) && g.InBounds(goal) {
				verdict := "not connected"
				if g.Connected(start, goal) {
					verdict = "connected"
				}
				fmt.Fprintf(out, "Start %s and goal %s: %s\n", start, goal, verdict)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "grid document (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
