// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the fixed right, down, left, up order and
// how obstacles and borders are skipped.
//
//	0.1 0.2 0.3
//	0.2  #  0.2
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.New([][]float64{
		{0.1, 0.2, 0.3},
		{0.2, -1, 0.2},
	})
	fmt.Println(g.Neighbors(gridgraph.Coord{Row: 0, Col: 1}))
	fmt.Println(g.Neighbors(gridgraph.Coord{Row: 1, Col: 0}))
	// Output:
	// [(0,2) (0,0)]
	// [(0,0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents lists passable regions separated by a wall.
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.New([][]float64{
		{1, -1, 1},
		{1, -1, 1},
	})
	for i, comp := range g.ConnectedComponents() {
		fmt.Printf("region %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", g.CoordOf(idx))
		}
		fmt.Println()
	}
	// Output:
	// region 0: (0,0) (1,0)
	// region 1: (0,2) (1,2)
}
