// Package astar_test provides runnable examples for the astar package.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleFindPath routes around a single obstacle on a zero-cost grid.
func ExampleFindPath() {
	g, _ := gridgraph.New([][]float64{
		{0, 0, 0},
		{0, -1, 0},
		{0, 0, 0},
	})
	path, err := astar.FindPath(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleSearch plans a route for a robot over terrain where each cell holds
// the time needed to cross it and -1 marks an obstacle.
func ExampleSearch() {
	g, _ := gridgraph.New([][]float64{
		{0.1, 0.2, 0.3, 0.4, 0.5},
		{0.2, -1, 0.2, -1, 0.4},
		{0.3, 0.2, 0.1, 0.2, 0.3},
		{-1, 0.3, -1, 0.4, 0.2},
		{0.5, 0.4, 0.3, 0.2, 0.1},
	})
	res, err := astar.Search(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 4, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v steps=%d cost=%.1f\n", res.Found, len(res.Path)-1, res.Cost)
	fmt.Println(res.Path)
	// Output:
	// found=true steps=8 cost=1.6
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,3) (2,4) (3,4) (4,4)]
}

// ExampleSearch_unreachable shows that "no path" is an empty result, not an error.
func ExampleSearch_unreachable() {
	g, _ := gridgraph.New([][]float64{
		{1, -1, 1},
	})
	res, err := astar.Search(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 0, Col: 2})
	fmt.Println(res.Found, len(res.Path), err)
	// Output: false 0 <nil>
}

// ExampleStepper walks a search one expansion at a time.
func ExampleStepper() {
	g, _ := gridgraph.New([][]float64{
		{1, 1, 1},
	})
	s, _ := astar.NewStepper(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 0, Col: 2})
	for !s.Done() {
		snap, _ := s.Step()
		fmt.Printf("step %d expanded %v open=%d\n", snap.Expanded, snap.Current, snap.Open)
	}
	// Output:
	// step 1 expanded (0,0) open=1
	// step 2 expanded (0,1) open=1
	// step 3 expanded (0,2) open=0
}
