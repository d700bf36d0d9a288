// File: core/example_test.go
package core_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/core"
)

// ExampleGraph demonstrates building a small graph and reading it back.
//
//	0───1   3
//	    │
//	    2
func ExampleGraph() {
	g, _ := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}})

	fmt.Println("nodes:", g.Order())
	fmt.Println("edges:", g.EdgeCount(), g.Edges())
	fmt.Println("deg(1):", g.Degree(1))
	fmt.Println("valid:", g.Validate() == nil)
	// Output:
	// nodes: 4
	// edges: 2 [[0 1] [1 2]]
	// deg(1): 2
	// valid: true
}
