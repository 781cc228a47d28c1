package topology_test

import (
	"fmt"

	"github.com/katalvlaran/lvltri/geom"
	"github.com/katalvlaran/lvltri/topology"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTopology
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Seed a CCW triangle, walk its hull chain, then delete one side and
//	watch the rings close over the gap.
//
// Complexity: O(1) per mutation, O(H) for the hull walk
func ExampleTopology() {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 2, Y: 0}
	c := geom.Point{X: 1, Y: 2}

	topo := topology.New()
	if err := topo.AddTriangle(a, b, c); err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("edges:", topo.EdgeCount())
	fmt.Println("hull:", topo.Hull(a))

	if err := topo.DeleteEdge(b, c); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("edges after delete:", topo.EdgeCount())
	fmt.Println("validate:", topo.Validate())
	// Output:
	// edges: 6
	// hull: [{0 0} {2 0} {1 2}]
	// edges after delete: 4
	// validate: <nil>
}
