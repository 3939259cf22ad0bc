package tessellate_test

import (
	"fmt"

	"github.com/krisjanis-nesenbergs/garmentwire/geom"
	"github.com/krisjanis-nesenbergs/garmentwire/tessellate"
)

func ExampleGenerate() {
	bounds := geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0}, {X: 95, Y: 0}, {X: 95, Y: 95}, {X: 0, Y: 95},
	}}

	result, err := tessellate.Generate("4.4.4.4", 10, bounds, geom.Point{X: 47.5, Y: 47.5}, 0,
		tessellate.WithMaximumIterations(10000))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d interior vertices, %d edge points\n", result.VertexCount(), len(result.EdgePointList()))
	// Output: 81 interior vertices, 36 edge points
}
