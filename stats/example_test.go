package stats_test

import (
	"fmt"

	"github.com/krisjanis-nesenbergs/garmentwire/stats"
)

func ExampleBootstrap() {
	sample := []float64{4, 4, 4, 4, 4, 4, 4, 4}

	result, err := stats.Bootstrap(sample, stats.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("center %.1f, 95%% CI [%.1f, %.1f]\n", result.Center, result.LowCI, result.HighCI)
	// Output: center 4.0, 95% CI [4.0, 4.0]
}
