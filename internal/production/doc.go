// Package production evaluates the Cobb-Douglas production function
// Y = A·K^α·N^(1-α) and derives the chart data shown by the visualizer.
//
// Everything in this package is pure: the same inputs always produce the same
// series, and nothing is cached between calls.
//
// Main Types:
//   - Params: total factor productivity A, labor N, capital elasticity Alpha and capital K
//   - Domain: the fixed capital range a curve is sampled over
//   - CurveSeries: an ordered sequence of SamplePoint values
//   - ComparisonPair: current and baseline output at the live K
//   - Snapshot: everything a chart surface needs after one parameter change
//
// Usage:
//
//	snap, err := production.Recompute(production.DefaultParams(), production.DefaultDomain())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, pt := range snap.Current.Points {
//	    fmt.Println(pt.K, pt.Output)
//	}
package production
