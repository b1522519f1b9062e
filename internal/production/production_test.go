package production

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/utils"
)

func TestGenerateCurveDefaultDomain(t *testing.T) {
	curve, err := GenerateCurve(DefaultParams(), DefaultDomain())
	require.NoError(t, err)

	require.Equal(t, 96, curve.Len())
	assert.Equal(t, SeriesCurrent, curve.Name)
	assert.Equal(t, 1.0, curve.Points[0].K)
	assert.Equal(t, 20.0, curve.Points[len(curve.Points)-1].K)
	assert.Equal(t, 50.12, curve.Points[0].Output)
	assert.Equal(t, 123.11, curve.Points[len(curve.Points)-1].Output)
}

func TestGenerateCurveCapitalGrid(t *testing.T) {
	curve, err := GenerateCurve(DefaultParams(), DefaultDomain())
	require.NoError(t, err)

	for i, pt := range curve.Points {
		want := math.Round((1+0.2*float64(i))*10) / 10
		assert.Equal(t, want, pt.K, "point %d", i)
	}
}

func TestGenerateCurveMonotonic(t *testing.T) {
	cases := []Params{
		{A: 1, N: 1, Alpha: 0.01},
		{A: 10, N: 10, Alpha: 0.3},
		{A: 20, N: 20, Alpha: 0.99},
		{A: 3.5, N: 17, Alpha: 0.5},
		{A: 0.001, N: 1e6, Alpha: 0.73},
	}
	for _, p := range cases {
		curve, err := GenerateCurve(p, DefaultDomain())
		require.NoError(t, err)
		for i := 1; i < curve.Len(); i++ {
			assert.LessOrEqual(t, curve.Points[i-1].Output, curve.Points[i].Output,
				"params %+v at k=%v", p, curve.Points[i].K)
			assert.Less(t, curve.Points[i-1].K, curve.Points[i].K)
		}
	}
}

func TestGenerateCurveIdempotent(t *testing.T) {
	p := Params{A: 7.5, N: 12, Alpha: 0.42}
	first, err := GenerateCurve(p, DefaultDomain())
	require.NoError(t, err)
	second, err := GenerateCurve(p, DefaultDomain())
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i := range first.Points {
		assert.Equal(t, math.Float64bits(first.Points[i].Output), math.Float64bits(second.Points[i].Output))
		assert.Equal(t, math.Float64bits(first.Points[i].K), math.Float64bits(second.Points[i].K))
	}
}

func TestGenerateCurveIgnoresK(t *testing.T) {
	a, err := GenerateCurve(Params{A: 10, N: 10, Alpha: 0.3, K: 1}, DefaultDomain())
	require.NoError(t, err)
	b, err := GenerateCurve(Params{A: 10, N: 10, Alpha: 0.3, K: 20}, DefaultDomain())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateCurveLinearInA(t *testing.T) {
	p := Params{A: 6.5, N: 9, Alpha: 0.37}
	single, err := GenerateCurve(p, DefaultDomain())
	require.NoError(t, err)
	p.A *= 2
	double, err := GenerateCurve(p, DefaultDomain())
	require.NoError(t, err)

	for i := range single.Points {
		// Both sides are rounded to cents, so allow one cent of drift.
		assert.InDelta(t, 2*single.Points[i].Output, double.Points[i].Output, 0.0100001)
	}
}

func TestGenerateCurveInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"alpha zero", Params{A: 10, N: 10, Alpha: 0}},
		{"alpha one", Params{A: 10, N: 10, Alpha: 1}},
		{"alpha negative", Params{A: 10, N: 10, Alpha: -0.2}},
		{"alpha NaN", Params{A: 10, N: 10, Alpha: math.NaN()}},
		{"A zero", Params{A: 0, N: 10, Alpha: 0.3}},
		{"N negative", Params{A: 10, N: -1, Alpha: 0.3}},
		{"A infinite", Params{A: math.Inf(1), N: 10, Alpha: 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateCurve(tt.p, DefaultDomain())
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestGenerateCurveInvalidDomain(t *testing.T) {
	tests := []struct {
		name string
		d    Domain
	}{
		{"zero step", Domain{Min: 1, Max: 20, Step: 0}},
		{"negative step", Domain{Min: 1, Max: 20, Step: -0.2}},
		{"zero min", Domain{Min: 0, Max: 20, Step: 0.2}},
		{"max below min", Domain{Min: 5, Max: 2, Step: 0.2}},
		{"too many samples", Domain{Min: 1, Max: 1e9, Step: 0.001}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateCurve(DefaultParams(), tt.d)
			require.ErrorIs(t, err, ErrInvalidDomain)
		})
	}
}

func TestGenerateCurveSinglePointDomain(t *testing.T) {
	curve, err := GenerateCurve(DefaultParams(), Domain{Min: 10, Max: 10, Step: 0.2})
	require.NoError(t, err)
	require.Equal(t, 1, curve.Len())
	assert.Equal(t, 100.0, curve.Points[0].Output)
}

func TestGenerateCurveFineStep(t *testing.T) {
	curve, err := GenerateCurve(DefaultParams(), Domain{Min: 1, Max: 1.5, Step: 0.05})
	require.NoError(t, err)
	require.GreaterOrEqual(t, curve.Len(), 10)
	assert.Equal(t, 1.05, curve.Points[1].K)
}

func TestBaselineCurveFixed(t *testing.T) {
	baseline, err := BaselineCurve(DefaultDomain())
	require.NoError(t, err)

	require.Equal(t, 96, baseline.Len())
	assert.Equal(t, SeriesBaseline, baseline.Name)
	assert.Equal(t, 56.23, baseline.Points[0].Output)
	assert.Equal(t, 118.92, baseline.Points[baseline.Len()-1].Output)

	same, err := GenerateCurve(Params{A: BaselineA, N: BaselineN, Alpha: BaselineAlpha}, DefaultDomain())
	require.NoError(t, err)
	assert.Equal(t, same.Points, baseline.Points)
}

func TestCompareScenarios(t *testing.T) {
	tests := []struct {
		name         string
		p            Params
		wantCurrent  float64
		wantBaseline float64
	}{
		{"defaults", DefaultParams(), 100.00, 100.00},
		{"baseline ignores live params", Params{A: 20, N: 3, Alpha: 0.8, K: 10}, 0, 100.00},
		{"alpha near zero", Params{A: 10, N: 10, Alpha: 0.01, K: 20}, 100.70, 118.92},
		{"low capital", Params{A: 10, N: 10, Alpha: 0.3, K: 5}, 81.23, 84.09},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := Compare(tt.p)
			require.NoError(t, err)
			if tt.wantCurrent != 0 {
				assert.Equal(t, tt.wantCurrent, cmp.CurrentOutput)
			}
			assert.Equal(t, tt.wantBaseline, cmp.BaselineOutput)
			assert.Equal(t, tt.p.K, cmp.K)
		})
	}
}

func TestCompareAlphaLimit(t *testing.T) {
	cmp, err := Compare(Params{A: 10, N: 10, Alpha: 0.01, K: 20})
	require.NoError(t, err)
	assert.Greater(t, cmp.CurrentOutput, 100.0)
	assert.Less(t, cmp.CurrentOutput, 101.0)
}

func TestCompareInvalidK(t *testing.T) {
	_, err := Compare(Params{A: 10, N: 10, Alpha: 0.3, K: 0})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Compare(Params{A: 10, N: 10, Alpha: 1.3, K: 4})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestMarkerSeries(t *testing.T) {
	cmp, err := Compare(Params{A: 10, N: 10, Alpha: 0.3, K: 20})
	require.NoError(t, err)

	marker := MarkerSeries(cmp)
	require.Equal(t, 2, marker.Len())
	assert.Equal(t, SeriesMarker, marker.Name)
	assert.Equal(t, SamplePoint{K: 20, Output: 0}, marker.Points[0])
	assert.Equal(t, 20.0, marker.Points[1].K)
	assert.InDelta(t, 123.11*1.1, marker.Points[1].Output, 1e-9)
}

func TestComparisonDifference(t *testing.T) {
	cmp := ComparisonPair{K: 5, CurrentOutput: 81.23, BaselineOutput: 84.09}
	assert.Equal(t, -2.86, cmp.Difference())
}

func TestCompareMatchesCurveOnGrid(t *testing.T) {
	p := Params{A: 12.5, N: 4, Alpha: 0.61}
	curve, err := GenerateCurve(p, DefaultDomain())
	require.NoError(t, err)

	for _, k := range []float64{1, 2, 5, 10, 13, 17, 20} {
		p.K = k
		cmp, err := Compare(p)
		require.NoError(t, err)
		pt, ok := curve.Nearest(k)
		require.True(t, ok)
		assert.Equal(t, k, pt.K)
		assert.Equal(t, pt.Output, cmp.CurrentOutput, "k=%v", k)
	}
}

func TestCompareNearCurveOffGrid(t *testing.T) {
	p := DefaultParams()
	curve, err := GenerateCurve(p, DefaultDomain())
	require.NoError(t, err)

	for _, k := range []float64{1.5, 10.5, 19.5} {
		p.K = k
		cmp, err := Compare(p)
		require.NoError(t, err)
		pt, ok := curve.Nearest(k)
		require.True(t, ok)
		assert.InDelta(t, 0.1, math.Abs(pt.K-k), 1e-9)
		assert.InDelta(t, pt.Output, cmp.CurrentOutput, stepDelta(t, curve, pt.K), "k=%v", k)
	}
}

// stepDelta is the largest output change across one sample step on either
// side of the point at k.
func stepDelta(t *testing.T, curve CurveSeries, k float64) float64 {
	t.Helper()
	for i, pt := range curve.Points {
		if pt.K != k {
			continue
		}
		var delta float64
		if i > 0 {
			delta = math.Max(delta, math.Abs(pt.Output-curve.Points[i-1].Output))
		}
		if i+1 < curve.Len() {
			delta = math.Max(delta, math.Abs(curve.Points[i+1].Output-pt.Output))
		}
		return delta
	}
	t.Fatalf("no sample at k=%v", k)
	return 0
}

func TestRangeCheck(t *testing.T) {
	tests := []struct {
		r       Range
		v       float64
		wantErr bool
	}{
		{RangeA, 1, false},
		{RangeA, 20, false},
		{RangeA, 12.5, false},
		{RangeA, 50, true},
		{RangeA, 0.5, true},
		{RangeA, 10.3, true},
		{RangeAlpha, 0.01, false},
		{RangeAlpha, 0.45, false},
		{RangeAlpha, 0.99, false},
		{RangeAlpha, 1, true},
		{RangeK, 400, true},
		{RangeN, math.NaN(), true},
	}
	for _, tt := range tests {
		err := tt.r.Check(tt.v)
		if tt.wantErr {
			assert.Error(t, err, "Check(%v) on %+v", tt.v, tt.r)
		} else {
			assert.NoError(t, err, "Check(%v) on %+v", tt.v, tt.r)
		}
	}
}

func TestNearestEmpty(t *testing.T) {
	_, ok := CurveSeries{}.Nearest(3)
	assert.False(t, ok)
	assert.Equal(t, 0.0, CurveSeries{}.MaxOutput())
}

func TestRecompute(t *testing.T) {
	snap, err := Recompute(DefaultParams(), DefaultDomain())
	require.NoError(t, err)

	assert.Equal(t, DefaultParams(), snap.Params)
	assert.Equal(t, 96, snap.Current.Len())
	assert.Equal(t, 96, snap.Baseline.Len())
	assert.Equal(t, 100.0, snap.Comparison.CurrentOutput)
	assert.Equal(t, 100.0, snap.Comparison.BaselineOutput)
	assert.InDelta(t, 110.0, snap.Marker.Points[1].Output, 1e-9)
}

func TestRecomputeInvalid(t *testing.T) {
	_, err := Recompute(Params{A: 10, N: 10, Alpha: 0.3, K: -1}, DefaultDomain())
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Recompute(DefaultParams(), Domain{})
	require.ErrorIs(t, err, ErrInvalidDomain)
}

func TestRefreshKeepsSeriesWhenOnlyKMoves(t *testing.T) {
	prev, err := Recompute(DefaultParams(), DefaultDomain())
	require.NoError(t, err)

	p := prev.Params
	p.K = 15
	next, err := Refresh(prev, p)
	require.NoError(t, err)

	assert.Same(t, &prev.Current.Points[0], &next.Current.Points[0])
	assert.Equal(t, 15.0, next.Comparison.K)
	assert.Equal(t, 15.0, next.Marker.Points[0].K)
}

func TestRefreshRegeneratesOnShapeChange(t *testing.T) {
	prev, err := Recompute(DefaultParams(), DefaultDomain())
	require.NoError(t, err)

	p := prev.Params
	p.Alpha = 0.5
	next, err := Refresh(prev, p)
	require.NoError(t, err)

	want, err := Recompute(p, DefaultDomain())
	require.NoError(t, err)
	assert.Equal(t, want, next)
	assert.Equal(t, prev.Baseline, next.Baseline)
}

func TestCurvePropertiesAcrossSliderRanges(t *testing.T) {
	rng := utils.NewRandSource(20240601)
	baseline, err := BaselineCurve(DefaultDomain())
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		p := Params{
			A:     rng.StepFloat64(1, 20, 0.5),
			N:     rng.StepFloat64(1, 20, 0.5),
			Alpha: rng.StepFloat64(0.01, 0.99, 0.01),
			K:     rng.StepFloat64(1, 20, 0.5),
		}
		snap, err := Recompute(p, DefaultDomain())
		require.NoError(t, err, "params %+v", p)

		require.Equal(t, 96, snap.Current.Len())
		for j := 1; j < snap.Current.Len(); j++ {
			require.LessOrEqual(t, snap.Current.Points[j-1].Output, snap.Current.Points[j].Output,
				"params %+v at k=%v", p, snap.Current.Points[j].K)
		}
		assert.Equal(t, baseline.Points, snap.Baseline.Points, "baseline moved for %+v", p)
		assert.Equal(t, p.K, snap.Comparison.K)
		assert.Equal(t, round2(Output(BaselineA, BaselineN, BaselineAlpha, p.K)), snap.Comparison.BaselineOutput)
		assert.GreaterOrEqual(t, snap.Marker.Points[1].Output, snap.Comparison.CurrentOutput)
		assert.GreaterOrEqual(t, snap.Marker.Points[1].Output, snap.Comparison.BaselineOutput)
	}
}

func round2(v float64) float64 {
	return utils.Round(v, 2)
}
