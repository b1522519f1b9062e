package production

// Snapshot is the derived state behind one render: both curves, the K marker
// and the bar comparison.
type Snapshot struct {
	Params     Params         `json:"params" yaml:"params"`
	Domain     Domain         `json:"domain" yaml:"domain"`
	Current    CurveSeries    `json:"current" yaml:"current"`
	Baseline   CurveSeries    `json:"baseline" yaml:"baseline"`
	Marker     CurveSeries    `json:"marker" yaml:"marker"`
	Comparison ComparisonPair `json:"comparison" yaml:"comparison"`
}

// Recompute derives a full Snapshot from p over d.
func Recompute(p Params, d Domain) (Snapshot, error) {
	current, err := GenerateCurve(p, d)
	if err != nil {
		return Snapshot{}, err
	}
	baseline, err := BaselineCurve(d)
	if err != nil {
		return Snapshot{}, err
	}
	return withComparison(p, d, current, baseline)
}

// Refresh recomputes only what depends on p.K when the curve shape of prev
// matches p. Otherwise it behaves like Recompute.
func Refresh(prev Snapshot, p Params) (Snapshot, error) {
	if !sameShape(prev.Params, p) || prev.Current.Len() == 0 || prev.Baseline.Len() == 0 {
		return Recompute(p, prev.Domain)
	}
	return withComparison(p, prev.Domain, prev.Current, prev.Baseline)
}

func withComparison(p Params, d Domain, current, baseline CurveSeries) (Snapshot, error) {
	cmp, err := Compare(p)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Params:     p,
		Domain:     d,
		Current:    current,
		Baseline:   baseline,
		Marker:     MarkerSeries(cmp),
		Comparison: cmp,
	}, nil
}

func sameShape(a, b Params) bool {
	return a.A == b.A && a.N == b.N && a.Alpha == b.Alpha
}
