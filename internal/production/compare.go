package production

import (
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/utils"
)

// markerHeadroom lifts the K marker 10% above the taller of the two outputs.
const markerHeadroom = 1.1

// ComparisonPair is current and baseline output evaluated at the same K.
type ComparisonPair struct {
	K              float64 `json:"k" yaml:"k"`
	CurrentOutput  float64 `json:"current_output" yaml:"current_output"`
	BaselineOutput float64 `json:"baseline_output" yaml:"baseline_output"`
}

// Difference returns current minus baseline output.
func (c ComparisonPair) Difference() float64 {
	return utils.Round(c.CurrentOutput-c.BaselineOutput, outputDecimals)
}

// MarkerTop is the upper end of the vertical K marker.
func (c ComparisonPair) MarkerTop() float64 {
	return utils.MaxFloat64(c.CurrentOutput, c.BaselineOutput) * markerHeadroom
}

// Compare evaluates the live parameters and the baseline at p.K.
func Compare(p Params) (ComparisonPair, error) {
	if err := p.Validate(); err != nil {
		return ComparisonPair{}, err
	}
	return ComparisonPair{
		K:              p.K,
		CurrentOutput:  utils.Round(Output(p.A, p.N, p.Alpha, p.K), outputDecimals),
		BaselineOutput: utils.Round(Output(BaselineA, BaselineN, BaselineAlpha, p.K), outputDecimals),
	}, nil
}

// MarkerSeries returns the two-point vertical line drawn at the pair's K.
func MarkerSeries(c ComparisonPair) CurveSeries {
	return CurveSeries{
		Name: SeriesMarker,
		Points: []SamplePoint{
			{K: c.K, Output: 0},
			{K: c.K, Output: c.MarkerTop()},
		},
	}
}
