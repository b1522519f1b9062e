package production

import (
	"fmt"
	"math"

	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/utils"
)

// Series names as shown in chart legends.
const (
	SeriesCurrent  = "New production function"
	SeriesBaseline = "Baseline"
	SeriesMarker   = "Current K"
)

const (
	minCapitalDecimals = 1
	outputDecimals     = 2
	maxSamples         = 100000
)

// Domain is a closed capital range sampled at a fixed step.
type Domain struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// DefaultDomain is the capital range the charts use: 1 to 20 in steps of 0.2.
func DefaultDomain() Domain {
	return Domain{Min: 1, Max: 20, Step: 0.2}
}

// Validate rejects domains that would produce no points, an unbounded
// number of points, or non-positive capital values.
func (d Domain) Validate() error {
	if !(d.Step > 0) {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidDomain, d.Step)
	}
	if !(d.Min > 0) {
		return fmt.Errorf("%w: min must be positive, got %v", ErrInvalidDomain, d.Min)
	}
	if !(d.Max >= d.Min) || math.IsInf(d.Max, 0) {
		return fmt.Errorf("%w: max %v must not be below min %v", ErrInvalidDomain, d.Max, d.Min)
	}
	if (d.Max-d.Min)/d.Step > maxSamples {
		return fmt.Errorf("%w: more than %d samples", ErrInvalidDomain, maxSamples)
	}
	return nil
}

// SamplePoint is one (capital, output) pair.
type SamplePoint struct {
	K      float64 `json:"k" yaml:"k"`
	Output float64 `json:"output" yaml:"output"`
}

// CurveSeries is a named sequence of points in ascending K order.
type CurveSeries struct {
	Name   string        `json:"name" yaml:"name"`
	Points []SamplePoint `json:"points" yaml:"points"`
}

// Len returns the number of points.
func (c CurveSeries) Len() int {
	return len(c.Points)
}

// Nearest returns the point whose K is closest to k. Ties go to the lower K.
// ok is false for an empty series.
func (c CurveSeries) Nearest(k float64) (SamplePoint, bool) {
	if len(c.Points) == 0 {
		return SamplePoint{}, false
	}
	best := c.Points[0]
	bestDist := math.Abs(best.K - k)
	for _, pt := range c.Points[1:] {
		if d := math.Abs(pt.K - k); d < bestDist {
			best, bestDist = pt, d
		}
	}
	return best, true
}

// MaxOutput returns the largest output in the series, or 0 when empty.
func (c CurveSeries) MaxOutput() float64 {
	top := 0.0
	for _, pt := range c.Points {
		top = utils.MaxFloat64(top, pt.Output)
	}
	return top
}

// GenerateCurve samples A·k^α·N^(1-α) over d. K in p is ignored.
//
// k advances by repeatedly adding d.Step and each sample is rounded to one
// decimal (or to the step's precision when finer), so the default domain
// gives 96 points ending at 20.0.
func GenerateCurve(p Params, d Domain) (CurveSeries, error) {
	if err := p.ValidateShape(); err != nil {
		return CurveSeries{}, err
	}
	if err := d.Validate(); err != nil {
		return CurveSeries{}, err
	}
	return sample(SeriesCurrent, p, d), nil
}

// BaselineCurve samples the fixed baseline function over d.
func BaselineCurve(d Domain) (CurveSeries, error) {
	if err := d.Validate(); err != nil {
		return CurveSeries{}, err
	}
	return sample(SeriesBaseline, BaselineParams(0), d), nil
}

func sample(name string, p Params, d Domain) CurveSeries {
	decimals := max(minCapitalDecimals, utils.Decimals(d.Step))
	// limit stops the loop when k is too large for Step to move it.
	limit := int((d.Max-d.Min)/d.Step) + 2
	points := make([]SamplePoint, 0, limit)
	for k, i := d.Min, 0; k <= d.Max && i < limit; k, i = k+d.Step, i+1 {
		rk := utils.Round(k, decimals)
		points = append(points, SamplePoint{
			K:      rk,
			Output: utils.Round(Output(p.A, p.N, p.Alpha, rk), outputDecimals),
		})
	}
	return CurveSeries{Name: name, Points: points}
}
