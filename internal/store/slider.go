package store

import (
	"fmt"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/utils"
)

// SliderID names one of the four parameters.
type SliderID string

const (
	SliderA     SliderID = "a"
	SliderN     SliderID = "n"
	SliderAlpha SliderID = "alpha"
	SliderK     SliderID = "k"
)

// Slider describes a range input: bounds, step and labels.
type Slider struct {
	ID     SliderID
	Label  string
	Symbol string
	Min    float64
	Max    float64
	Step   float64
}

// DefaultSliders returns the four sliders in display order.
func DefaultSliders() []Slider {
	return []Slider{
		newSlider(SliderA, "Total Factor Productivity", "A", production.RangeA),
		newSlider(SliderN, "Labor", "N", production.RangeN),
		newSlider(SliderAlpha, "Output Elasticity of Capital", "α", production.RangeAlpha),
		newSlider(SliderK, "Level of Capital", "K", production.RangeK),
	}
}

func newSlider(id SliderID, label, symbol string, r production.Range) Slider {
	return Slider{ID: id, Label: label, Symbol: symbol, Min: r.Min, Max: r.Max, Step: r.Step}
}

// Clamp bounds v to [Min, Max] and snaps it to the step grid.
func (sl Slider) Clamp(v float64) float64 {
	v = utils.ClampFloat64(v, sl.Min, sl.Max)
	v = utils.SnapToStep(v, sl.Min, sl.Step)
	// Snapping can land one step past Max when Max is off-grid.
	return utils.ClampFloat64(v, sl.Min, sl.Max)
}

// Fraction is v's position in [0, 1] along the slider track.
func (sl Slider) Fraction(v float64) float64 {
	return utils.ClampFloat64(utils.Lerp(v, sl.Min, sl.Max, 0, 1), 0, 1)
}

// Title renders e.g. "Labor (N): 10.00".
func (sl Slider) Title(v float64) string {
	return fmt.Sprintf("%s (%s): %.2f", sl.Label, sl.Symbol, v)
}

// In returns the value this slider controls in p.
func (id SliderID) In(p production.Params) float64 {
	switch id {
	case SliderA:
		return p.A
	case SliderN:
		return p.N
	case SliderAlpha:
		return p.Alpha
	case SliderK:
		return p.K
	}
	return 0
}

func (id SliderID) set(p production.Params, v float64) production.Params {
	switch id {
	case SliderA:
		p.A = v
	case SliderN:
		p.N = v
	case SliderAlpha:
		p.Alpha = v
	case SliderK:
		p.K = v
	}
	return p
}
