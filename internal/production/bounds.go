package production

import (
	"fmt"
	"math"

	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/utils"
)

// Range is the interactive range of one parameter: the slider bounds and
// the step the slider moves by.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

var (
	RangeA     = Range{Min: 1, Max: 20, Step: 0.5}
	RangeN     = Range{Min: 1, Max: 20, Step: 0.5}
	RangeAlpha = Range{Min: 0.01, Max: 0.99, Step: 0.01}
	RangeK     = Range{Min: 1, Max: 20, Step: 0.5}
)

// Check reports an error when v lies outside the range or off its step grid.
func (r Range) Check(v float64) error {
	if math.IsNaN(v) || v < r.Min || v > r.Max {
		return fmt.Errorf("%v outside [%g, %g]", v, r.Min, r.Max)
	}
	if math.Abs(utils.SnapToStep(v, r.Min, r.Step)-v) > 1e-9 {
		return fmt.Errorf("%v is not a multiple of %g from %g", v, r.Step, r.Min)
	}
	return nil
}
