package utils

import (
	"math"
)

// MaxFloat64 returns the maximum of two float64 values
func MaxFloat64(a, b float64) float64 {
	return math.Max(a, b)
}

// ClampFloat64 clamps a float64 value between min and max
func ClampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Round rounds a float64 to the specified number of decimal places
func Round(value float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(value*multiplier) / multiplier
}

// Decimals returns how many decimal places are needed to print step exactly,
// capped at 6. A step of 0.5 gives 1, 0.01 gives 2, 1 gives 0.
func Decimals(step float64) int {
	for d := 0; d < 6; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return d
		}
	}
	return 6
}

// SnapToStep moves value onto the grid min + n*step nearest to it and rounds
// the result to the step's precision so repeated snapping is stable.
func SnapToStep(value, min, step float64) float64 {
	if step <= 0 {
		return value
	}
	n := math.Round((value - min) / step)
	return Round(min+n*step, Decimals(step))
}

// Lerp maps v from [inMin, inMax] onto [outMin, outMax]. A degenerate input
// range maps everything to outMin.
func Lerp(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
