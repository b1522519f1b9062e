package production

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidDomain    = errors.New("invalid domain")
)

// Baseline constants. The baseline curve is always drawn with these values.
const (
	BaselineA     = 10.0
	BaselineN     = 10.0
	BaselineAlpha = 0.25
)

// Params holds the inputs of the production function.
type Params struct {
	A     float64 `json:"a" yaml:"a"`
	N     float64 `json:"n" yaml:"n"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
	K     float64 `json:"k" yaml:"k"`
}

// DefaultParams returns the values the visualizer starts with.
func DefaultParams() Params {
	return Params{A: 10, N: 10, Alpha: 0.3, K: 10}
}

// BaselineParams returns the fixed baseline parameters evaluated at capital k.
func BaselineParams(k float64) Params {
	return Params{A: BaselineA, N: BaselineN, Alpha: BaselineAlpha, K: k}
}

// ValidateShape checks A, N and Alpha, the parameters that determine the
// shape of a curve.
func (p Params) ValidateShape() error {
	if !(p.Alpha > 0 && p.Alpha < 1) {
		return fmt.Errorf("%w: alpha must be in (0,1), got %v", ErrInvalidParameter, p.Alpha)
	}
	if !(p.A > 0) || math.IsInf(p.A, 0) {
		return fmt.Errorf("%w: A must be positive, got %v", ErrInvalidParameter, p.A)
	}
	if !(p.N > 0) || math.IsInf(p.N, 0) {
		return fmt.Errorf("%w: N must be positive, got %v", ErrInvalidParameter, p.N)
	}
	return nil
}

// Validate checks every parameter including K.
func (p Params) Validate() error {
	if err := p.ValidateShape(); err != nil {
		return err
	}
	if !(p.K > 0) || math.IsInf(p.K, 0) {
		return fmt.Errorf("%w: K must be positive, got %v", ErrInvalidParameter, p.K)
	}
	return nil
}

// Output evaluates A·k^α·N^(1-α) without rounding. Callers are expected to
// have validated the parameters.
func Output(a, n, alpha, k float64) float64 {
	return a * math.Pow(k, alpha) * math.Pow(n, 1-alpha)
}
