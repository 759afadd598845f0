package vecmath

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Sentinel errors for vector operations.
var (
	// ErrZeroVector indicates a vector whose magnitude is zero or not finite.
	ErrZeroVector = errors.New("vecmath: zero-length vector")

	// ErrParamOutOfRange indicates an interpolation parameter outside [0,1].
	ErrParamOutOfRange = errors.New("vecmath: interpolation parameter out of range")
)

// ParallelThreshold is the |a·b| value above which Slerp falls back to
// normalized linear interpolation.
const ParallelThreshold = 0.9995

// Zero is the sentinel returned alongside ErrZeroVector.
var Zero = r3.Vector{}

// Dot returns the scalar product a·b.
// Complexity: O(1).
func Dot(a, b r3.Vector) float64 {
	return a.Dot(b)
}

// Cross returns the vector product a×b.
// Complexity: O(1).
func Cross(a, b r3.Vector) r3.Vector {
	return a.Cross(b)
}

// Normalize scales v to unit length.
// Returns (Zero, ErrZeroVector) if |v| is 0 or not finite.
// Complexity: O(1).
func Normalize(v r3.Vector) (r3.Vector, error) {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Zero, ErrZeroVector
	}

	return v.Mul(1 / n), nil
}

// Clamp restricts x to [-1,1]; used before acos/asin of dot products.
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}

	return x
}

// Angle returns the angle in radians between a and b, in [0,π].
// Inputs need not be unit length; zero vectors yield ErrZeroVector.
func Angle(a, b r3.Vector) (float64, error) {
	ua, err := Normalize(a)
	if err != nil {
		return 0, err
	}
	ub, err := Normalize(b)
	if err != nil {
		return 0, err
	}

	return math.Acos(Clamp(ua.Dot(ub))), nil
}

// Lerp linearly interpolates a→b without renormalizing.
func Lerp(a, b r3.Vector, t float64) r3.Vector {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Slerp interpolates along the great-circle arc from unit vector a (t=0)
// to unit vector b (t=1).
//
// Near-parallel inputs (|a·b| ≥ ParallelThreshold) are interpolated
// linearly and renormalized. Nearly antipodal inputs have no unique arc;
// their chord midpoint collapses to the origin and the call fails with
// ErrZeroVector.
// Complexity: O(1).
func Slerp(a, b r3.Vector, t float64) (r3.Vector, error) {
	if t < 0 || t > 1 || math.IsNaN(t) {
		return Zero, fmt.Errorf("Slerp: t=%v: %w", t, ErrParamOutOfRange)
	}
	d := Clamp(a.Dot(b))
	if math.Abs(d) >= ParallelThreshold {
		v, err := Normalize(Lerp(a, b, t))
		if err != nil {
			return Zero, fmt.Errorf("Slerp: antipodal endpoints: %w", err)
		}

		return v, nil
	}
	theta := math.Acos(d)
	s := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / s
	wb := math.Sin(t*theta) / s

	return a.Mul(wa).Add(b.Mul(wb)), nil
}
