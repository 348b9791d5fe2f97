package spyce

import (
	"fmt"
	"math"
)

const deg2rad = math.Pi / 180

// Vector is a Cartesian vector with three components. It is a value type:
// every operation returns a new vector and no operation mutates its receiver.
type Vector [3]float64

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v[0], -v[1], -v[2]}
}

// Scale returns f*v.
func (v Vector) Scale(f float64) Vector {
	return Vector{f * v[0], f * v[1], f * v[2]}
}

// Dot returns the inner product v·o. The three products are accumulated with
// Neumaier compensation: the eccentricity-vector arithmetic downstream
// cancels almost equal terms, and a naive left-to-right sum loses digits
// there.
func (v Vector) Dot(o Vector) float64 {
	var sum, comp float64
	for i := 0; i < 3; i++ {
		p := v[i] * o[i]
		t := sum + p
		if math.Abs(sum) >= math.Abs(p) {
			comp += (sum - t) + p
		} else {
			comp += (p - t) + sum
		}
		sum = t
	}
	return sum + comp
}

// Cross returns the cross product v x o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// SquaredNorm returns |v|².
func (v Vector) SquaredNorm() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Unit returns the unit vector along v, or ErrZeroVector for a zero-length v.
func (v Vector) Unit() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Vector{}, fmt.Errorf("unit: %w", ErrZeroVector)
	}
	return Vector{v[0] / n, v[1] / n, v[2] / n}, nil
}

// Angle returns the unoriented angle between v and o, in [0, π]. The cosine
// is clamped to [-1, 1] before the acos call: rounding pushes the ratio a few
// ulps outside the interval for near-parallel vectors, and acos would return
// NaN there.
func (v Vector) Angle(o Vector) (float64, error) {
	nv, no := v.Norm(), o.Norm()
	if nv == 0 || no == 0 {
		return 0, fmt.Errorf("angle: %w", ErrZeroVector)
	}
	return math.Acos(clamp(v.Dot(o)/(nv*no), -1, 1)), nil
}

// OrientedAngle returns the angle from v to o, negated when the rotation
// carrying v onto o is clockwise as seen from the tip of normal. The result
// is in (-π, π].
func (v Vector) OrientedAngle(o, normal Vector) (float64, error) {
	α, err := v.Angle(o)
	if err != nil {
		return 0, err
	}
	if normal.Dot(v.Cross(o)) < 0 {
		return -α, nil
	}
	return α, nil
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// sign returns the sign of a given number, and zero for zero.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}
