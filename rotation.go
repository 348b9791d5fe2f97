package spyce

import (
	"fmt"
	"math"
)

// Matrix is a row-major 3x3 matrix. Like Vector it is a pure value type.
type Matrix [3]Vector

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MulVec returns m*v. The product is expanded by hand: this sits on the hot
// path of every position lookup.
func (m Matrix) MulVec(v Vector) Vector {
	return Vector{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m*o.
func (m Matrix) Mul(o Matrix) Matrix {
	var p Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return p
}

// Transpose returns the transpose of m, which for a rotation is its inverse.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Rotation returns the matrix rotating by angle around axis (Rodrigues
// form). The axis is normalized internally; a zero-length axis returns
// ErrZeroVector rather than a silent NaN matrix.
func Rotation(angle float64, axis Vector) (Matrix, error) {
	n := axis.Norm()
	if n == 0 {
		return Matrix{}, fmt.Errorf("rotation: %w", ErrZeroVector)
	}
	x, y, z := axis[0]/n, axis[1]/n, axis[2]/n
	s, c := math.Sincos(angle)
	return Matrix{
		{x*x + (1-x*x)*c, x*y*(1-c) - z*s, x*z*(1-c) + y*s},
		{x*y*(1-c) + z*s, y*y + (1-y*y)*c, y*z*(1-c) - x*s},
		{x*z*(1-c) - y*s, y*z*(1-c) + x*s, z*z + (1-z*z)*c},
	}, nil
}

// RotationFromEulerAngles performs an intrinsic Z-X-Z rotation, the product
// Rz(α)·Rx(β)·Rz(γ). With (α, β, γ) = (Ω, i, ω) it carries the orbital plane
// frame onto the primary's frame.
func RotationFromEulerAngles(α, β, γ float64) Matrix {
	s1, c1 := math.Sincos(α)
	s2, c2 := math.Sincos(β)
	s3, c3 := math.Sincos(γ)
	return Matrix{
		{c1*c3 - c2*s1*s3, -c1*s3 - c2*c3*s1, s1 * s2},
		{c3*s1 + c1*c2*s3, c1*c2*c3 - s1*s3, -c1 * s2},
		{s2 * s3, c3 * s2, c2},
	}
}
