package spyce

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

func matDense(m Matrix) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func TestMatrixOps(t *testing.T) {
	m := Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	if Identity().Mul(m) != m || m.Mul(Identity()) != m {
		t.Fatal("identity product fail")
	}
	if m.MulVec(Vector{1, 1, 1}) != (Vector{6, 15, 25}) {
		t.Fatal("matrix-vector product fail")
	}
	mt := m.Transpose()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if mt[r][c] != m[c][r] {
				t.Fatalf("transpose fail at %d,%d", r, c)
			}
		}
	}
}

func TestRotationMapsAxes(t *testing.T) {
	i := Vector{1, 0, 0}
	j := Vector{0, 1, 0}
	k := Vector{0, 0, 1}
	rz, err := Rotation(math.Pi/2, k)
	if err != nil {
		t.Fatal(err)
	}
	got := rz.MulVec(i)
	for ax := 0; ax < 3; ax++ {
		if !scalar.EqualWithinAbs(got[ax], j[ax], 1e-15) {
			t.Fatalf("quarter turn about z: %v", got)
		}
	}
	rx, err := Rotation(math.Pi/2, i)
	if err != nil {
		t.Fatal(err)
	}
	got = rx.MulVec(j)
	for ax := 0; ax < 3; ax++ {
		if !scalar.EqualWithinAbs(got[ax], k[ax], 1e-15) {
			t.Fatalf("quarter turn about x: %v", got)
		}
	}
	if _, err = Rotation(1, Vector{}); !errors.Is(err, ErrZeroVector) {
		t.Fatalf("expected ErrZeroVector, got %v", err)
	}
}

func TestRotationProperties(t *testing.T) {
	fixtures := []struct {
		angle float64
		axis  Vector
	}{
		{0.1, Vector{1, 2, 3}},
		{-2.5, Vector{0, 1, 0}},
		{5, Vector{1, -1, 1}},
		{math.Pi, Vector{3, 0, -4}},
	}
	for _, fix := range fixtures {
		r, err := Rotation(fix.angle, fix.axis)
		if err != nil {
			t.Fatal(err)
		}
		// Orthonormal: R times its transpose is the identity.
		rrt := r.Mul(r.Transpose())
		eye := Identity()
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if !scalar.EqualWithinAbs(rrt[row][col], eye[row][col], 1e-14) {
					t.Fatalf("R·Rᵀ != I for angle=%g axis=%v", fix.angle, fix.axis)
				}
			}
		}
		// The trace of any rotation is 1+2cos of its angle.
		trace := r[0][0] + r[1][1] + r[2][2]
		if !scalar.EqualWithinAbs(trace, 1+2*math.Cos(fix.angle), 1e-13) {
			t.Fatalf("trace %g != 1+2cos(%g)", trace, fix.angle)
		}
		// The axis itself must not move.
		got := r.MulVec(fix.axis)
		for ax := 0; ax < 3; ax++ {
			if !scalar.EqualWithinAbsOrRel(got[ax], fix.axis[ax], 1e-12, 1e-12) {
				t.Fatalf("axis moved: %v -> %v", fix.axis, got)
			}
		}
	}
}

func TestEulerComposition(t *testing.T) {
	α := math.Pi / 17
	β := math.Pi / 16
	γ := math.Pi / 15
	rzα, _ := Rotation(α, Vector{0, 0, 1})
	rxβ, _ := Rotation(β, Vector{1, 0, 0})
	rzγ, _ := Rotation(γ, Vector{0, 0, 1})
	var p1, p2 mat.Dense
	p1.Mul(matDense(rzα), matDense(rxβ))
	p2.Mul(&p1, matDense(rzγ))
	closed := matDense(RotationFromEulerAngles(α, β, γ))
	if !mat.EqualApprox(&p2, closed, 1e-14) {
		t.Logf("\n%v", mat.Formatted(&p2))
		t.Logf("\n%v", mat.Formatted(closed))
		t.Fatal("closed form diverges from the Rz·Rx·Rz product")
	}
}

func TestPerifocalToInertial(t *testing.T) {
	// From Vallado: PQW state to IJK with i=87.87°, ω=53.38°, Ω=227.89°.
	i := Deg2rad(87.87)
	ω := Deg2rad(53.38)
	Ω := Deg2rad(227.89)
	plane := RotationFromEulerAngles(Ω, i, ω)
	rGot := plane.MulVec(Vector{-466763.9, 11447021.9, 0})
	rExp := Vector{6525368.103709379, 6861531.814548294, 6449118.636407358}
	for ax := 0; ax < 3; ax++ {
		if !scalar.EqualWithinRel(rGot[ax], rExp[ax], 1e-9) {
			t.Fatalf("R conversion failed on axis %d: %.9g != %.9g", ax, rGot[ax], rExp[ax])
		}
	}
	vGot := plane.MulVec(Vector{-5996.222, 4753.601, 0})
	vExp := Vector{4902.278620687254, 5533.139558121602, -1975.7104281719946}
	for ax := 0; ax < 3; ax++ {
		if !scalar.EqualWithinRel(vGot[ax], vExp[ax], 1e-9) {
			t.Fatalf("V conversion failed on axis %d: %.9g != %.9g", ax, vGot[ax], vExp[ax])
		}
	}
}
