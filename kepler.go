package spyce

import (
	"fmt"
	"math"
)

// Anomaly solver bounds. Newton-Raphson on Kepler's equation gains roughly a
// digit per step once it is near the root, so the iteration cap is generous;
// hitting it means the inputs are pathological and the caller gets
// ErrConvergence rather than a half-converged anomaly.
const (
	anomalyε       = 1e-12
	anomalyMaxIter = 100
)

// wrap2π reduces an angle to [0, 2π).
func wrap2π(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// wrapπ reduces an angle to (-π, π].
func wrapπ(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a > math.Pi:
		a -= 2 * math.Pi
	case a <= -math.Pi:
		a += 2 * math.Pi
	}
	return a
}

// eccentricFromMean solves Kepler's equation M = E - e·sinE for the
// eccentric anomaly E, Newton-Raphson seeded at E0 = M. Elliptic orbits
// only (e < 1).
func eccentricFromMean(M, e float64) (float64, error) {
	E := M
	for i := 0; i < anomalyMaxIter; i++ {
		δ := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= δ
		if math.Abs(δ) < anomalyε {
			return E, nil
		}
	}
	return 0, fmt.Errorf("eccentric anomaly at M=%g e=%g: %w", M, e, ErrConvergence)
}

// hyperbolicFromMean solves the hyperbolic Kepler equation M = e·sinhH - H
// for H, Newton-Raphson seeded at H0 = sign(M)·ln(2|M|/e + 1.8) (e > 1).
func hyperbolicFromMean(M, e float64) (float64, error) {
	H := sign(M) * math.Log(2*math.Abs(M)/e+1.8)
	for i := 0; i < anomalyMaxIter; i++ {
		δ := (e*math.Sinh(H) - H - M) / (e*math.Cosh(H) - 1)
		H -= δ
		if math.Abs(δ) < anomalyε {
			return H, nil
		}
	}
	return 0, fmt.Errorf("hyperbolic anomaly at M=%g e=%g: %w", M, e, ErrConvergence)
}

// parabolicFromMean solves Barker's equation M = D + D³/3 for D = tan(ν/2)
// in closed form: with z³ = (3M + √(9M² + 4))/2, the real root is z - 1/z.
// No iteration, hence no convergence failure.
func parabolicFromMean(M float64) float64 {
	m := math.Abs(M)
	z := math.Cbrt((3*m + math.Sqrt(9*m*m+4)) / 2)
	D := z - 1/z
	if M < 0 {
		return -D
	}
	return D
}

// trueFromEccentric converts E to the true anomaly through the half-angle
// form, which stays well-conditioned as e approaches 1.
func trueFromEccentric(E, e float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
}

// eccentricFromTrue is the exact inverse of trueFromEccentric.
func eccentricFromTrue(ν, e float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1-e)*math.Sin(ν/2), math.Sqrt(1+e)*math.Cos(ν/2))
}

// trueFromHyperbolic converts H to the true anomaly (e > 1).
func trueFromHyperbolic(H, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(H/2))
}

// hyperbolicFromTrue converts the true anomaly to H through asinh, which is
// total: the tanh half-angle inverse would need its argument clamped near
// the asymptotes.
func hyperbolicFromTrue(ν, e float64) float64 {
	sinhH := math.Sqrt(e*e-1) * math.Sin(ν) / (1 + e*math.Cos(ν))
	return math.Asinh(sinhH)
}

// meanFromTrue inverts the anomaly chain at eccentricity e. Every branch is
// exact algebra, no iteration.
func meanFromTrue(ν, e float64) float64 {
	switch {
	case e < 1:
		E := eccentricFromTrue(ν, e)
		return E - e*math.Sin(E)
	case e > 1:
		H := hyperbolicFromTrue(ν, e)
		return e*math.Sinh(H) - H
	default:
		D := math.Tan(ν / 2)
		return D + D*D*D/3
	}
}

// trueFromMean runs the forward anomaly chain at eccentricity e.
func trueFromMean(M, e float64) (float64, error) {
	switch {
	case e < 1:
		E, err := eccentricFromMean(M, e)
		if err != nil {
			return 0, err
		}
		return trueFromEccentric(E, e), nil
	case e > 1:
		H, err := hyperbolicFromMean(M, e)
		if err != nil {
			return 0, err
		}
		return trueFromHyperbolic(H, e), nil
	default:
		return 2 * math.Atan(parabolicFromMean(M)), nil
	}
}
