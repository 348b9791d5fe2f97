package spyce

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// elementε is the relative tolerance on reconstructed orbital elements.
	elementε = 1e-6
	// meanAnomalyε is the absolute tolerance on phase agreement (2⁻¹²).
	meanAnomalyε = 1.0 / 4096
	// circularε is the eccentricity below which the periapsis direction is
	// numerically meaningless and the argument of periapsis is fixed to 0.
	circularε = 1e-12
	// equatorialε is the relative node-vector norm below which an orbit is
	// treated as equatorial and the ascending node is fixed to 0.
	equatorialε = 1e-12
)

// elements is the canonical element tuple every OrbitSpec normalizes to:
// periapsis (m), eccentricity, the three orientation angles (rad), and the
// time origin (epoch in s, M0 the mean anomaly at epoch in rad).
type elements struct {
	rp, e, i, Ω, ω float64
	epoch, M0      float64
}

func (els elements) validate() error {
	for _, v := range []float64{els.rp, els.e, els.i, els.Ω, els.ω, els.epoch, els.M0} {
		if math.IsNaN(v) {
			return fmt.Errorf("orbit: NaN element: %w", ErrValidation)
		}
	}
	if els.rp <= 0 || math.IsInf(els.rp, 0) {
		return fmt.Errorf("orbit: periapsis must be positive and finite, got %g: %w", els.rp, ErrValidation)
	}
	if els.e < 0 || math.IsInf(els.e, 0) {
		return fmt.Errorf("orbit: eccentricity must be non-negative and finite, got %g: %w", els.e, ErrValidation)
	}
	if els.i < 0 || els.i > math.Pi {
		return fmt.Errorf("orbit: inclination must be in [0, π], got %g: %w", els.i, ErrValidation)
	}
	for _, v := range []float64{els.Ω, els.ω, els.epoch, els.M0} {
		if math.IsInf(v, 0) {
			return fmt.Errorf("orbit: infinite element: %w", ErrValidation)
		}
	}
	return nil
}

// An OrbitSpec is one complete parameterization of an orbit. Exactly one
// variant applies per construction, each carries only the fields its mode
// needs, and each normalizes to the canonical element set on its own. All
// distances are in meters, angles in radians, times in seconds.
type OrbitSpec interface {
	normalize(μ float64) (elements, error)
}

// ByPeriapsisEccentricity is the canonical parameterization.
type ByPeriapsisEccentricity struct {
	Periapsis                float64
	Eccentricity             float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	Epoch                    float64
	MeanAnomalyAtEpoch       float64
}

func (s ByPeriapsisEccentricity) normalize(μ float64) (elements, error) {
	return elements{
		rp: s.Periapsis, e: s.Eccentricity,
		i: s.Inclination, Ω: s.LongitudeOfAscendingNode, ω: s.ArgumentOfPeriapsis,
		epoch: s.Epoch, M0: s.MeanAnomalyAtEpoch,
	}, nil
}

// BySemiMajorAxisEccentricity derives the periapsis as a(1-e). The
// semi-major axis must be negative for a hyperbolic orbit and does not
// exist for a parabolic one.
type BySemiMajorAxisEccentricity struct {
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	Epoch                    float64
	MeanAnomalyAtEpoch       float64
}

func (s BySemiMajorAxisEccentricity) normalize(μ float64) (elements, error) {
	if s.Eccentricity == 1 {
		return elements{}, fmt.Errorf("orbit: the semi-major axis of a parabolic orbit is infinite: %w", ErrDomain)
	}
	return elements{
		rp: s.SemiMajorAxis * (1 - s.Eccentricity), e: s.Eccentricity,
		i: s.Inclination, Ω: s.LongitudeOfAscendingNode, ω: s.ArgumentOfPeriapsis,
		epoch: s.Epoch, M0: s.MeanAnomalyAtEpoch,
	}, nil
}

// ByApsides derives the shape from two apsis distances, in either order.
// Hyperbolic apoapses are negative (they sit on the empty-focus branch), so
// the shape comes out of absolute-value algebra: periapsis = min(|r1|, |r2|)
// and e = |r1-r2|/|r1+r2|. A single infinite apsis degenerates to the
// parabola through the finite one.
type ByApsides struct {
	Apsis1                   float64
	Apsis2                   float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	Epoch                    float64
	MeanAnomalyAtEpoch       float64
}

func (s ByApsides) normalize(μ float64) (elements, error) {
	r1, r2 := s.Apsis1, s.Apsis2
	if math.IsNaN(r1) || math.IsNaN(r2) {
		return elements{}, fmt.Errorf("orbit: NaN apsis: %w", ErrValidation)
	}
	var rp, e float64
	switch {
	case math.IsInf(r1, 0) && math.IsInf(r2, 0):
		return elements{}, fmt.Errorf("orbit: both apsides are infinite: %w", ErrValidation)
	case math.IsInf(r1, 0):
		rp, e = math.Abs(r2), 1
	case math.IsInf(r2, 0):
		rp, e = math.Abs(r1), 1
	default:
		if r1+r2 == 0 {
			return elements{}, fmt.Errorf("orbit: apsides sum to zero, eccentricity undefined: %w", ErrValidation)
		}
		rp = math.Min(math.Abs(r1), math.Abs(r2))
		e = math.Abs((r1 - r2) / (r1 + r2))
	}
	return elements{
		rp: rp, e: e,
		i: s.Inclination, Ω: s.LongitudeOfAscendingNode, ω: s.ArgumentOfPeriapsis,
		epoch: s.Epoch, M0: s.MeanAnomalyAtEpoch,
	}, nil
}

// ByPeriodEccentricity derives the semi-major axis from the orbital period
// via Kepler's third law. For e > 1 the period is read as the 2π/n
// pseudo-period of the hyperbolic mean motion, matching what Period returns
// for such orbits.
type ByPeriodEccentricity struct {
	Period                   float64
	Eccentricity             float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	Epoch                    float64
	MeanAnomalyAtEpoch       float64
}

func (s ByPeriodEccentricity) normalize(μ float64) (elements, error) {
	if s.Eccentricity == 1 {
		return elements{}, fmt.Errorf("orbit: a parabolic orbit has no period: %w", ErrDomain)
	}
	a, err := semiMajorAxisFromPeriod(s.Period, μ)
	if err != nil {
		return elements{}, err
	}
	if s.Eccentricity > 1 {
		a = -a
	}
	return elements{
		rp: a * (1 - s.Eccentricity), e: s.Eccentricity,
		i: s.Inclination, Ω: s.LongitudeOfAscendingNode, ω: s.ArgumentOfPeriapsis,
		epoch: s.Epoch, M0: s.MeanAnomalyAtEpoch,
	}, nil
}

// ByPeriodApsis derives a closed orbit from its period and either apsis.
// e = |apsis/a - 1| holds whichever role the apsis plays, so the
// periapsis-or-apoapsis ambiguity resolves itself; an apsis no closed orbit
// of that period can reach is a validation error.
type ByPeriodApsis struct {
	Period                   float64
	Apsis                    float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	Epoch                    float64
	MeanAnomalyAtEpoch       float64
}

func (s ByPeriodApsis) normalize(μ float64) (elements, error) {
	a, err := semiMajorAxisFromPeriod(s.Period, μ)
	if err != nil {
		return elements{}, err
	}
	if s.Apsis <= 0 || math.IsInf(s.Apsis, 0) || math.IsNaN(s.Apsis) {
		return elements{}, fmt.Errorf("orbit: apsis must be positive and finite, got %g: %w", s.Apsis, ErrValidation)
	}
	e := math.Abs(s.Apsis/a - 1)
	if e >= 1 {
		return elements{}, fmt.Errorf("orbit: apsis %g m is unreachable on a closed orbit with period %g s: %w", s.Apsis, s.Period, ErrValidation)
	}
	return elements{
		rp: a * (1 - e), e: e,
		i: s.Inclination, Ω: s.LongitudeOfAscendingNode, ω: s.ArgumentOfPeriapsis,
		epoch: s.Epoch, M0: s.MeanAnomalyAtEpoch,
	}, nil
}

func semiMajorAxisFromPeriod(period, μ float64) (float64, error) {
	if period <= 0 || math.IsInf(period, 0) || math.IsNaN(period) {
		return 0, fmt.Errorf("orbit: period must be positive and finite, got %g: %w", period, ErrValidation)
	}
	n := 2 * math.Pi / period
	return math.Cbrt(μ / (n * n)), nil
}

// ByStateVector recovers the full element set from a position and velocity
// observed at some instant, which becomes the orbit's epoch.
type ByStateVector struct {
	Position Vector
	Velocity Vector
	Instant  float64
}

func (s ByStateVector) normalize(μ float64) (elements, error) {
	r := s.Position.Norm()
	if r == 0 {
		return elements{}, fmt.Errorf("orbit from state: position: %w", ErrZeroVector)
	}
	if s.Velocity.Norm() == 0 {
		return elements{}, fmt.Errorf("orbit from state: velocity: %w", ErrZeroVector)
	}
	h := s.Position.Cross(s.Velocity)
	hNorm := h.Norm()
	if hNorm == 0 {
		return elements{}, fmt.Errorf("orbit from state: radial trajectory has no orbital plane: %w", ErrValidation)
	}

	// Eccentricity vector from the vis-viva decomposition. This is where the
	// compensated dot products earn their keep: v²-μ/r cancels hard on
	// near-circular orbits.
	eVec := s.Position.Scale(s.Velocity.SquaredNorm() - μ/r).
		Sub(s.Velocity.Scale(s.Position.Dot(s.Velocity))).
		Scale(1 / μ)
	e := eVec.Norm()

	i := math.Acos(clamp(h[2]/hNorm, -1, 1))

	// Line of nodes, ẑ × h. Below the equatorial threshold the node is
	// undefined: +X takes its place and Ω = 0.
	node := Vector{-h[1], h[0], 0}
	nodeDir := Vector{1, 0, 0}
	var Ω float64
	if node.Norm() > equatorialε*hNorm {
		nodeDir = node
		Ω = math.Atan2(node[1], node[0])
	}

	// Argument of periapsis and true anomaly at the instant. On a circular
	// orbit the periapsis direction is undefined: ω = 0 and the phase is
	// measured from the node line.
	var ω, ν float64
	var err error
	if e > circularε {
		if ω, err = nodeDir.OrientedAngle(eVec, h); err != nil {
			return elements{}, err
		}
		if ν, err = eVec.OrientedAngle(s.Position, h); err != nil {
			return elements{}, err
		}
	} else if ν, err = nodeDir.OrientedAngle(s.Position, h); err != nil {
		return elements{}, err
	}

	return elements{
		rp: hNorm * hNorm / μ / (1 + e), e: e,
		i: i, Ω: Ω, ω: ω,
		epoch: s.Instant, M0: meanFromTrue(ν, e),
	}, nil
}

// Orbit is a Keplerian two-body orbit around a primary body, canonically
// parameterized by periapsis and eccentricity so that the elliptic,
// parabolic and hyperbolic regimes share one representation. Orbits are
// immutable once constructed.
type Orbit struct {
	primary *CelestialBody
	els     elements
	plane   Matrix // orbital plane -> primary frame, fixed at construction
}

// NewOrbit builds an orbit around primary from any OrbitSpec
// parameterization. Inputs are validated, never silently corrected: a
// non-positive periapsis, negative eccentricity, out-of-range inclination or
// NaN element is a validation error.
func NewOrbit(primary *CelestialBody, spec OrbitSpec) (*Orbit, error) {
	if primary == nil {
		return nil, fmt.Errorf("orbit: nil primary: %w", ErrValidation)
	}
	els, err := spec.normalize(primary.μ)
	if err != nil {
		return nil, err
	}
	if err = els.validate(); err != nil {
		return nil, err
	}
	return &Orbit{
		primary: primary,
		els:     els,
		plane:   RotationFromEulerAngles(els.Ω, els.i, els.ω),
	}, nil
}

// Primary returns the body this orbit is measured around.
func (o *Orbit) Primary() *CelestialBody { return o.primary }

// Periapsis returns the periapsis distance in meters.
func (o *Orbit) Periapsis() float64 { return o.els.rp }

// Eccentricity returns the orbit's eccentricity.
func (o *Orbit) Eccentricity() float64 { return o.els.e }

// Inclination returns the inclination in radians, in [0, π].
func (o *Orbit) Inclination() float64 { return o.els.i }

// LongitudeOfAscendingNode returns Ω in radians.
func (o *Orbit) LongitudeOfAscendingNode() float64 { return o.els.Ω }

// ArgumentOfPeriapsis returns ω in radians.
func (o *Orbit) ArgumentOfPeriapsis() float64 { return o.els.ω }

// Epoch returns the instant MeanAnomalyAtEpoch refers to, in seconds.
func (o *Orbit) Epoch() float64 { return o.els.epoch }

// MeanAnomalyAtEpoch returns M0 in radians.
func (o *Orbit) MeanAnomalyAtEpoch() float64 { return o.els.M0 }

// SemiMajorAxis returns rp/(1-e): positive for an elliptic orbit, negative
// for a hyperbolic one and +Inf for a parabolic one.
func (o *Orbit) SemiMajorAxis() float64 { return o.els.rp / (1 - o.els.e) }

// Apoapsis returns a(1+e). Like the semi-major axis it is +Inf for a
// parabola and negative for a hyperbola.
func (o *Orbit) Apoapsis() float64 { return o.SemiMajorAxis() * (1 + o.els.e) }

// SemiLatusRectum returns rp(1+e), which is finite for every conic.
func (o *Orbit) SemiLatusRectum() float64 { return o.els.rp * (1 + o.els.e) }

// Energy returns the specific orbital energy in J/kg: negative for bound
// orbits, zero for parabolic ones.
func (o *Orbit) Energy() float64 {
	if o.els.e == 1 {
		return 0
	}
	return -o.primary.μ / (2 * o.SemiMajorAxis())
}

// meanMotion is the total variant of MeanMotion: parabolic orbits get the
// Barker rate √(μ/2rp³), the angular rate Barker's equation is written
// against.
func (o *Orbit) meanMotion() float64 {
	if o.els.e == 1 {
		return math.Sqrt(o.primary.μ / (2 * o.els.rp * o.els.rp * o.els.rp))
	}
	a := math.Abs(o.SemiMajorAxis())
	return math.Sqrt(o.primary.μ / (a * a * a))
}

// MeanMotion returns the mean angular rate n in rad/s. Hyperbolic orbits
// use |a|; a parabolic orbit has no conventional mean motion and returns
// ErrDomain.
func (o *Orbit) MeanMotion() (float64, error) {
	if o.els.e == 1 {
		return 0, fmt.Errorf("orbit: mean motion of a parabolic orbit: %w", ErrDomain)
	}
	return o.meanMotion(), nil
}

// Period returns the orbital period 2π/n in seconds. For a hyperbolic orbit
// this is the pseudo-period matching ByPeriodEccentricity; for a parabolic
// orbit it returns ErrDomain.
func (o *Orbit) Period() (float64, error) {
	if o.els.e == 1 {
		return 0, fmt.Errorf("orbit: period of a parabolic orbit: %w", ErrDomain)
	}
	return 2 * math.Pi / o.meanMotion(), nil
}

// MeanAnomalyAt returns the mean anomaly at time t, wrapped to [0, 2π) for
// closed orbits and growing without bound for open ones.
func (o *Orbit) MeanAnomalyAt(t float64) float64 {
	M := o.els.M0 + o.meanMotion()*(t-o.els.epoch)
	if o.els.e < 1 {
		return wrap2π(M)
	}
	return M
}

// EccentricAnomalyAt returns the eccentric anomaly E at time t for an
// elliptic orbit and the hyperbolic anomaly H for a hyperbolic one. A
// parabola has neither (ErrDomain); use TrueAnomalyAt, which applies
// Barker's equation directly.
func (o *Orbit) EccentricAnomalyAt(t float64) (float64, error) {
	switch {
	case o.els.e < 1:
		return eccentricFromMean(o.MeanAnomalyAt(t), o.els.e)
	case o.els.e > 1:
		return hyperbolicFromMean(o.MeanAnomalyAt(t), o.els.e)
	default:
		return 0, fmt.Errorf("orbit: eccentric anomaly of a parabolic orbit: %w", ErrDomain)
	}
}

// TrueAnomalyAt returns the true anomaly at time t, for any conic regime.
func (o *Orbit) TrueAnomalyAt(t float64) (float64, error) {
	return trueFromMean(o.MeanAnomalyAt(t), o.els.e)
}

// Distance returns the distance from the primary's center at true anomaly ν.
func (o *Orbit) Distance(ν float64) float64 {
	return o.SemiLatusRectum() / (1 + o.els.e*math.Cos(ν))
}

// Position returns the position at true anomaly ν, in the primary's frame.
func (o *Orbit) Position(ν float64) Vector {
	r := o.Distance(ν)
	sν, cν := math.Sincos(ν)
	return o.plane.MulVec(Vector{r * cν, r * sν, 0})
}

// Velocity returns the velocity at true anomaly ν, in the primary's frame.
// The perifocal form √(μ/p)·(-sin ν, e+cos ν, 0) holds for every conic.
func (o *Orbit) Velocity(ν float64) Vector {
	k := math.Sqrt(o.primary.μ / o.SemiLatusRectum())
	sν, cν := math.Sincos(ν)
	return o.plane.MulVec(Vector{-k * sν, k * (o.els.e + cν), 0})
}

// PositionAt returns the position at time t, in the primary's frame.
func (o *Orbit) PositionAt(t float64) (Vector, error) {
	ν, err := o.TrueAnomalyAt(t)
	if err != nil {
		return Vector{}, err
	}
	return o.Position(ν), nil
}

// VelocityAt returns the velocity at time t, in the primary's frame.
func (o *Orbit) VelocityAt(t float64) (Vector, error) {
	ν, err := o.TrueAnomalyAt(t)
	if err != nil {
		return Vector{}, err
	}
	return o.Velocity(ν), nil
}

// StateAt returns position and velocity at time t with a single anomaly
// solve.
func (o *Orbit) StateAt(t float64) (Vector, Vector, error) {
	ν, err := o.TrueAnomalyAt(t)
	if err != nil {
		return Vector{}, Vector{}, err
	}
	return o.Position(ν), o.Velocity(ν), nil
}

// Equals returns whether o and o2 describe the same orbit around the same
// primary and, when they do not, which element differs. The ascending node
// only matters for inclined orbits and the argument of periapsis only for
// noncircular ones; phase is compared through the mean anomaly at o's epoch.
func (o *Orbit) Equals(o2 *Orbit) (bool, error) {
	if o2 == nil {
		return false, errors.New("nil orbit")
	}
	if o.primary.Name != o2.primary.Name {
		return false, errors.New("different primary")
	}
	if !scalar.EqualWithinRel(o.els.rp, o2.els.rp, elementε) {
		return false, errors.New("periapsis")
	}
	if !scalar.EqualWithinAbsOrRel(o.els.e, o2.els.e, elementε, elementε) {
		return false, errors.New("eccentricity")
	}
	if !scalar.EqualWithinAbsOrRel(o.els.i, o2.els.i, elementε, elementε) {
		return false, errors.New("inclination")
	}
	if o.els.i > elementε && math.Abs(wrapπ(o.els.Ω-o2.els.Ω)) > elementε {
		return false, errors.New("ascending node")
	}
	if o.els.e > elementε && math.Abs(wrapπ(o.els.ω-o2.els.ω)) > elementε {
		return false, errors.New("argument of periapsis")
	}
	M1, M2 := o.MeanAnomalyAt(o.els.epoch), o2.MeanAnomalyAt(o.els.epoch)
	if o.els.e < 1 {
		if math.Abs(wrapπ(M1-M2)) > meanAnomalyε {
			return false, errors.New("mean anomaly")
		}
	} else if math.Abs(M1-M2) > meanAnomalyε {
		return false, errors.New("mean anomaly")
	}
	return true, nil
}

// String implements the Stringer interface, angles in degrees.
func (o *Orbit) String() string {
	return fmt.Sprintf("rp=%.6g m e=%.6f i=%.4f° Ω=%.4f° ω=%.4f° M0=%.4f° (around %s)",
		o.els.rp, o.els.e, Rad2deg(o.els.i), Rad2deg(o.els.Ω), Rad2deg(o.els.ω), Rad2deg(o.els.M0), o.primary.Name)
}
