package spyce

import (
	"fmt"
	"math"
	"strings"
)

const (
	// G is the gravitational constant in m³/(kg·s²).
	G = 6.67430e-11
	// AU is one astronomical unit in meters.
	AU = 1.495978707e11
)

// CelestialBody is a star, planet or moon. A body may orbit another body (its
// primary) and may carry satellites of its own, which makes a loaded system a
// tree rooted at the one body without an orbit. The only mutation a body
// supports after construction is Attach, which appends to the satellite list.
type CelestialBody struct {
	Name   string
	Radius float64

	μ          float64
	rotPeriod  float64
	orbit      *Orbit
	satellites []*CelestialBody
}

// NewBody returns a body from its standard gravitational parameter μ in
// m³/s². The rotational period is the sidereal day in seconds: 0 means the
// body does not rotate on its own (a rotational period equal to the orbital
// period, i.e. tidal lock, is implied when the body has an orbit), negative
// means retrograde rotation. The orbit may be nil for the root of a system.
func NewBody(name string, μ, radius, rotationalPeriod float64, orbit *Orbit) (*CelestialBody, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("body: empty name: %w", ErrValidation)
	}
	if μ <= 0 || math.IsInf(μ, 0) || math.IsNaN(μ) {
		return nil, fmt.Errorf("body %s: gravitational parameter must be positive and finite, got %g: %w", name, μ, ErrValidation)
	}
	if radius < 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return nil, fmt.Errorf("body %s: radius must be non-negative and finite, got %g: %w", name, radius, ErrValidation)
	}
	if math.IsInf(rotationalPeriod, 0) || math.IsNaN(rotationalPeriod) {
		return nil, fmt.Errorf("body %s: rotational period must be finite, got %g: %w", name, rotationalPeriod, ErrValidation)
	}
	return &CelestialBody{Name: name, Radius: radius, μ: μ, rotPeriod: rotationalPeriod, orbit: orbit}, nil
}

// NewBodyFromMass is NewBody for a body known by its mass in kg rather than
// by a pre-multiplied μ: the gravitational parameter becomes G·mass. Use
// NewBody when μ is known directly, which is the better-determined quantity
// for most real bodies.
func NewBodyFromMass(name string, mass, radius, rotationalPeriod float64, orbit *Orbit) (*CelestialBody, error) {
	if mass <= 0 || math.IsInf(mass, 0) || math.IsNaN(mass) {
		return nil, fmt.Errorf("body %s: mass must be positive and finite, got %g: %w", name, mass, ErrValidation)
	}
	return NewBody(name, G*mass, radius, rotationalPeriod, orbit)
}

// Attach records sat as a satellite of b. Construction never touches the
// primary; this explicit step is the only way bodies are linked into a tree,
// and it requires sat's orbit to name b as its primary.
func (b *CelestialBody) Attach(sat *CelestialBody) error {
	if sat == nil || sat.orbit == nil {
		return fmt.Errorf("attach to %s: satellite has no orbit: %w", b.Name, ErrValidation)
	}
	if sat.orbit.primary != b {
		return fmt.Errorf("attach to %s: %s orbits %s: %w", b.Name, sat.Name, sat.orbit.primary.Name, ErrValidation)
	}
	for _, s := range b.satellites {
		if s == sat {
			return fmt.Errorf("attach to %s: %s is already attached: %w", b.Name, sat.Name, ErrValidation)
		}
	}
	b.satellites = append(b.satellites, sat)
	return nil
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (b *CelestialBody) GM() float64 { return b.μ }

// Mass returns the body's mass in kg.
func (b *CelestialBody) Mass() float64 { return b.μ / G }

// RotationalPeriod returns the sidereal day in seconds, 0 for a
// non-rotating body.
func (b *CelestialBody) RotationalPeriod() float64 { return b.rotPeriod }

// Orbit returns the orbit around the body's primary, nil for a root body.
func (b *CelestialBody) Orbit() *Orbit { return b.orbit }

// Parent returns the body's primary, computed from its orbit; nil for a
// root body.
func (b *CelestialBody) Parent() *CelestialBody {
	if b.orbit == nil {
		return nil
	}
	return b.orbit.primary
}

// Satellites returns the bodies attached to b, in attachment order. The
// returned slice is a copy.
func (b *CelestialBody) Satellites() []*CelestialBody {
	sats := make([]*CelestialBody, len(b.satellites))
	copy(sats, b.satellites)
	return sats
}

// Gravity returns the gravitational acceleration in m/s² at the given
// distance from the body's center. Inside the body the field falls off
// linearly with depth, as for a homogeneous sphere.
func (b *CelestialBody) Gravity(distance float64) (float64, error) {
	if distance < 0 || math.IsNaN(distance) {
		return 0, fmt.Errorf("gravity of %s: negative distance %g: %w", b.Name, distance, ErrValidation)
	}
	if distance < b.Radius {
		return b.μ * distance / (b.Radius * b.Radius * b.Radius), nil
	}
	return b.μ / (distance * distance), nil
}

// SurfaceGravity returns the gravitational acceleration at the body's mean
// radius.
func (b *CelestialBody) SurfaceGravity() float64 {
	g, _ := b.Gravity(b.Radius)
	return g
}

// SphereOfInfluence returns the radius of the body's gravitational sphere of
// influence, a·(μ/μp)^(2/5). A root body or one on an open orbit has no SOI
// in that sense and returns ErrDomain.
func (b *CelestialBody) SphereOfInfluence() (float64, error) {
	if b.orbit == nil {
		return 0, fmt.Errorf("SOI of %s: no orbit: %w", b.Name, ErrDomain)
	}
	if b.orbit.Eccentricity() >= 1 {
		return 0, fmt.Errorf("SOI of %s: open orbit: %w", b.Name, ErrDomain)
	}
	return b.orbit.SemiMajorAxis() * math.Pow(b.μ/b.orbit.primary.μ, 0.4), nil
}

// SolarDay returns the apparent day length y·d/(y-d), the time between two
// consecutive noons. It is +Inf for a tidally locked body, negative for a
// retrograde rotator (the sun crosses the sky backwards), and ErrDomain for
// a body without a closed orbit.
func (b *CelestialBody) SolarDay() (float64, error) {
	if b.orbit == nil || b.orbit.Eccentricity() >= 1 {
		return 0, fmt.Errorf("solar day of %s: no closed orbit: %w", b.Name, ErrDomain)
	}
	y, err := b.orbit.Period()
	if err != nil {
		return 0, err
	}
	d := b.rotPeriod // signed, unlike the calendar's day length
	if d == 0 {
		d = y
	}
	if y == d {
		return math.Inf(1), nil
	}
	return y * d / (y - d), nil
}

// OrientationAt returns the rotation of the body's surface frame at time t:
// a spin about +Z by 2π·t/rotational period, the identity for a
// non-rotating body.
func (b *CelestialBody) OrientationAt(t float64) Matrix {
	p := b.rotPeriod // signed: retrograde bodies spin the other way
	if p == 0 {
		y := b.yearLength()
		if math.IsInf(y, 1) {
			return Identity()
		}
		p = y // tidal lock
	}
	m, _ := Rotation(2*math.Pi*t/p, Vector{0, 0, 1})
	return m
}

// yearLength is the duration of the body's local year, +Inf when the body
// has no closed orbit to measure one by.
func (b *CelestialBody) yearLength() float64 {
	if b.orbit == nil || b.orbit.Eccentricity() >= 1 {
		return math.Inf(1)
	}
	y, _ := b.orbit.Period()
	return y
}

// dayLength is the duration of the body's local day: the rotational period,
// or the orbital period under tidal lock, or +Inf when neither exists.
func (b *CelestialBody) dayLength() float64 {
	if b.rotPeriod != 0 {
		return math.Abs(b.rotPeriod)
	}
	return b.yearLength()
}

// splitUnit decomposes t into whole units of the given size plus a
// remainder. An infinite unit contributes zero whole units (the guard keeps
// 0·Inf from going NaN).
func splitUnit(t, size float64) (count int64, rem float64) {
	if math.IsInf(size, 1) {
		return 0, t
	}
	c := math.Floor(t / size)
	return int64(c), t - c*size
}

// FormatTime renders t (seconds) in the body's local calendar: whole local
// years (one orbital period), whole local days (one rotational period, the
// orbital one under tidal lock), then hours, minutes and seconds. Units the
// body does not define stay at zero. The output parses back with ParseTime
// to within 0.05 s.
func (b *CelestialBody) FormatTime(t float64) string {
	sign := "+"
	if t < 0 {
		sign, t = "-", -t
	}
	y, rem := splitUnit(t, b.yearLength())
	d, rem := splitUnit(rem, b.dayLength())
	h, rem := splitUnit(rem, 3600)
	m, rem := splitUnit(rem, 60)
	return fmt.Sprintf("%s%dy, %dd, %d:%02d:%04.1f", sign, y, d, h, m, rem)
}

// ParseTime inverts FormatTime for the same body.
func (b *CelestialBody) ParseTime(s string) (float64, error) {
	str := strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(str, "-"):
		neg, str = true, str[1:]
	case strings.HasPrefix(str, "+"):
		str = str[1:]
	}
	var y, d, h, m int64
	var sec float64
	if _, err := fmt.Sscanf(str, "%dy, %dd, %d:%d:%f", &y, &d, &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("parse time %q: %v: %w", s, err, ErrValidation)
	}
	t := float64(h)*3600 + float64(m)*60 + sec
	if d != 0 {
		day := b.dayLength()
		if math.IsInf(day, 1) {
			return 0, fmt.Errorf("parse time %q: %s has no day length: %w", s, b.Name, ErrValidation)
		}
		t += float64(d) * day
	}
	if y != 0 {
		year := b.yearLength()
		if math.IsInf(year, 1) {
			return 0, fmt.Errorf("parse time %q: %s has no year length: %w", s, b.Name, ErrValidation)
		}
		t += float64(y) * year
	}
	if neg {
		t = -t
	}
	return t, nil
}

// String implements the Stringer interface.
func (b *CelestialBody) String() string {
	return b.Name + " body"
}
