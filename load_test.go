package spyce

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// miniSystem lists the moon before its planet and the planet before the
// star: loading must resolve forward references.
const miniSystem = `
SYSTEM
{
	name = Mini

	BODY
	{
		name = Moon
		primary = Planet
		gravitational_parameter = 4.9e12
		radius = 1.7e6
		ORBIT
		{
			semi_major_axis = 3.8e8
			eccentricity = 0.05
		}
	}
	BODY
	{
		name = Planet
		primary = Star
		mass = 5.97e24
		radius = 6.4e6
		rotational_period = 86164
		ORBIT
		{
			semi_major_axis = 1.5e11
			eccentricity = 0.017
			inclination = 0.001
		}
	}
	BODY
	{
		name = Star
		gravitational_parameter = 1.33e20
		radius = 7e8
	}
}
`

func TestLoadSystem(t *testing.T) {
	sys, err := LoadSystem(strings.NewReader(miniSystem))
	require.NoError(t, err)
	require.Equal(t, "Mini", sys.Name)
	require.Equal(t, "Star", sys.Root().Name)

	planet, err := sys.Body("Planet")
	require.NoError(t, err)
	require.Equal(t, sys.Root(), planet.Parent())
	require.Equal(t, G*5.97e24, planet.GM()) // given as mass, not µ
	require.Equal(t, 86164.0, planet.RotationalPeriod())
	require.InDelta(t, 0.017, planet.Orbit().Eccentricity(), 1e-15)
	require.InDelta(t, 0.001, planet.Orbit().Inclination(), 1e-15)

	moon, err := sys.Body("Moon")
	require.NoError(t, err)
	require.Equal(t, planet, moon.Parent())
	require.Equal(t, 4.9e12, moon.GM())
	require.Zero(t, moon.RotationalPeriod())

	var names []string
	for _, b := range sys.Bodies() {
		names = append(names, b.Name)
	}
	require.Equal(t, []string{"Moon", "Planet", "Star"}, names)

	_, err = sys.Body("Pluto")
	require.ErrorIs(t, err, ErrUnknownBody)
}

func TestLoadSystemErrors(t *testing.T) {
	root := "BODY\n{\nname = Star\ngravitational_parameter = 1e18\nradius = 1e8\n}\n"
	orbiting := func(name, primary string) string {
		return "BODY\n{\nname = " + name + "\nprimary = " + primary +
			"\ngravitational_parameter = 1e12\nradius = 1e6\nORBIT\n{\nsemi_major_axis = 1e9\n}\n}\n"
	}
	wrap := func(bodies ...string) string {
		return "SYSTEM\n{\nname = Broken\n" + strings.Join(bodies, "") + "}\n"
	}
	cases := []struct {
		name, text string
		want       error
	}{
		{"no SYSTEM block", "OTHER\n{\n}\n", ErrMalformedConfig},
		{"SYSTEM without name", "SYSTEM\n{\n" + root + "}\n", ErrMalformedConfig},
		{"no bodies", wrap(), ErrMalformedConfig},
		{"body without name", wrap("BODY\n{\nradius = 1\n}\n"), ErrMalformedConfig},
		{"duplicate body", wrap(root, orbiting("X", "Star"), orbiting("X", "Star")), ErrMalformedConfig},
		{"two roots", wrap(root, "BODY\n{\nname = Other\ngravitational_parameter = 1e18\nradius = 1e8\n}\n"), ErrMalformedConfig},
		{"unknown primary", wrap(root, orbiting("X", "Ghost")), ErrUnknownBody},
		{"circular primaries", wrap(orbiting("A", "B"), orbiting("B", "A")), ErrMalformedConfig},
		{"orbit on the root", wrap("BODY\n{\nname = Star\ngravitational_parameter = 1e18\nradius = 1e8\nORBIT\n{\nsemi_major_axis = 1e9\n}\n}\n"), ErrMalformedConfig},
		{"primary without orbit", wrap(root, "BODY\n{\nname = X\nprimary = Star\ngravitational_parameter = 1e12\nradius = 1e6\n}\n"), ErrMalformedConfig},
		{"no µ and no mass", wrap(root, "BODY\n{\nname = X\nprimary = Star\nradius = 1e6\nORBIT\n{\nsemi_major_axis = 1e9\n}\n}\n"), ErrMalformedConfig},
		{"missing radius", wrap("BODY\n{\nname = Star\ngravitational_parameter = 1e18\n}\n"), ErrMalformedConfig},
		{"bad float", wrap("BODY\n{\nname = Star\ngravitational_parameter = big\nradius = 1e8\n}\n"), ErrMalformedConfig},
	}
	for _, tc := range cases {
		_, err := LoadSystem(strings.NewReader(tc.text))
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestLoadSystemByName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.cfg"), []byte(miniSystem), 0o644))
	cfgLoaded, config = true, Config{OutputDir: ".", SystemsDir: dir, DefaultSystem: "custom"}
	defer func() { cfgLoaded = false }()

	sys, err := LoadSystemByName("custom")
	require.NoError(t, err)
	require.Equal(t, "Mini", sys.Name)

	// Built-ins still resolve when no file shadows them.
	_, err = LoadSystemByName("kerbol")
	require.NoError(t, err)

	_, err = LoadSystemByName("atlantis")
	require.ErrorIs(t, err, ErrUnknownSystem)

	_, err = LoadSystemFile(filepath.Join(dir, "absent.cfg"))
	require.Error(t, err)
}

func TestBuiltinCatalogs(t *testing.T) {
	require.Equal(t, []string{"kerbol", "solar"}, Builtins())

	for _, name := range []string{"kerbol", "solar"} {
		sys, err := LoadSystemByName(name)
		require.NoError(t, err, name)
		roots := 0
		for _, b := range sys.Bodies() {
			if b.Orbit() == nil {
				roots++
				require.Equal(t, sys.Root(), b, name)
				continue
			}
			p := b.Parent()
			require.Less(t, b.Mass(), p.Mass(), b.Name)
			require.Contains(t, p.Satellites(), b, b.Name)
			T, err := b.Orbit().Period()
			require.NoError(t, err, b.Name)
			require.Greater(t, T, 3600.0, b.Name)
			require.Less(t, b.Orbit().SemiMajorAxis(), 100*AU, b.Name)
		}
		require.Equal(t, 1, roots, name)
	}

	kerbol, err := LoadSystemByName("kerbol")
	require.NoError(t, err)
	require.Len(t, kerbol.Bodies(), 17)
	require.Len(t, kerbol.Root().Satellites(), 7)
	kerbin, err := kerbol.Body("Kerbin")
	require.NoError(t, err)
	require.InDelta(t, 9.81, kerbin.SurfaceGravity(), 0.05)
	year, err := kerbin.Orbit().Period()
	require.NoError(t, err)
	require.InDelta(t, 9203545, year, 50)
	mun, err := kerbol.Body("Mun")
	require.NoError(t, err)
	require.Equal(t, kerbin, mun.Parent())
	munYear, err := mun.Orbit().Period()
	require.NoError(t, err)
	require.InDelta(t, munYear, mun.RotationalPeriod(), munYear*1e-3) // tidally locked

	solar, err := LoadSystemByName("solar")
	require.NoError(t, err)
	require.Len(t, solar.Bodies(), 11)
	planets := 0
	for _, b := range solar.Root().Satellites() {
		if b.Mass() > 1e23 {
			planets++
		}
	}
	require.Equal(t, 8, planets)
	pluto, err := solar.Body("Pluto")
	require.NoError(t, err)
	require.Less(t, pluto.Mass(), 1e23)
	moon, err := solar.Body("Moon")
	require.NoError(t, err)
	require.Equal(t, "Earth", moon.Parent().Name)
	earth, err := solar.Body("Earth")
	require.NoError(t, err)
	require.InDelta(t, 9.82, earth.SurfaceGravity(), 0.05)
	earthYear, err := earth.Orbit().Period()
	require.NoError(t, err)
	require.InDelta(t, 3.1558e7, earthYear, 1e4)
}
