package spyce

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// System is a loaded planetary system: a tree of bodies rooted at the one
// body without an orbit, indexed by name.
type System struct {
	Name   string
	root   *CelestialBody
	bodies map[string]*CelestialBody
}

// Root returns the single body without an orbit.
func (s *System) Root() *CelestialBody { return s.root }

// Body returns the named body, or ErrUnknownBody.
func (s *System) Body(name string) (*CelestialBody, error) {
	b, ok := s.bodies[name]
	if !ok {
		return nil, fmt.Errorf("%s in system %s: %w", name, s.Name, ErrUnknownBody)
	}
	return b, nil
}

// Bodies returns every body in the system, sorted by name.
func (s *System) Bodies() []*CelestialBody {
	names := make([]string, 0, len(s.bodies))
	for n := range s.bodies {
		names = append(names, n)
	}
	sort.Strings(names)
	bodies := make([]*CelestialBody, len(names))
	for i, n := range names {
		bodies[i] = s.bodies[n]
	}
	return bodies
}

// LoadSystem builds a planetary system from a block-format document:
//
//	SYSTEM
//	{
//		name = Kerbol System
//		BODY { name = Kerbol ... }
//		BODY { name = Moho  primary = Kerbol  ORBIT { ... } ... }
//	}
//
// Distances are meters, angles radians, times seconds; orbits are given as
// semi-major axis plus eccentricity. Bodies may reference primaries defined
// later in the file: construction runs in dependency order and children are
// attached explicitly once their primary exists. Exactly one body must lack
// a primary — the root.
func LoadSystem(r io.Reader) (*System, error) {
	doc, err := ParseConfig(r)
	if err != nil {
		return nil, err
	}
	sysNode, ok := doc.Node("SYSTEM")
	if !ok {
		return nil, fmt.Errorf("load: no SYSTEM block: %w", ErrMalformedConfig)
	}
	sysName, ok := sysNode.Get("name")
	if !ok {
		return nil, fmt.Errorf("load: SYSTEM without a name: %w", ErrMalformedConfig)
	}

	bodyNodes := sysNode.Nodes("BODY")
	if len(bodyNodes) == 0 {
		return nil, fmt.Errorf("load %s: no BODY blocks: %w", sysName, ErrMalformedConfig)
	}
	raws := make(map[string]*ConfigNode, len(bodyNodes))
	order := make([]string, 0, len(bodyNodes))
	for _, bn := range bodyNodes {
		bname, ok := bn.Get("name")
		if !ok {
			return nil, fmt.Errorf("load %s: BODY without a name: %w", sysName, ErrMalformedConfig)
		}
		if _, dup := raws[bname]; dup {
			return nil, fmt.Errorf("load %s: duplicate body %q: %w", sysName, bname, ErrMalformedConfig)
		}
		raws[bname] = bn
		order = append(order, bname)
	}

	built := make(map[string]*CelestialBody, len(raws))
	rootName := ""
	for remaining := len(raws); remaining > 0; {
		progress := false
		for _, bname := range order {
			if _, done := built[bname]; done {
				continue
			}
			bn := raws[bname]
			primaryName, hasPrimary := bn.Get("primary")
			if !hasPrimary {
				if rootName != "" {
					return nil, fmt.Errorf("load %s: both %s and %s lack a primary: %w", sysName, rootName, bname, ErrMalformedConfig)
				}
				b, err := buildBody(bname, bn, nil)
				if err != nil {
					return nil, err
				}
				rootName, built[bname] = bname, b
				remaining--
				progress = true
				continue
			}
			primary, ok := built[primaryName]
			if !ok {
				if _, known := raws[primaryName]; !known {
					return nil, fmt.Errorf("load %s: %s orbits %q: %w", sysName, bname, primaryName, ErrUnknownBody)
				}
				continue // primary not built yet, next pass
			}
			b, err := buildBody(bname, bn, primary)
			if err != nil {
				return nil, err
			}
			if err = primary.Attach(b); err != nil {
				return nil, err
			}
			built[bname] = b
			remaining--
			progress = true
		}
		if !progress {
			return nil, fmt.Errorf("load %s: circular primary references: %w", sysName, ErrMalformedConfig)
		}
	}
	if rootName == "" {
		return nil, fmt.Errorf("load %s: every body has a primary, no root: %w", sysName, ErrMalformedConfig)
	}
	return &System{Name: sysName, root: built[rootName], bodies: built}, nil
}

func buildBody(name string, node *ConfigNode, primary *CelestialBody) (*CelestialBody, error) {
	var μ float64
	if _, ok := node.Get("gravitational_parameter"); ok {
		gm, err := node.Float("gravitational_parameter")
		if err != nil {
			return nil, err
		}
		μ = gm
	} else {
		mass, err := node.Float("mass")
		if err != nil {
			return nil, fmt.Errorf("load %s: needs gravitational_parameter or mass: %w", name, ErrMalformedConfig)
		}
		μ = G * mass
	}
	radius, err := node.Float("radius")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	rot, err := optFloat(node, "rotational_period", 0)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	var orbit *Orbit
	if primary != nil {
		on, ok := node.Node("ORBIT")
		if !ok {
			return nil, fmt.Errorf("load %s: primary given but no ORBIT block: %w", name, ErrMalformedConfig)
		}
		a, err := on.Float("semi_major_axis")
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		spec := BySemiMajorAxisEccentricity{SemiMajorAxis: a}
		if spec.Eccentricity, err = optFloat(on, "eccentricity", 0); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if spec.Inclination, err = optFloat(on, "inclination", 0); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if spec.LongitudeOfAscendingNode, err = optFloat(on, "longitude_of_ascending_node", 0); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if spec.ArgumentOfPeriapsis, err = optFloat(on, "argument_of_periapsis", 0); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if spec.Epoch, err = optFloat(on, "epoch", 0); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if spec.MeanAnomalyAtEpoch, err = optFloat(on, "mean_anomaly_at_epoch", 0); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if orbit, err = NewOrbit(primary, spec); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	} else if _, ok := node.Node("ORBIT"); ok {
		return nil, fmt.Errorf("load %s: ORBIT block without a primary: %w", name, ErrMalformedConfig)
	}
	return NewBody(name, μ, radius, rot, orbit)
}

func optFloat(n *ConfigNode, key string, def float64) (float64, error) {
	if _, ok := n.Get(key); !ok {
		return def, nil
	}
	return n.Float(key)
}

// LoadSystemFile loads a system from a .cfg file on disk.
func LoadSystemFile(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSystem(f)
}

// LoadSystemByName loads a named system: a <name>.cfg file in the
// configured systems directory first, then the built-in catalogs.
func LoadSystemByName(name string) (*System, error) {
	if dir := LoadConfig().SystemsDir; dir != "" {
		path := filepath.Join(dir, name+".cfg")
		if _, err := os.Stat(path); err == nil {
			return LoadSystemFile(path)
		}
	}
	if text, ok := builtinSystems[name]; ok {
		return LoadSystem(strings.NewReader(text))
	}
	return nil, fmt.Errorf("system %q: %w", name, ErrUnknownSystem)
}

// Builtins returns the names of the built-in system catalogs, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtinSystems))
	for n := range builtinSystems {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
