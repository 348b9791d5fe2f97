package spyce

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// State is a sampled point on a trajectory: position and velocity in the
// primary-centered inertial frame at a simulation time.
type State struct {
	T float64 // seconds past J2000
	R Vector  // m
	V Vector  // m/s
}

// SampleTrajectory evaluates an orbit at n evenly spaced times from start
// to end inclusive.
func SampleTrajectory(o *Orbit, start, end float64, n int) ([]State, error) {
	if o == nil {
		return nil, fmt.Errorf("sample: nil orbit: %w", ErrValidation)
	}
	if n < 2 || end <= start || math.IsNaN(start) || math.IsNaN(end) {
		return nil, fmt.Errorf("sample: need n ≥ 2 and end > start: %w", ErrValidation)
	}
	states := make([]State, n)
	step := (end - start) / float64(n-1)
	for k := range states {
		t := start + float64(k)*step
		r, v, err := o.StateAt(t)
		if err != nil {
			return nil, err
		}
		states[k] = State{T: t, R: r, V: v}
	}
	return states, nil
}

// WriteStatesCSV writes states as CSV records under a t,x,y,z,vx,vy,vz
// header, with full float64 precision.
func WriteStatesCSV(w io.Writer, states []State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "x", "y", "z", "vx", "vy", "vz"}); err != nil {
		return err
	}
	rec := make([]string, 7)
	for _, s := range states {
		vals := [7]float64{s.T, s.R[0], s.R[1], s.R[2], s.V[0], s.V[1], s.V[2]}
		for i, v := range vals {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadStatesCSV is the inverse of WriteStatesCSV. Lines starting with #
// are skipped, the header record is required.
func ReadStatesCSV(r io.Reader) ([]State, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("empty trajectory: %w", ErrValidation)
	}
	states := make([]State, 0, len(recs)-1)
	for k, rec := range recs[1:] {
		if len(rec) != 7 {
			return nil, fmt.Errorf("trajectory record %d has %d fields: %w", k+1, len(rec), ErrValidation)
		}
		var vals [7]float64
		for i, field := range rec {
			if vals[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("trajectory record %d: %w", k+1, ErrValidation)
			}
		}
		states = append(states, State{T: vals[0], R: Vector{vals[1], vals[2], vals[3]}, V: Vector{vals[4], vals[5], vals[6]}})
	}
	return states, nil
}

// TrajectoryHandle creates traj-<name>.csv (timestamped if asked) under
// the configured output directory. The caller owns the close.
func TrajectoryHandle(name string, stamped bool) (*os.File, error) {
	conf := LoadConfig()
	var filename string
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/traj-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", conf.OutputDir, name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/traj-%s.csv", conf.OutputDir, name)
	}
	return os.Create(filename)
}

// ExportTrajectory samples an orbit and writes it under the configured
// output directory, returning the path written.
func ExportTrajectory(name string, o *Orbit, start, end float64, n int, stamped bool) (string, error) {
	states, err := SampleTrajectory(o, start, end, n)
	if err != nil {
		return "", err
	}
	f, err := TrajectoryHandle(name, stamped)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(f, `# Creation date (UTC): %s
# Records are <t> <x> <y> <z> <vx> <vy> <vz>
#   Time is seconds past J2000
#   Position in m, velocity in m/s
`, time.Now().UTC())
	if err = WriteStatesCSV(f, states); err != nil {
		f.Close()
		return "", err
	}
	return f.Name(), f.Close()
}

// SystemCatalog is the JSON shape of an exported system.
type SystemCatalog struct {
	Version string     `json:"version"`
	Name    string     `json:"name"`
	Root    BodyRecord `json:"root"`
}

// BodyRecord is one body in a system export, satellites nested.
type BodyRecord struct {
	Name               string       `json:"name"`
	GravitationalParam float64      `json:"gravitationalParameter"`
	Radius             float64      `json:"radius"`
	RotationalPeriod   float64      `json:"rotationalPeriod,omitempty"`
	Orbit              *OrbitRecord `json:"orbit,omitempty"`
	Satellites         []BodyRecord `json:"satellites,omitempty"`
}

// OrbitRecord is the canonical element set of one orbit, SI and radians.
type OrbitRecord struct {
	Periapsis                float64 `json:"periapsis"`
	Eccentricity             float64 `json:"eccentricity"`
	Inclination              float64 `json:"inclination"`
	LongitudeOfAscendingNode float64 `json:"longitudeOfAscendingNode"`
	ArgumentOfPeriapsis      float64 `json:"argumentOfPeriapsis"`
	Epoch                    float64 `json:"epoch"`
	MeanAnomalyAtEpoch       float64 `json:"meanAnomalyAtEpoch"`
}

func bodyRecord(b *CelestialBody) BodyRecord {
	rec := BodyRecord{
		Name:               b.Name,
		GravitationalParam: b.GM(),
		Radius:             b.Radius,
		RotationalPeriod:   b.RotationalPeriod(),
	}
	if o := b.Orbit(); o != nil {
		rec.Orbit = &OrbitRecord{
			Periapsis:                o.Periapsis(),
			Eccentricity:             o.Eccentricity(),
			Inclination:              o.Inclination(),
			LongitudeOfAscendingNode: o.LongitudeOfAscendingNode(),
			ArgumentOfPeriapsis:      o.ArgumentOfPeriapsis(),
			Epoch:                    o.Epoch(),
			MeanAnomalyAtEpoch:       o.MeanAnomalyAtEpoch(),
		}
	}
	for _, sat := range b.Satellites() {
		rec.Satellites = append(rec.Satellites, bodyRecord(sat))
	}
	return rec
}

// ExportSystemJSON writes the body tree of a system as indented JSON.
func ExportSystemJSON(w io.Writer, sys *System) error {
	if sys == nil {
		return fmt.Errorf("export: nil system: %w", ErrValidation)
	}
	c := SystemCatalog{Version: "1.0", Name: sys.Name, Root: bodyRecord(sys.Root())}
	marsh, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(append(marsh, '\n'))
	return err
}

// ExportSystemFile writes system-<name>.json under the configured output
// directory, returning the path written.
func ExportSystemFile(sys *System) (string, error) {
	if sys == nil {
		return "", fmt.Errorf("export: nil system: %w", ErrValidation)
	}
	filename := fmt.Sprintf("%s/system-%s.json", LoadConfig().OutputDir, strings.ToLower(sys.Name))
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err = ExportSystemJSON(f, sys); err != nil {
		f.Close()
		return "", err
	}
	return f.Name(), f.Close()
}
