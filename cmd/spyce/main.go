// spyce is the command line front end of the orbital mechanics package:
// it loads planetary systems, builds orbits from any element set, reports
// body states and converts between calendars.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oscar9410/spyce"
)

var (
	systemName string
	configDir  string
)

var rootCmd = &cobra.Command{
	Use:   "spyce",
	Short: "Keplerian orbit toolbox",
	Long: `spyce explores two-body orbital mechanics: built-in planetary systems,
orbit construction from any element pair, state propagation along any conic
and per-body calendars. Inputs are SI units; angle flags are degrees.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The config file is read lazily on first use, so exporting the
		// directory here is early enough.
		if configDir != "" {
			os.Setenv("SPYCE_CONFIG", configDir)
		}
	},
}

func loadSystem() (*spyce.System, error) {
	name := systemName
	if name == "" {
		name = spyce.LoadConfig().DefaultSystem
	}
	return spyce.LoadSystemByName(name)
}

// parseTime accepts seconds past J2000, a Gregorian date or a Kerbal date.
func parseTime(s string) (float64, error) {
	if t, err := strconv.ParseFloat(s, 64); err == nil {
		return t, nil
	}
	if t, err := spyce.ParseHumanDate(s); err == nil {
		return t, nil
	}
	if t, err := spyce.ParseKerbalDate(s); err == nil {
		return t, nil
	}
	return 0, fmt.Errorf("cannot read time %q: give seconds past J2000, a Gregorian date or a Kerbal date", s)
}

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List the built-in systems",
	Run: func(cmd *cobra.Command, args []string) {
		def := spyce.LoadConfig().DefaultSystem
		for _, name := range spyce.Builtins() {
			if name == def {
				fmt.Printf("%s (default)\n", name)
			} else {
				fmt.Println(name)
			}
		}
	},
}

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the bodies of a system as a tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		fmt.Printf("%s system, %d bodies\n", sys.Name, len(sys.Bodies()))
		printTree(sys.Root(), 0)
		return nil
	},
}

func printTree(b *spyce.CelestialBody, depth int) {
	row := fmt.Sprintf("%s%s  mass=%.4g kg  radius=%.4g m",
		strings.Repeat("  ", depth), b.Name, b.Mass(), b.Radius)
	if o := b.Orbit(); o != nil {
		if T, err := o.Period(); err == nil {
			row += fmt.Sprintf("  period=%.6g s", T)
		}
	}
	fmt.Println(row)
	for _, sat := range b.Satellites() {
		printTree(sat, depth+1)
	}
}

var infoCmd = &cobra.Command{
	Use:   "info BODY",
	Short: "Show the physical and orbital details of a body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		b, err := sys.Body(args[0])
		if err != nil {
			return err
		}
		fmt.Println(b)
		fmt.Printf("  GM: %.8g m³/s²  mass: %.6g kg  radius: %.6g m\n", b.GM(), b.Mass(), b.Radius)
		fmt.Printf("  surface gravity: %.4f m/s²  rotational period: %.6g s\n", b.SurfaceGravity(), b.RotationalPeriod())
		if day, err := b.SolarDay(); err == nil {
			fmt.Printf("  solar day: %.6g s\n", day)
		}
		if soi, err := b.SphereOfInfluence(); err == nil {
			fmt.Printf("  sphere of influence: %.6g m\n", soi)
		}
		if o := b.Orbit(); o != nil {
			fmt.Printf("  orbit: %s\n", o)
			if T, err := o.Period(); err == nil {
				fmt.Printf("  period: %.6g s (%s)\n", T, spyce.FormatHumanTime(T))
			}
		}
		if sats := b.Satellites(); len(sats) > 0 {
			names := make([]string, len(sats))
			for i, sat := range sats {
				names[i] = sat.Name
			}
			fmt.Printf("  satellites: %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var stateAt string

var stateCmd = &cobra.Command{
	Use:   "state BODY",
	Short: "Print a body's position and velocity at a time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		b, err := sys.Body(args[0])
		if err != nil {
			return err
		}
		o := b.Orbit()
		if o == nil {
			return fmt.Errorf("%s is the system root and has no orbit", b.Name)
		}
		t, err := parseTime(stateAt)
		if err != nil {
			return err
		}
		r, v, err := o.StateAt(t)
		if err != nil {
			return err
		}
		ν, err := o.TrueAnomalyAt(t)
		if err != nil {
			return err
		}
		fmt.Printf("%s at t=%.3f s (%s), around %s:\n", b.Name, t, spyce.FormatHumanDate(t), o.Primary().Name)
		fmt.Printf("  r = %v m  |r| = %.6g m\n", r, r.Norm())
		fmt.Printf("  v = %v m/s  |v| = %.6g m/s\n", v, v.Norm())
		fmt.Printf("  true anomaly: %.4f°  mean anomaly: %.4f°\n", spyce.Rad2deg(ν), spyce.Rad2deg(o.MeanAnomalyAt(t)))
		return nil
	},
}

var (
	orbitPrimary string
	orbitRp      float64
	orbitRa      float64
	orbitSMA     float64
	orbitEcc     float64
	orbitPeriod  float64
	orbitApsis   float64
	orbitInc     float64
	orbitNode    float64
	orbitArgP    float64
	orbitEpoch   float64
	orbitM0      float64
	orbitAt      float64
	orbitPos     []float64
	orbitVel     []float64
)

var orbitCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Build an orbit from elements and print its derived quantities",
	Long: `orbit builds a Keplerian orbit around --primary from whichever element
pair the flags give: --periapsis/--eccentricity, --sma/--eccentricity,
--periapsis/--apoapsis, --period/--eccentricity, --period/--apsis or
--position/--velocity. With --position/--velocity the elements are derived
from the state vector at --epoch and the angle flags are ignored.
Distances are meters, times seconds, angles degrees.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		primary, err := sys.Body(orbitPrimary)
		if err != nil {
			return err
		}
		spec, err := specFromFlags(cmd)
		if err != nil {
			return err
		}
		o, err := spyce.NewOrbit(primary, spec)
		if err != nil {
			return err
		}
		return printOrbit(o, orbitAt)
	},
}

func specFromFlags(cmd *cobra.Command) (spyce.OrbitSpec, error) {
	set := cmd.Flags().Changed
	i := spyce.Deg2rad(orbitInc)
	Ω := spyce.Deg2rad(orbitNode)
	ω := spyce.Deg2rad(orbitArgP)
	M0 := spyce.Deg2rad(orbitM0)
	switch {
	case set("position") && set("velocity"):
		r, err := vectorFlag("position", orbitPos)
		if err != nil {
			return nil, err
		}
		v, err := vectorFlag("velocity", orbitVel)
		if err != nil {
			return nil, err
		}
		return spyce.ByStateVector{Position: r, Velocity: v, Instant: orbitEpoch}, nil
	case set("periapsis") && set("apoapsis"):
		return spyce.ByApsides{Apsis1: orbitRp, Apsis2: orbitRa, Inclination: i, LongitudeOfAscendingNode: Ω, ArgumentOfPeriapsis: ω, Epoch: orbitEpoch, MeanAnomalyAtEpoch: M0}, nil
	case set("sma") && set("eccentricity"):
		return spyce.BySemiMajorAxisEccentricity{SemiMajorAxis: orbitSMA, Eccentricity: orbitEcc, Inclination: i, LongitudeOfAscendingNode: Ω, ArgumentOfPeriapsis: ω, Epoch: orbitEpoch, MeanAnomalyAtEpoch: M0}, nil
	case set("period") && set("eccentricity"):
		return spyce.ByPeriodEccentricity{Period: orbitPeriod, Eccentricity: orbitEcc, Inclination: i, LongitudeOfAscendingNode: Ω, ArgumentOfPeriapsis: ω, Epoch: orbitEpoch, MeanAnomalyAtEpoch: M0}, nil
	case set("period") && set("apsis"):
		return spyce.ByPeriodApsis{Period: orbitPeriod, Apsis: orbitApsis, Inclination: i, LongitudeOfAscendingNode: Ω, ArgumentOfPeriapsis: ω, Epoch: orbitEpoch, MeanAnomalyAtEpoch: M0}, nil
	case set("periapsis") && set("eccentricity"):
		return spyce.ByPeriapsisEccentricity{Periapsis: orbitRp, Eccentricity: orbitEcc, Inclination: i, LongitudeOfAscendingNode: Ω, ArgumentOfPeriapsis: ω, Epoch: orbitEpoch, MeanAnomalyAtEpoch: M0}, nil
	}
	return nil, fmt.Errorf("give one element pair: --periapsis/--eccentricity, --sma/--eccentricity, --periapsis/--apoapsis, --period/--eccentricity, --period/--apsis or --position/--velocity")
}

func vectorFlag(name string, c []float64) (spyce.Vector, error) {
	if len(c) != 3 {
		return spyce.Vector{}, fmt.Errorf("--%s needs three comma separated components, got %d", name, len(c))
	}
	return spyce.Vector{c[0], c[1], c[2]}, nil
}

func printOrbit(o *spyce.Orbit, t float64) error {
	fmt.Println(o)
	fmt.Printf("  semi-major axis: %.6g m  semi-latus rectum: %.6g m  apoapsis: %.6g m\n", o.SemiMajorAxis(), o.SemiLatusRectum(), o.Apoapsis())
	fmt.Printf("  specific energy: %.6g J/kg\n", o.Energy())
	if T, err := o.Period(); err == nil {
		fmt.Printf("  period: %.6g s (%s)\n", T, spyce.FormatHumanTime(T))
	} else {
		fmt.Println("  period: none, the orbit is parabolic")
	}
	r, v, err := o.StateAt(t)
	if err != nil {
		return err
	}
	fmt.Printf("  state at t=%.3f s:\n    r = %v m\n    v = %v m/s\n", t, r, v)
	return nil
}

var (
	timeAt    string
	timeParse string
)

var timeCmd = &cobra.Command{
	Use:   "time BODY",
	Short: "Convert a simulation time between calendars",
	Long: `time prints one instant on every calendar the toolkit knows: seconds
past J2000, the Gregorian date, the Kerbal date and the body's own calendar
built from its rotation and orbit. With --parse the instant is read back
from a string on the body's calendar instead of --at.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		b, err := sys.Body(args[0])
		if err != nil {
			return err
		}
		var t float64
		if timeParse != "" {
			t, err = b.ParseTime(timeParse)
		} else {
			t, err = parseTime(timeAt)
		}
		if err != nil {
			return err
		}
		fmt.Printf("seconds past J2000: %.6f\n", t)
		fmt.Printf("Gregorian: %s\n", spyce.FormatHumanDate(t))
		fmt.Printf("Kerbal:    %s\n", spyce.FormatKerbalDate(t))
		fmt.Printf("%s local: %s\n", b.Name, b.FormatTime(t))
		fmt.Printf("elapsed:   %s (%s in Kerbal days)\n", spyce.FormatHumanTime(t), spyce.FormatKerbalTime(t))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write trajectories and system catalogs to the output directory",
}

var (
	exportStart   string
	exportEnd     string
	exportSamples int
	exportStamped bool
)

var exportTrajCmd = &cobra.Command{
	Use:   "trajectory BODY",
	Short: "Sample a body's orbit to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		b, err := sys.Body(args[0])
		if err != nil {
			return err
		}
		o := b.Orbit()
		if o == nil {
			return fmt.Errorf("%s is the system root and has no trajectory", b.Name)
		}
		start, err := parseTime(exportStart)
		if err != nil {
			return err
		}
		end := start
		if cmd.Flags().Changed("end") {
			if end, err = parseTime(exportEnd); err != nil {
				return err
			}
		} else {
			T, err := o.Period()
			if err != nil {
				return fmt.Errorf("give --end to sample an open orbit: %w", err)
			}
			end = start + T
		}
		path, err := spyce.ExportTrajectory(strings.ToLower(b.Name), o, start, end, exportSamples, exportStamped)
		if err != nil {
			return err
		}
		log.Printf("saved trajectory to %s", path)
		return nil
	},
}

var exportSystemCmd = &cobra.Command{
	Use:   "system",
	Short: "Write the system's body tree as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		path, err := spyce.ExportSystemFile(sys)
		if err != nil {
			return err
		}
		log.Printf("saved system catalog to %s", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&systemName, "system", "s", "", "system to load (default from spyce.toml, falling back to kerbol)")
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "directory holding spyce.toml (overrides $SPYCE_CONFIG)")

	stateCmd.Flags().StringVar(&stateAt, "at", "0", "simulation time: seconds past J2000, a Gregorian or a Kerbal date")

	timeCmd.Flags().StringVar(&timeAt, "at", "0", "simulation time: seconds past J2000, a Gregorian or a Kerbal date")
	timeCmd.Flags().StringVar(&timeParse, "parse", "", "a time on the body's calendar, read back instead of --at")

	orbitCmd.Flags().StringVarP(&orbitPrimary, "primary", "p", "", "body the orbit is around (required)")
	orbitCmd.Flags().Float64Var(&orbitRp, "periapsis", 0, "periapsis distance in m")
	orbitCmd.Flags().Float64Var(&orbitRa, "apoapsis", 0, "apoapsis distance in m")
	orbitCmd.Flags().Float64Var(&orbitSMA, "sma", 0, "semi-major axis in m")
	orbitCmd.Flags().Float64Var(&orbitEcc, "eccentricity", 0, "eccentricity")
	orbitCmd.Flags().Float64Var(&orbitPeriod, "period", 0, "orbital period in s")
	orbitCmd.Flags().Float64Var(&orbitApsis, "apsis", 0, "either apsis distance in m, paired with --period")
	orbitCmd.Flags().Float64Var(&orbitInc, "inclination", 0, "inclination in degrees")
	orbitCmd.Flags().Float64Var(&orbitNode, "node", 0, "longitude of the ascending node in degrees")
	orbitCmd.Flags().Float64Var(&orbitArgP, "argp", 0, "argument of periapsis in degrees")
	orbitCmd.Flags().Float64Var(&orbitEpoch, "epoch", 0, "epoch in seconds past J2000")
	orbitCmd.Flags().Float64Var(&orbitM0, "mean-anomaly", 0, "mean anomaly at epoch in degrees")
	orbitCmd.Flags().Float64Var(&orbitAt, "at", 0, "time to evaluate the state at, seconds past J2000")
	orbitCmd.Flags().Float64SliceVar(&orbitPos, "position", nil, "position vector in m, three comma separated components")
	orbitCmd.Flags().Float64SliceVar(&orbitVel, "velocity", nil, "velocity vector in m/s, three comma separated components")
	orbitCmd.MarkFlagRequired("primary")

	exportTrajCmd.Flags().StringVar(&exportStart, "start", "0", "first sample time")
	exportTrajCmd.Flags().StringVar(&exportEnd, "end", "", "last sample time (default one period after start)")
	exportTrajCmd.Flags().IntVar(&exportSamples, "samples", 360, "number of samples")
	exportTrajCmd.Flags().BoolVar(&exportStamped, "stamped", false, "timestamp the output filename")

	exportCmd.AddCommand(exportTrajCmd, exportSystemCmd)
	rootCmd.AddCommand(systemsCmd, bodiesCmd, infoCmd, stateCmd, orbitCmd, timeCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
