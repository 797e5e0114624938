package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/kinsolve/internal/config"
	"github.com/san-kum/kinsolve/internal/export"
	"github.com/san-kum/kinsolve/internal/kinematics"
	"github.com/san-kum/kinsolve/internal/tui"
	"github.com/san-kum/kinsolve/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	speed      float64
	angle      float64
	finalSpeed float64
	sets       []string
	// Plot dimensions
	plotWidth  int
	plotHeight int
	profile    bool
	// Export destination
	outFile string
	samples int
	stroke  string
)

// main registers commands and flags and executes the root command,
// launching the interactive TUI when no subcommand is given.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "kinsolve",
		Short: "projectile motion deduction workbench",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a scenario and print the variable table",
		RunE:  solveScenario,
	}
	addScenarioFlags(solveCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the solved trajectory",
		RunE:  plotScenario,
	}
	addScenarioFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width in characters")
	plotCmd.Flags().IntVar(&plotHeight, "height", 18, "plot height in characters")
	plotCmd.Flags().BoolVar(&profile, "profile", false, "height-vs-time profile instead of xy trajectory")
	plotCmd.Flags().IntVar(&samples, "samples", 80, "trajectory sample count")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the solved state as JSON",
		RunE:  exportScenario,
	}
	addScenarioFlags(exportCmd)
	exportCmd.Flags().StringVar(&outFile, "out", "", "write to file instead of stdout")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the sampled trajectory as CSV",
		RunE:  exportCSVScenario,
	}
	addScenarioFlags(exportCSVCmd)
	exportCSVCmd.Flags().IntVar(&samples, "samples", 80, "trajectory sample count")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [file]",
		Short: "export the trajectory as an SVG image",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGScenario,
	}
	addScenarioFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&plotWidth, "width", 640, "image width in pixels")
	exportSVGCmd.Flags().IntVar(&plotHeight, "height", 360, "image height in pixels")
	exportSVGCmd.Flags().IntVar(&samples, "samples", 80, "trajectory sample count")
	exportSVGCmd.Flags().StringVar(&stroke, "stroke", "#00ff00", "path stroke color")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, scenariosCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario preset")
	cmd.Flags().Float64Var(&speed, "speed", 0, "launch speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "launch angle (degrees)")
	cmd.Flags().Float64Var(&finalSpeed, "final-speed", 0, "impact speed (m/s)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a variable, e.g. --set y.d=-20 --set x.v0=15")
}

// buildEngine assembles an engine from preset, config file and flags,
// in that order, so later sources override earlier ones.
func buildEngine(cmd *cobra.Command) (*kinematics.Engine, error) {
	eng := kinematics.New()

	if preset != "" {
		sc := config.GetPreset(preset)
		if sc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		sc.Apply(eng)
	}

	if configFile != "" {
		sc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		sc.Apply(eng)
	}

	if cmd.Flags().Changed("speed") {
		eng.SetLaunchSpeed(speed)
	}
	if cmd.Flags().Changed("angle") {
		eng.SetLaunchAngle(angle)
	}
	if cmd.Flags().Changed("final-speed") {
		eng.SetFinalSpeed(finalSpeed)
	}

	for _, s := range sets {
		if err := applySet(eng, s); err != nil {
			return nil, err
		}
	}

	return eng, nil
}

// applySet parses an "axis.role=value" assignment like "y.v0=12".
func applySet(eng *kinematics.Engine, s string) error {
	key, val, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid --set %q: want axis.role=value", s)
	}
	axisName, roleName, ok := strings.Cut(key, ".")
	if !ok {
		return fmt.Errorf("invalid --set %q: want axis.role=value", s)
	}

	a, err := kinematics.ParseAxis(axisName)
	if err != nil {
		return fmt.Errorf("invalid --set %q: %w", s, err)
	}
	r, err := kinematics.ParseRole(roleName)
	if err != nil {
		return fmt.Errorf("invalid --set %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("invalid --set %q: %w", s, err)
	}

	eng.SetValue(a, r, v)
	return nil
}

func solveScenario(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	snap := eng.Snapshot()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VAR\tX\tY\tFROM")

	for r := kinematics.Role(0); r < kinematics.NumRoles; r++ {
		from := snap.X[r].Rule
		if from == "" {
			from = snap.Y[r].Rule
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r, cellText(snap.X[r]), cellText(snap.Y[r]), from)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	printPolar("launch speed", snap.LaunchSpeed)
	printPolar("launch angle", snap.LaunchAngle)
	printPolar("impact speed", snap.FinalSpeed)

	fmt.Println()
	printDerived("max height", snap.MaxHeight)
	printDerived("time of flight", snap.TimeOfFlight)
	printDerived("range", snap.Range)

	return nil
}

func cellText(v kinematics.VarView) string {
	if !v.Known {
		return "?"
	}
	s := strconv.FormatFloat(v.Value, 'f', 4, 64)
	if v.UserSet {
		s += "*"
	}
	return s
}

func printPolar(label string, v kinematics.VarView) {
	if v.Known {
		fmt.Printf("%s: %.4f\n", label, v.Value)
	} else {
		fmt.Printf("%s: ?\n", label)
	}
}

func printDerived(label string, d kinematics.DerivedView) {
	if d.Known {
		fmt.Printf("%s: %.4f\n", label, d.Value)
	} else {
		fmt.Printf("%s: underdetermined\n", label)
	}
}

func plotScenario(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	pts, ok := eng.SampleTrajectory(samples)
	if !ok {
		return fmt.Errorf("scenario is underdetermined, cannot sample a trajectory")
	}

	if profile {
		fmt.Println(viz.HeightProfile(pts, plotWidth, plotHeight))
		return nil
	}
	fmt.Println(viz.Trajectory(pts, plotWidth, plotHeight))
	return nil
}

func exportScenario(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	if outFile != "" {
		return export.JSONFile(outFile, eng.Snapshot())
	}
	return export.JSON(os.Stdout, eng.Snapshot())
}

func exportCSVScenario(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	pts, ok := eng.SampleTrajectory(samples)
	if !ok {
		return fmt.Errorf("scenario is underdetermined, cannot sample a trajectory")
	}
	return export.TrajectoryCSV(os.Stdout, pts)
}

func exportSVGScenario(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	pts, ok := eng.SampleTrajectory(samples)
	if !ok {
		return fmt.Errorf("scenario is underdetermined, cannot sample a trajectory")
	}
	return export.TrajectorySVGFile(args[0], pts, plotWidth, plotHeight, stroke)
}
