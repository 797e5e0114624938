package config

import "sort"

func f(v float64) *float64 { return &v }

// presets are ready-made scenarios for common textbook problems.
var presets = map[string]*Scenario{
	// 20 m/s at 30 degrees over level ground
	"level30": {
		LaunchSpeed: f(20),
		LaunchAngle: f(30),
		Y:           AxisInputs{Pf: f(0)},
	},
	// 45-degree launch, the maximum-range angle
	"level45": {
		LaunchSpeed: f(15),
		LaunchAngle: f(45),
		Y:           AxisInputs{Pf: f(0)},
	},
	// horizontal throw from a 20 m cliff
	"cliff": {
		X: AxisInputs{V0: f(12)},
		Y: AxisInputs{P0: f(20), V0: f(0), Pf: f(0)},
	},
	// object released from rest at 45 m
	"freefall": {
		X: AxisInputs{V0: f(0)},
		Y: AxisInputs{P0: f(45), V0: f(0), Pf: f(0)},
	},
	// straight-line cruise, no vertical motion
	"cruise": {
		X: AxisInputs{D: f(100), T: f(10)},
		Y: AxisInputs{V0: f(0), A: f(0)},
	},
}

// GetPreset returns a named preset scenario, or nil if unknown.
func GetPreset(name string) *Scenario {
	return presets[name]
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
