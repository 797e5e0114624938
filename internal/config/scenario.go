package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinsolve/internal/kinematics"
)

// Scenario is the set of user-entered inputs for one problem. Nil fields
// are left unset; the engine's defaults (p0=0, a_x=0, a_y=-g) still apply
// unless a value here overrides them.
type Scenario struct {
	X AxisInputs `yaml:"x"`
	Y AxisInputs `yaml:"y"`

	LaunchSpeed *float64 `yaml:"launch_speed,omitempty"`
	LaunchAngle *float64 `yaml:"launch_angle,omitempty"`
	FinalSpeed  *float64 `yaml:"final_speed,omitempty"`
}

// AxisInputs holds optional per-axis values, keyed by variable label.
type AxisInputs struct {
	P0 *float64 `yaml:"p0,omitempty"`
	Pf *float64 `yaml:"pf,omitempty"`
	V0 *float64 `yaml:"v0,omitempty"`
	Vf *float64 `yaml:"vf,omitempty"`
	A  *float64 `yaml:"a,omitempty"`
	D  *float64 `yaml:"d,omitempty"`
	T  *float64 `yaml:"t,omitempty"`
}

func (a *AxisInputs) value(r kinematics.Role) *float64 {
	switch r {
	case kinematics.RoleP0:
		return a.P0
	case kinematics.RolePf:
		return a.Pf
	case kinematics.RoleV0:
		return a.V0
	case kinematics.RoleVf:
		return a.Vf
	case kinematics.RoleA:
		return a.A
	case kinematics.RoleD:
		return a.D
	case kinematics.RoleT:
		return a.T
	}
	return nil
}

// Load reads a scenario from a yaml file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Save writes a scenario to a yaml file.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply enters every set value into the engine. Each entry triggers a
// resolve, so the engine is fully solved when Apply returns; the final
// state does not depend on entry order beyond the engine's own rules.
func (s *Scenario) Apply(e *kinematics.Engine) {
	for r := kinematics.Role(0); r < kinematics.NumRoles; r++ {
		if v := s.X.value(r); v != nil {
			e.SetValue(kinematics.AxisX, r, *v)
		}
		if v := s.Y.value(r); v != nil {
			e.SetValue(kinematics.AxisY, r, *v)
		}
	}
	if s.LaunchSpeed != nil {
		e.SetLaunchSpeed(*s.LaunchSpeed)
	}
	if s.LaunchAngle != nil {
		e.SetLaunchAngle(*s.LaunchAngle)
	}
	if s.FinalSpeed != nil {
		e.SetFinalSpeed(*s.FinalSpeed)
	}
}
