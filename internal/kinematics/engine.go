package kinematics

import "math"

// Gravity is the default downward acceleration on the vertical axis.
const Gravity = 9.81

const degToRad = math.Pi / 180

// maxRounds bounds the cross-axis coupling loop. The combined known-set
// of both axes is monotonic and bounded by 2*NumRoles, so the loop always
// terminates well before the bound; the bound only guards the invariant.
const maxRounds = 2 * NumRoles

// Attribution ids for values seeded by the coordinator rather than by an
// axis rule.
const (
	seedLaunchX = "v0x=vi*cos(ang)"
	seedLaunchY = "v0y=vi*sin(ang)"
	seedFinalX  = "vfx=+sqrt(vf2-vfy2)"
	seedFinalY  = "vfy=-sqrt(vf2-vfx2)"
	seedSharedT = "t shared"
)

// LaunchVector is the polar form of the initial velocity: speed in m/s
// and angle in degrees from horizontal.
type LaunchVector struct {
	Speed Variable
	Angle Variable
}

// Engine owns the full deduction state: both axes, the polar launch
// inputs and the final-speed magnitude. Every edit re-runs the full
// cross-axis deduction before returning, so the state a caller observes
// is always converged and internally consistent. Not safe for concurrent
// use; there is one logical caller at a time.
type Engine struct {
	x, y       AxisState
	launch     LaunchVector
	finalSpeed Variable
}

// New returns an engine holding the default state: positions start at
// the origin, the horizontal axis is acceleration-free and the vertical
// axis accelerates downward at g. All four defaults are authoritative
// until explicitly cleared.
func New() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// Reset restores the default state, discarding every user entry.
func (e *Engine) Reset() {
	e.x = AxisState{}
	e.y = AxisState{}
	e.launch = LaunchVector{}
	e.finalSpeed = Variable{}

	e.x.SetUser(RoleP0, 0)
	e.y.SetUser(RoleP0, 0)
	e.x.SetUser(RoleA, 0)
	e.y.SetUser(RoleA, -Gravity)
	e.resolveAll()
}

func (e *Engine) axis(a Axis) *AxisState {
	if a == AxisX {
		return &e.x
	}
	return &e.y
}

// Axis returns a read-only copy of one axis's state.
func (e *Engine) Axis(a Axis) AxisState { return *e.axis(a) }

// SetValue stores a user-entered value for one axis variable and re-runs
// the deduction.
func (e *Engine) SetValue(a Axis, r Role, value float64) {
	e.axis(a).SetUser(r, value)
	e.resolveAll()
}

// ClearValue removes one axis variable, user-set or derived, and re-runs
// the deduction. Conclusions that depended on it become unknown again
// unless another rule chain still supports them.
func (e *Engine) ClearValue(a Axis, r Role) {
	e.axis(a).ClearUser(r)
	e.resolveAll()
}

// SetLaunchSpeed stores the launch speed (m/s) and re-runs the deduction.
func (e *Engine) SetLaunchSpeed(value float64) {
	e.launch.Speed = Variable{Value: value, Known: true, UserSet: true}
	e.resolveAll()
}

// SetLaunchAngle stores the launch angle (degrees from horizontal) and
// re-runs the deduction.
func (e *Engine) SetLaunchAngle(value float64) {
	e.launch.Angle = Variable{Value: value, Known: true, UserSet: true}
	e.resolveAll()
}

// SetFinalSpeed stores the magnitude of the final velocity and re-runs
// the deduction.
func (e *Engine) SetFinalSpeed(value float64) {
	e.finalSpeed = Variable{Value: value, Known: true, UserSet: true}
	e.resolveAll()
}

// ClearLaunchSpeed removes the launch speed input.
func (e *Engine) ClearLaunchSpeed() {
	e.launch.Speed = Variable{}
	e.resolveAll()
}

// ClearLaunchAngle removes the launch angle input.
func (e *Engine) ClearLaunchAngle() {
	e.launch.Angle = Variable{}
	e.resolveAll()
}

// ClearFinalSpeed removes the final-speed input.
func (e *Engine) ClearFinalSpeed() {
	e.finalSpeed = Variable{}
	e.resolveAll()
}

// resolveAll is the single coordinator transition: drop every derived
// conclusion, seed axis values from the polar inputs, couple the two
// axes through the shared elapsed time, solve both to a fixed point and
// back-derive the polar summary values.
func (e *Engine) resolveAll() {
	e.x.clearDerived()
	e.y.clearDerived()
	if !e.launch.Speed.UserSet {
		e.launch.Speed.Known = false
	}
	if !e.launch.Angle.UserSet {
		e.launch.Angle.Known = false
	}
	if !e.finalSpeed.UserSet {
		e.finalSpeed.Known = false
	}

	if e.launch.Speed.UserSet && e.launch.Angle.UserSet {
		rad := e.launch.Angle.Value * degToRad
		e.x.derive(RoleV0, e.launch.Speed.Value*math.Cos(rad), seedLaunchX)
		e.y.derive(RoleV0, e.launch.Speed.Value*math.Sin(rad), seedLaunchY)
	}

	// Final-speed decomposition assumes a forward, descending-branch
	// trajectory: a derived vfy takes the negative square root, a
	// derived vfx the positive one. At this point derived knowledge is
	// cleared, so at most one branch can apply per call.
	if e.finalSpeed.UserSet && e.x.Get(RoleVf).Known && !e.y.Get(RoleVf).UserSet {
		vfx := e.x.Get(RoleVf).Value
		if rad := e.finalSpeed.Value*e.finalSpeed.Value - vfx*vfx; rad >= 0 {
			e.y.derive(RoleVf, -math.Sqrt(rad), seedFinalY)
		}
	}
	if e.finalSpeed.UserSet && e.y.Get(RoleVf).Known && !e.x.Get(RoleVf).UserSet {
		vfy := e.y.Get(RoleVf).Value
		if rad := e.finalSpeed.Value*e.finalSpeed.Value - vfy*vfy; rad >= 0 {
			e.x.derive(RoleVf, math.Sqrt(rad), seedFinalX)
		}
	}

	// The two axes share elapsed time.
	if e.x.Get(RoleT).UserSet && !e.y.Get(RoleT).UserSet {
		e.y.derive(RoleT, e.x.Get(RoleT).Value, seedSharedT)
	} else if e.y.Get(RoleT).UserSet && !e.x.Get(RoleT).UserSet {
		e.x.derive(RoleT, e.y.Get(RoleT).Value, seedSharedT)
	}

	for round := 0; round < maxRounds; round++ {
		before := e.x.knownCount() + e.y.knownCount()

		Resolve(&e.x)
		if e.x.Get(RoleT).Known && !e.y.Get(RoleT).Known {
			e.y.derive(RoleT, e.x.Get(RoleT).Value, seedSharedT)
		}
		Resolve(&e.y)
		if e.y.Get(RoleT).Known && !e.x.Get(RoleT).Known {
			e.x.derive(RoleT, e.y.Get(RoleT).Value, seedSharedT)
		}

		if e.x.knownCount()+e.y.knownCount() == before {
			break
		}
	}

	if !e.launch.Speed.Known && e.x.Get(RoleV0).Known && e.y.Get(RoleV0).Known {
		e.launch.Speed = Variable{
			Value: math.Hypot(e.x.Get(RoleV0).Value, e.y.Get(RoleV0).Value),
			Known: true,
		}
	}
	if !e.launch.Angle.Known && e.x.Get(RoleV0).Known && e.y.Get(RoleV0).Known {
		e.launch.Angle = Variable{
			Value: math.Atan2(e.y.Get(RoleV0).Value, e.x.Get(RoleV0).Value) / degToRad,
			Known: true,
		}
	}
	if !e.finalSpeed.Known && e.x.Get(RoleVf).Known && e.y.Get(RoleVf).Known {
		e.finalSpeed = Variable{
			Value: math.Hypot(e.x.Get(RoleVf).Value, e.y.Get(RoleVf).Value),
			Known: true,
		}
	}
}
