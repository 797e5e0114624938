package kinematics

// VarView is the read-only form of one variable: its value, whether it is
// currently valid, whether the user entered it, and the id of the rule
// that derived it (empty for user-set or unknown values).
type VarView struct {
	Value   float64
	Known   bool
	UserSet bool
	Rule    string
}

// DerivedView is a summary quantity computed after every resolve.
type DerivedView struct {
	Value float64
	Known bool
}

// Snapshot is a consistent, fully resolved copy of the engine state for
// rendering collaborators. Unknown variables are a valid end state, not
// an error.
type Snapshot struct {
	X [NumRoles]VarView
	Y [NumRoles]VarView

	LaunchSpeed VarView
	LaunchAngle VarView
	FinalSpeed  VarView

	MaxHeight    DerivedView
	TimeOfFlight DerivedView
	Range        DerivedView
}

// Snapshot captures the current state. The engine resolves on every edit,
// so no additional solving happens here.
func (e *Engine) Snapshot() Snapshot {
	var snap Snapshot
	for r := Role(0); r < NumRoles; r++ {
		snap.X[r] = varView(&e.x, r)
		snap.Y[r] = varView(&e.y, r)
	}
	snap.LaunchSpeed = polarView(e.launch.Speed)
	snap.LaunchAngle = polarView(e.launch.Angle)
	snap.FinalSpeed = polarView(e.finalSpeed)

	snap.MaxHeight.Value, snap.MaxHeight.Known = e.MaxHeight()
	snap.TimeOfFlight.Value, snap.TimeOfFlight.Known = e.TimeOfFlight()
	snap.Range.Value, snap.Range.Known = e.Range()
	return snap
}

func varView(s *AxisState, r Role) VarView {
	v := s.Get(r)
	return VarView{Value: v.Value, Known: v.Known, UserSet: v.UserSet, Rule: s.RuleFor(r)}
}

func polarView(v Variable) VarView {
	return VarView{Value: v.Value, Known: v.Known, UserSet: v.UserSet}
}
