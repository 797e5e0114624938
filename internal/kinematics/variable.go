package kinematics

import "fmt"

// Role identifies one of the seven kinematic variables of a 1D motion.
type Role int

const (
	RoleP0 Role = iota // initial position
	RolePf             // final position
	RoleV0             // initial velocity
	RoleVf             // final velocity
	RoleA              // acceleration
	RoleD              // displacement
	RoleT              // elapsed time
)

// NumRoles is the number of kinematic variables per axis.
const NumRoles = 7

var roleNames = [NumRoles]string{"p0", "pf", "v0", "vf", "a", "d", "t"}

func (r Role) String() string {
	if r < 0 || r >= NumRoles {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole maps a variable label ("p0", "vf", ...) to its Role.
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if s == name {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown variable: %s", s)
}

// Axis selects one of the two 1D motion problems.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ParseAxis maps an axis label ("x" or "y") to its Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return 0, fmt.Errorf("unknown axis: %s", s)
}

// Variable is one scalar kinematic quantity. UserSet values are
// authoritative and never overwritten by derivation; UserSet implies Known.
type Variable struct {
	Value   float64
	Known   bool
	UserSet bool
}

// AxisState holds the seven variables of one axis along with the id of
// the rule that derived each non-user-set value.
type AxisState struct {
	vars  [NumRoles]Variable
	rules [NumRoles]string
}

// Get returns the variable for a role.
func (s *AxisState) Get(r Role) Variable { return s.vars[r] }

// RuleFor returns the id of the rule that derived the role's value, or
// an empty string if the value is user-set or unknown.
func (s *AxisState) RuleFor(r Role) string { return s.rules[r] }

// SetUser stores a user-entered value, marking it known and authoritative.
func (s *AxisState) SetUser(r Role, value float64) {
	s.vars[r] = Variable{Value: value, Known: true, UserSet: true}
	s.rules[r] = ""
}

// ClearUser removes a variable entirely, user-set or not.
func (s *AxisState) ClearUser(r Role) {
	s.vars[r] = Variable{}
	s.rules[r] = ""
}

// derive stores a derived value with its rule attribution. User-set
// variables are left untouched.
func (s *AxisState) derive(r Role, value float64, ruleID string) {
	if s.vars[r].UserSet {
		return
	}
	s.vars[r] = Variable{Value: value, Known: true}
	s.rules[r] = ruleID
}

// clearDerived drops every non-user-set conclusion so that a resolve
// pass starts from the authoritative values alone.
func (s *AxisState) clearDerived() {
	for i := range s.vars {
		if s.vars[i].UserSet {
			continue
		}
		s.vars[i].Known = false
		s.rules[i] = ""
	}
}

func (s *AxisState) knownCount() int {
	n := 0
	for i := range s.vars {
		if s.vars[i].Known {
			n++
		}
	}
	return n
}
