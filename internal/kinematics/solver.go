package kinematics

// maxPasses bounds the fixed-point loop. Each pass can mark at most one
// new variable known per rule firing and there are only NumRoles
// variables, so twice that is enough for convergence with margin.
const maxPasses = 2 * NumRoles

// Resolve runs the rule table over one axis until a full pass derives
// nothing new. A rule fires only when every input is known, its output is
// not, and its guard holds; newly derived values are visible to later
// rules in the same pass. The known-set is monotonically non-decreasing,
// user-set variables are never touched, and the id of the firing rule is
// recorded per derived variable.
func Resolve(s *AxisState) {
	var v axisValues
	var known [NumRoles]bool
	for i := range s.vars {
		v[i] = s.vars[i].Value
		known[i] = s.vars[i].Known
	}

	for pass := 0; pass < maxPasses; pass++ {
		fired := false
		for _, r := range ruleTable {
			if known[r.out] || !inputsKnown(known, r.needs) {
				continue
			}
			val, ok := r.apply(v)
			if !ok {
				continue
			}
			v[r.out] = val
			known[r.out] = true
			s.rules[r.out] = r.id
			fired = true
		}
		if !fired {
			break
		}
	}

	for i := range s.vars {
		if s.vars[i].UserSet {
			continue
		}
		s.vars[i].Value = v[i]
		s.vars[i].Known = known[i]
	}
}

func inputsKnown(known [NumRoles]bool, needs []Role) bool {
	for _, r := range needs {
		if !known[r] {
			return false
		}
	}
	return true
}
