package kinematics

import "math"

// rootEpsilon is the threshold above which the larger quadratic root is
// preferred; a root at or below it is treated as the trivial t=0 solution.
const rootEpsilon = 0.001

type axisValues [NumRoles]float64

// rule is one kinematic equation solved for a single output variable.
// apply returns false when a guard fails (zero denominator, negative
// discriminant, negative time); a guarded-out rule simply does not fire.
type rule struct {
	id    string
	out   Role
	needs []Role
	apply func(v axisValues) (float64, bool)
}

// ruleTable is evaluated in this fixed order on every solver pass.
var ruleTable = []rule{
	{
		id: "d=pf-p0", out: RoleD, needs: []Role{RoleP0, RolePf},
		apply: func(v axisValues) (float64, bool) { return v[RolePf] - v[RoleP0], true },
	},
	{
		id: "pf=p0+d", out: RolePf, needs: []Role{RoleP0, RoleD},
		apply: func(v axisValues) (float64, bool) { return v[RoleP0] + v[RoleD], true },
	},
	{
		id: "p0=pf-d", out: RoleP0, needs: []Role{RolePf, RoleD},
		apply: func(v axisValues) (float64, bool) { return v[RolePf] - v[RoleD], true },
	},
	{
		id: "t=(vf-v0)/a", out: RoleT, needs: []Role{RoleV0, RoleVf, RoleA},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleA] == 0 {
				return 0, false
			}
			t := (v[RoleVf] - v[RoleV0]) / v[RoleA]
			return t, t >= 0
		},
	},
	{
		id: "vf=v0 (a=0)", out: RoleVf, needs: []Role{RoleV0, RoleA},
		apply: func(v axisValues) (float64, bool) { return v[RoleV0], v[RoleA] == 0 },
	},
	{
		id: "v0=vf (a=0)", out: RoleV0, needs: []Role{RoleVf, RoleA},
		apply: func(v axisValues) (float64, bool) { return v[RoleVf], v[RoleA] == 0 },
	},
	{
		id: "vf=v0+at", out: RoleVf, needs: []Role{RoleV0, RoleA, RoleT},
		apply: func(v axisValues) (float64, bool) { return v[RoleV0] + v[RoleA]*v[RoleT], true },
	},
	{
		id: "v0=vf-at", out: RoleV0, needs: []Role{RoleVf, RoleA, RoleT},
		apply: func(v axisValues) (float64, bool) { return v[RoleVf] - v[RoleA]*v[RoleT], true },
	},
	{
		id: "a=(vf-v0)/t", out: RoleA, needs: []Role{RoleV0, RoleVf, RoleT},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleT] == 0 {
				return 0, false
			}
			return (v[RoleVf] - v[RoleV0]) / v[RoleT], true
		},
	},
	{
		id: "d=v0t+at2/2", out: RoleD, needs: []Role{RoleV0, RoleA, RoleT},
		apply: func(v axisValues) (float64, bool) {
			return v[RoleV0]*v[RoleT] + 0.5*v[RoleA]*v[RoleT]*v[RoleT], true
		},
	},
	{
		id: "v0=(d-at2/2)/t", out: RoleV0, needs: []Role{RoleD, RoleA, RoleT},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleT] == 0 {
				return 0, false
			}
			return (v[RoleD] - 0.5*v[RoleA]*v[RoleT]*v[RoleT]) / v[RoleT], true
		},
	},
	{
		id: "a=2(d-v0t)/t2", out: RoleA, needs: []Role{RoleD, RoleV0, RoleT},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleT] == 0 {
				return 0, false
			}
			return 2 * (v[RoleD] - v[RoleV0]*v[RoleT]) / (v[RoleT] * v[RoleT]), true
		},
	},
	{
		id: "d=(v0+vf)t/2", out: RoleD, needs: []Role{RoleV0, RoleVf, RoleT},
		apply: func(v axisValues) (float64, bool) {
			return (v[RoleV0] + v[RoleVf]) * 0.5 * v[RoleT], true
		},
	},
	{
		id: "t=2d/(v0+vf)", out: RoleT, needs: []Role{RoleD, RoleV0, RoleVf},
		apply: func(v axisValues) (float64, bool) {
			sum := v[RoleV0] + v[RoleVf]
			if sum == 0 {
				return 0, false
			}
			t := 2 * v[RoleD] / sum
			return t, t >= 0
		},
	},
	{
		id: "v0=2d/t-vf", out: RoleV0, needs: []Role{RoleD, RoleVf, RoleT},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleT] == 0 {
				return 0, false
			}
			return 2*v[RoleD]/v[RoleT] - v[RoleVf], true
		},
	},
	{
		id: "vf=2d/t-v0", out: RoleVf, needs: []Role{RoleD, RoleV0, RoleT},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleT] == 0 {
				return 0, false
			}
			return 2*v[RoleD]/v[RoleT] - v[RoleV0], true
		},
	},
	{
		id: "d=vft-at2/2", out: RoleD, needs: []Role{RoleVf, RoleA, RoleT},
		apply: func(v axisValues) (float64, bool) {
			return v[RoleVf]*v[RoleT] - 0.5*v[RoleA]*v[RoleT]*v[RoleT], true
		},
	},
	{
		id: "vf=(d+at2/2)/t", out: RoleVf, needs: []Role{RoleD, RoleA, RoleT},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleT] == 0 {
				return 0, false
			}
			return (v[RoleD] + 0.5*v[RoleA]*v[RoleT]*v[RoleT]) / v[RoleT], true
		},
	},
	{
		id: "a=2(vft-d)/t2", out: RoleA, needs: []Role{RoleD, RoleVf, RoleT},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleT] == 0 {
				return 0, false
			}
			return 2 * (v[RoleVf]*v[RoleT] - v[RoleD]) / (v[RoleT] * v[RoleT]), true
		},
	},
	{
		// d = vf*t - a*t^2/2 as a quadratic in t; falls back to t=d/vf for a=0.
		id: "t:quad(vf)", out: RoleT, needs: []Role{RoleVf, RoleA, RoleD},
		apply: func(v axisValues) (float64, bool) {
			vf, a, d := v[RoleVf], v[RoleA], v[RoleD]
			if a == 0 {
				if vf == 0 {
					return 0, false
				}
				t := d / vf
				return t, t >= 0
			}
			disc := vf*vf - 2*a*d
			if disc < 0 {
				return 0, false
			}
			s := math.Sqrt(disc)
			return pickRoot((vf+s)/a, (vf-s)/a)
		},
	},
	{
		// d = v0*t + a*t^2/2 as a quadratic in t; falls back to t=d/v0 for a=0.
		id: "t:quad(v0)", out: RoleT, needs: []Role{RoleV0, RoleA, RoleD},
		apply: func(v axisValues) (float64, bool) {
			v0, a, d := v[RoleV0], v[RoleA], v[RoleD]
			if a == 0 {
				if v0 == 0 {
					return 0, false
				}
				t := d / v0
				return t, t >= 0
			}
			disc := v0*v0 + 2*a*d
			if disc < 0 {
				return 0, false
			}
			s := math.Sqrt(disc)
			return pickRoot((-v0+s)/a, (-v0-s)/a)
		},
	},
	{
		// Magnitude from vf^2 = v0^2 + 2ad; sign follows v0, or a*d when v0=0.
		id: "vf2=v02+2ad", out: RoleVf, needs: []Role{RoleV0, RoleA, RoleD},
		apply: func(v axisValues) (float64, bool) {
			disc := v[RoleV0]*v[RoleV0] + 2*v[RoleA]*v[RoleD]
			if disc < 0 {
				return 0, false
			}
			mag := math.Sqrt(disc)
			if v[RoleV0] != 0 {
				if v[RoleV0] > 0 {
					return mag, true
				}
				return -mag, true
			}
			if v[RoleA]*v[RoleD] >= 0 {
				return mag, true
			}
			return -mag, true
		},
	},
	{
		// Magnitude from v0^2 = vf^2 - 2ad; sign follows vf, or -(a*d) when vf=0.
		id: "v02=vf2-2ad", out: RoleV0, needs: []Role{RoleVf, RoleA, RoleD},
		apply: func(v axisValues) (float64, bool) {
			disc := v[RoleVf]*v[RoleVf] - 2*v[RoleA]*v[RoleD]
			if disc < 0 {
				return 0, false
			}
			mag := math.Sqrt(disc)
			if v[RoleVf] != 0 {
				if v[RoleVf] > 0 {
					return mag, true
				}
				return -mag, true
			}
			if v[RoleA]*v[RoleD] <= 0 {
				return mag, true
			}
			return -mag, true
		},
	},
	{
		id: "a=(vf2-v02)/2d", out: RoleA, needs: []Role{RoleV0, RoleVf, RoleD},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleD] == 0 {
				return 0, false
			}
			return (v[RoleVf]*v[RoleVf] - v[RoleV0]*v[RoleV0]) / (2 * v[RoleD]), true
		},
	},
	{
		id: "d=(vf2-v02)/2a", out: RoleD, needs: []Role{RoleV0, RoleVf, RoleA},
		apply: func(v axisValues) (float64, bool) {
			if v[RoleA] == 0 {
				return 0, false
			}
			return (v[RoleVf]*v[RoleVf] - v[RoleV0]*v[RoleV0]) / (2 * v[RoleA]), true
		},
	},
}

// pickRoot selects a physically sensible elapsed time from the two roots
// of a quadratic: the larger one when it is meaningfully positive, else
// the smaller one when non-negative. Assumes a level-ground, forward
// trajectory; a rebound scenario would need both roots surfaced.
func pickRoot(t1, t2 float64) (float64, bool) {
	hi, lo := t1, t2
	if lo > hi {
		hi, lo = lo, hi
	}
	if hi > rootEpsilon {
		return hi, true
	}
	if lo >= 0 {
		return lo, true
	}
	return 0, false
}
