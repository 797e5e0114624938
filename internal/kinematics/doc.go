// Package kinematics implements a deduction engine for 2D projectile motion.
//
// The motion is split into two independent 1D problems (horizontal X,
// vertical Y) that share a common elapsed time. Each axis carries seven
// scalar variables (p0, pf, v0, vf, a, d, t); a fixed-point rule solver
// derives every unknown reachable from the user-entered values:
//
//   - [Engine]: cross-axis coordinator, entry point for all edits
//   - [Resolve]: per-axis fixed-point rule solver
//   - [Snapshot]: read-only view for rendering collaborators
//
// # Deduction Model
//
// Variables are either user-set (authoritative, never overwritten) or
// derived. Every edit re-runs the full deduction from the user-set values
// alone, so removing an input also removes every conclusion that depended
// on it. An under-determined system simply leaves variables unknown;
// nothing in this package returns an error or panics.
//
//	eng := kinematics.New()
//	eng.SetLaunchSpeed(20)
//	eng.SetLaunchAngle(30)
//	eng.SetValue(kinematics.AxisY, kinematics.RolePf, 0)
//	snap := eng.Snapshot()
package kinematics
