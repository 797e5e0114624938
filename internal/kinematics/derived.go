package kinematics

// Point is one sampled trajectory position.
type Point struct {
	T float64
	X float64
	Y float64
}

// MaxHeight returns the apex of the vertical motion. It requires the
// vertical v0 and a to be known: while ascending under downward
// acceleration the apex is the position at the vertex time -v0/a,
// otherwise there is no ascent and the apex is the initial height.
func (e *Engine) MaxHeight() (float64, bool) {
	v0 := e.y.Get(RoleV0)
	a := e.y.Get(RoleA)
	if !v0.Known || !a.Known {
		return 0, false
	}
	y0 := 0.0
	if p0 := e.y.Get(RoleP0); p0.Known {
		y0 = p0.Value
	}
	if a.Value < 0 && v0.Value > 0 {
		tv := -v0.Value / a.Value
		return y0 + v0.Value*tv + 0.5*a.Value*tv*tv, true
	}
	return y0, true
}

// TimeOfFlight returns the total elapsed time. Presented from the
// horizontal axis by convention; the coordinator keeps both axes' t
// synchronized whenever either is known.
func (e *Engine) TimeOfFlight() (float64, bool) {
	t := e.x.Get(RoleT)
	return t.Value, t.Known
}

// Range returns the horizontal displacement.
func (e *Engine) Range() (float64, bool) {
	d := e.x.Get(RoleD)
	return d.Value, d.Known
}

// PositionAt evaluates p0 + v0*t + a*t^2/2 for one axis. The initial
// position defaults to the origin when unknown.
func (e *Engine) PositionAt(a Axis, t float64) float64 {
	s := e.axis(a)
	p0 := 0.0
	if p := s.Get(RoleP0); p.Known {
		p0 = p.Value
	}
	return p0 + s.Get(RoleV0).Value*t + 0.5*s.Get(RoleA).Value*t*t
}

// SampleTrajectory returns n+1 evenly spaced trajectory points over
// [0, t_total]. It requires both initial velocities and a positive total
// time; otherwise there is nothing to plot.
func (e *Engine) SampleTrajectory(n int) ([]Point, bool) {
	t, ok := e.TimeOfFlight()
	if !ok || t <= 0 || n < 1 {
		return nil, false
	}
	if !e.x.Get(RoleV0).Known || !e.y.Get(RoleV0).Known {
		return nil, false
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		tt := float64(i) / float64(n) * t
		pts = append(pts, Point{
			T: tt,
			X: e.PositionAt(AxisX, tt),
			Y: e.PositionAt(AxisY, tt),
		})
	}
	return pts, true
}
