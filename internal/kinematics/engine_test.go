package kinematics

import (
	"math"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	e := New()
	snap := e.Snapshot()

	tests := []struct {
		name string
		v    VarView
		want float64
	}{
		{"x p0", snap.X[RoleP0], 0},
		{"y p0", snap.Y[RoleP0], 0},
		{"x a", snap.X[RoleA], 0},
		{"y a", snap.Y[RoleA], -Gravity},
	}
	for _, tt := range tests {
		if !tt.v.Known || !tt.v.UserSet {
			t.Errorf("%s: expected known+userSet default, got %+v", tt.name, tt.v)
		}
		if tt.v.Value != tt.want {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, tt.v.Value)
		}
	}

	if snap.LaunchSpeed.Known || snap.LaunchAngle.Known || snap.FinalSpeed.Known {
		t.Error("polar quantities should start unknown")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	e := New()
	e.SetLaunchSpeed(20)
	e.SetLaunchAngle(30)
	e.SetValue(AxisY, RolePf, 0)
	fresh := New()

	e.Reset()

	if !reflect.DeepEqual(e.Snapshot(), fresh.Snapshot()) {
		t.Error("reset state differs from a fresh engine")
	}
}

func TestUserSetImpliesKnown(t *testing.T) {
	e := New()
	e.SetLaunchSpeed(15)
	e.SetValue(AxisX, RoleVf, 8)
	e.SetFinalSpeed(17)
	e.ClearValue(AxisX, RoleA)
	e.SetValue(AxisY, RoleT, 3)

	snap := e.Snapshot()
	check := func(name string, v VarView) {
		if v.UserSet && !v.Known {
			t.Errorf("%s: userSet without known", name)
		}
	}
	for r := Role(0); r < NumRoles; r++ {
		check("x."+r.String(), snap.X[r])
		check("y."+r.String(), snap.Y[r])
	}
	check("launch speed", snap.LaunchSpeed)
	check("launch angle", snap.LaunchAngle)
	check("final speed", snap.FinalSpeed)
}

func TestResolveAllIdempotent(t *testing.T) {
	e := New()
	e.SetLaunchSpeed(20)
	e.SetLaunchAngle(30)
	e.SetValue(AxisY, RolePf, 0)

	first := e.Snapshot()
	e.resolveAll()
	second := e.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Error("resolveAll is not idempotent")
	}
}

func TestLaunchVectorSeeding(t *testing.T) {
	e := New()
	e.SetLaunchSpeed(10)
	e.SetLaunchAngle(90)

	snap := e.Snapshot()
	v0x, v0y := snap.X[RoleV0], snap.Y[RoleV0]
	if !v0x.Known || !v0y.Known {
		t.Fatal("launch vector did not seed axis velocities")
	}
	if math.Abs(v0y.Value-10) > 1e-9 {
		t.Errorf("expected v0y=10, got %f", v0y.Value)
	}
	if math.Abs(v0x.Value) > 1e-9 {
		t.Errorf("expected v0x=0 for a vertical launch, got %f", v0x.Value)
	}
	if v0x.UserSet || v0y.UserSet {
		t.Error("seeded axis velocities must be derived, not user-set")
	}
}

func TestLaunchVectorNeedsBothInputs(t *testing.T) {
	e := New()
	e.SetLaunchSpeed(10)

	if e.Snapshot().X[RoleV0].Known {
		t.Error("speed alone should not seed axis velocities")
	}
}

func TestPolarBackDerivation(t *testing.T) {
	e := New()
	e.SetValue(AxisX, RoleV0, 3)
	e.SetValue(AxisY, RoleV0, 4)

	snap := e.Snapshot()
	if !snap.LaunchSpeed.Known || math.Abs(snap.LaunchSpeed.Value-5) > 1e-9 {
		t.Errorf("expected launch speed 5, got %+v", snap.LaunchSpeed)
	}
	want := math.Atan2(4, 3) * 180 / math.Pi
	if !snap.LaunchAngle.Known || math.Abs(snap.LaunchAngle.Value-want) > 1e-9 {
		t.Errorf("expected launch angle %.4f, got %+v", want, snap.LaunchAngle)
	}
	if snap.LaunchSpeed.UserSet || snap.LaunchAngle.UserSet {
		t.Error("back-derived polar values must not be user-set")
	}
}

func TestSharedTimeSeeding(t *testing.T) {
	e := New()
	e.SetValue(AxisY, RoleT, 2.5)

	snap := e.Snapshot()
	xt := snap.X[RoleT]
	if !xt.Known || xt.Value != 2.5 {
		t.Fatalf("expected x t seeded to 2.5, got %+v", xt)
	}
	if xt.UserSet {
		t.Error("seeded time must not be user-set")
	}
	if xt.Rule != seedSharedT {
		t.Errorf("expected shared-time attribution, got %q", xt.Rule)
	}
}

func TestSharedTimeFromDerivation(t *testing.T) {
	// time derived on Y (from the quadratic) must land on X too
	e := New()
	e.SetValue(AxisY, RoleV0, 5)
	e.SetValue(AxisY, RoleD, 0)

	snap := e.Snapshot()
	if !snap.Y[RoleT].Known {
		t.Fatal("expected y t derived")
	}
	if math.Abs(snap.Y[RoleT].Value-1.019) > 1e-2 {
		t.Errorf("expected t near 1.019, got %f", snap.Y[RoleT].Value)
	}
	if snap.Y[RoleT].Rule != "t:quad(v0)" {
		t.Errorf("expected t:quad(v0) attribution, got %q", snap.Y[RoleT].Rule)
	}
	xt := snap.X[RoleT]
	if !xt.Known || xt.Value != snap.Y[RoleT].Value {
		t.Errorf("x t not synchronized: %+v", xt)
	}
}

func TestFinalSpeedDescendingBranch(t *testing.T) {
	// Scenario D: only finalSpeed and x vf are user-set; y vf comes out
	// negative by the descending-branch convention.
	e := New()
	e.SetFinalSpeed(20)
	e.SetValue(AxisX, RoleVf, 12)

	snap := e.Snapshot()
	vfy := snap.Y[RoleVf]
	if !vfy.Known {
		t.Fatal("expected y vf derived from final speed")
	}
	if math.Abs(vfy.Value-(-16)) > 1e-9 {
		t.Errorf("expected vfy=-16, got %f", vfy.Value)
	}
	if vfy.Rule != seedFinalY {
		t.Errorf("expected final-speed attribution, got %q", vfy.Rule)
	}
}

func TestFinalSpeedAscendingBranch(t *testing.T) {
	e := New()
	e.SetFinalSpeed(20)
	e.SetValue(AxisY, RoleVf, -16)

	vfx := e.Snapshot().X[RoleVf]
	if !vfx.Known || math.Abs(vfx.Value-12) > 1e-9 {
		t.Errorf("expected vfx=+12, got %+v", vfx)
	}
}

func TestFinalSpeedRadicandGuard(t *testing.T) {
	e := New()
	e.SetFinalSpeed(5)
	e.SetValue(AxisX, RoleVf, 12)

	// |vfx| exceeds the final speed; nothing derivable
	if e.Snapshot().Y[RoleVf].Known {
		t.Error("expected y vf to stay unknown on negative radicand")
	}
}

func TestUnDerivationOnClear(t *testing.T) {
	e := New()
	e.SetValue(AxisX, RoleV0, 10)
	e.SetValue(AxisX, RoleT, 2)

	if d := e.Snapshot().X[RoleD]; !d.Known || math.Abs(d.Value-20) > 1e-9 {
		t.Fatalf("expected d=20 derived, got %+v", d)
	}

	e.ClearValue(AxisX, RoleT)

	snap := e.Snapshot()
	if snap.X[RoleD].Known {
		t.Error("d survived removal of its sole support")
	}
	if snap.X[RoleT].Known {
		t.Error("cleared t still known")
	}
	if snap.Y[RoleT].Known {
		t.Error("y t still known after its source was cleared")
	}
}

func TestClearedDefaultStaysCleared(t *testing.T) {
	e := New()
	e.ClearValue(AxisY, RoleA)
	e.SetValue(AxisY, RoleV0, 10)

	snap := e.Snapshot()
	if snap.Y[RoleA].Known {
		t.Error("cleared acceleration should stay unknown")
	}
	if snap.Y[RoleVf].Known {
		t.Error("vf should not be derivable without a")
	}
}

func TestDeterministicSequence(t *testing.T) {
	run := func() Snapshot {
		e := New()
		e.SetLaunchSpeed(20)
		e.SetLaunchAngle(30)
		e.SetValue(AxisY, RolePf, 0)
		e.ClearValue(AxisY, RolePf)
		e.SetValue(AxisY, RolePf, 0)
		return e.Snapshot()
	}
	if !reflect.DeepEqual(run(), run()) {
		t.Error("same edit sequence produced different states")
	}
}
