package kinematics

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Engine scenarios", func() {
	var eng *Engine

	BeforeEach(func() {
		eng = New()
	})

	Describe("projectile launch over level ground", func() {
		BeforeEach(func() {
			eng.SetLaunchSpeed(20)
			eng.SetLaunchAngle(30)
			eng.SetValue(AxisY, RolePf, 0)
		})

		It("decomposes the launch vector", func() {
			snap := eng.Snapshot()
			Expect(snap.X[RoleV0].Known).To(BeTrue())
			Expect(snap.X[RoleV0].Value).To(BeNumerically("~", 17.32, 1e-2))
			Expect(snap.Y[RoleV0].Known).To(BeTrue())
			Expect(snap.Y[RoleV0].Value).To(BeNumerically("~", 10.0, 1e-2))
		})

		It("derives the time of flight on both axes", func() {
			snap := eng.Snapshot()
			Expect(snap.TimeOfFlight.Known).To(BeTrue())
			Expect(snap.TimeOfFlight.Value).To(BeNumerically("~", 2.039, 1e-2))
			Expect(snap.X[RoleT].Value).To(Equal(snap.Y[RoleT].Value))
		})

		It("derives max height and range", func() {
			snap := eng.Snapshot()
			Expect(snap.MaxHeight.Known).To(BeTrue())
			Expect(snap.MaxHeight.Value).To(BeNumerically("~", 5.10, 1e-2))
			Expect(snap.Range.Known).To(BeTrue())
			Expect(snap.Range.Value).To(BeNumerically("~", 35.31, 1e-2))
		})

		It("samples a trajectory that starts and ends at ground level", func() {
			pts, ok := eng.SampleTrajectory(50)
			Expect(ok).To(BeTrue())
			Expect(pts).To(HaveLen(51))
			Expect(pts[0].Y).To(BeNumerically("~", 0, 1e-9))
			Expect(pts[50].Y).To(BeNumerically("~", 0, 1e-6))
			Expect(pts[50].X).To(BeNumerically("~", 35.31, 1e-2))
		})
	})

	Describe("zero-acceleration axis", func() {
		It("derives both velocities from d and t alone", func() {
			eng.SetValue(AxisX, RoleD, 100)
			eng.SetValue(AxisX, RoleT, 10)

			snap := eng.Snapshot()
			Expect(snap.X[RoleV0].Known).To(BeTrue())
			Expect(snap.X[RoleV0].Value).To(BeNumerically("~", 10, 1e-9))
			Expect(snap.X[RoleVf].Known).To(BeTrue())
			Expect(snap.X[RoleVf].Value).To(BeNumerically("~", 10, 1e-9))
		})
	})

	Describe("quadratic root selection", func() {
		It("prefers the non-trivial positive root", func() {
			eng.SetValue(AxisY, RoleV0, 5)
			eng.SetValue(AxisY, RoleD, 0)

			snap := eng.Snapshot()
			Expect(snap.Y[RoleT].Known).To(BeTrue())
			Expect(snap.Y[RoleT].Value).To(BeNumerically("~", 1.019, 1e-2))
		})
	})

	Describe("final-speed decomposition", func() {
		It("pins the descending-branch sign for the vertical component", func() {
			eng.SetFinalSpeed(20)
			eng.SetValue(AxisX, RoleVf, 12)

			snap := eng.Snapshot()
			Expect(snap.Y[RoleVf].Known).To(BeTrue())
			Expect(snap.Y[RoleVf].Value).To(BeNumerically("~", -16, 1e-9))
		})
	})
})
