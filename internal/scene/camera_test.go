package scene

import (
	"math"
	"testing"

	"github.com/vovakirdan/ringrun/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCameraHalfExtents(t *testing.T) {
	cam := NewPerspectiveCamera(90, 2, 0.1, 1000)
	cam.Position.Z = 5

	halfW, halfH := cam.HalfExtents(0)
	// tan(45deg) == 1, so the half height equals the distance
	if !approx(halfH, 5) || !approx(halfW, 10) {
		t.Errorf("HalfExtents(0) = (%f, %f), expected (10, 5)", halfW, halfH)
	}

	if w, h := cam.HalfExtents(6); w != 0 || h != 0 {
		t.Errorf("plane behind camera should have zero extents, got (%f, %f)", w, h)
	}
}

func TestCameraProjectRoundTrip(t *testing.T) {
	cam := NewPerspectiveCamera(75, 16.0/9.0, 0.1, 1000)
	cam.Position.Z = 5

	points := []core.Vec3{
		{X: 0, Y: 0},
		{X: 4.5, Y: 3},
		{X: -4.5, Y: -3},
		{X: 1.25, Y: -0.5},
	}
	for _, p := range points {
		nx, ny, ok := cam.Project(p)
		if !ok {
			t.Fatalf("Project(%v) should be visible", p)
		}
		back := cam.Unproject(nx, ny, p.Z)
		if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
			t.Errorf("Unproject(Project(%v)) = %v", p, back)
		}
	}
}

func TestCameraFieldFitsDefaultView(t *testing.T) {
	// The default 4.5 x 3 play-field must be on screen for a typical terminal.
	cam := NewPerspectiveCamera(75, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, CellAspect: 2}.Aspect(), 0.1, 1000)
	cam.Position.Z = 5

	for _, p := range []core.Vec3{{X: 4.5, Y: 3}, {X: -4.5, Y: -3}} {
		nx, ny, ok := cam.Project(p)
		if !ok || math.Abs(nx) > 1 || math.Abs(ny) > 1 {
			t.Errorf("corner %v projects to (%f, %f), outside the view", p, nx, ny)
		}
	}
}

func TestCameraClipping(t *testing.T) {
	cam := NewPerspectiveCamera(75, 1, 0.1, 10)
	cam.Position.Z = 5

	if _, _, ok := cam.Project(core.Vec3{Z: 4.95}); ok {
		t.Error("point closer than near plane should be clipped")
	}
	if _, _, ok := cam.Project(core.Vec3{Z: -6}); ok {
		t.Error("point beyond far plane should be clipped")
	}
}

func TestCameraSetAspect(t *testing.T) {
	cam := NewPerspectiveCamera(75, 0, 0.1, 1000)
	if cam.Aspect != 1 {
		t.Errorf("zero aspect should default to 1, got %f", cam.Aspect)
	}
	cam.SetAspect(-3)
	if cam.Aspect != 1 {
		t.Error("negative aspect should be ignored")
	}
	cam.SetAspect(2.5)
	if cam.Aspect != 2.5 {
		t.Errorf("SetAspect(2.5) gave %f", cam.Aspect)
	}
}
