package geometry

import (
	"math"
	"testing"

	"github.com/sarahkittyy/saraytracer/pkg/core"
	"github.com/sarahkittyy/saraytracer/pkg/material"
)

func testMaterial() core.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_PointingAway(t *testing.T) {
	// Origin outside the sphere, direction away from it: both roots negative
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss for ray pointing away, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_BothRootsOnSurface(t *testing.T) {
	// Ray through the sphere center: roots at t=2 (near) and t=4 (far).
	// Each returned t must place the hit point on the sphere surface.
	center := core.NewVec3(0, 0, 0)
	sphere := NewSphere(center, 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	near, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected near-root hit, but got miss")
	}
	if math.Abs(near.T-2.0) > 1e-9 {
		t.Errorf("Expected near root t=2, got t=%f", near.T)
	}

	// Exclude the near root; the far root must be selected instead
	far, isHit := sphere.Hit(ray, 2.5, math.Inf(1))
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(far.T-4.0) > 1e-9 {
		t.Errorf("Expected far root t=4, got t=%f", far.T)
	}

	for _, hit := range []*core.HitRecord{near, far} {
		dist := ray.At(hit.T).Subtract(center).Length()
		if math.Abs(dist-1.0) > 1e-9 {
			t.Errorf("Hit point at t=%f is %f from center, expected radius 1", hit.T, dist)
		}
	}
}

func TestSphere_Hit_IntervalExcludesBothRoots(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	// Roots are at t=2 and t=4; the interval admits neither
	if hit, isHit := sphere.Hit(ray, 0.001, 1.5); isHit {
		t.Errorf("Expected miss with both roots out of range, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	// Negative radius models a hollow shell: the outward normal points inward
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// The stored normal still opposes the ray, but the face flag flips
	if hit.FrontFace {
		t.Error("Expected back-face hit on a negative-radius sphere")
	}
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Stored normal %v should oppose the ray direction", hit.Normal)
	}
}
