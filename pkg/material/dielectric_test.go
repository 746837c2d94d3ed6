package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sarahkittyy/saraytracer/pkg/core"
)

func TestDielectric_IndexOneIsTransparent(t *testing.T) {
	// Refractive index matching vacuum: every ray passes through undeviated
	dielectric := NewDielectric(1.0)
	random := rand.New(rand.NewSource(42))

	directions := []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0.6, 0, -0.8),
		core.NewVec3(0.1, -0.3, -0.9).Normalize(),
	}

	for _, dir := range directions {
		rayIn := core.NewRay(core.NewVec3(0, 0, 1), dir)
		hit := core.HitRecord{
			Point:     core.NewVec3(0, 0, 0),
			Normal:    core.NewVec3(0, 0, 1),
			FrontFace: true,
		}

		scatter, didScatter := dielectric.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Dielectric must always scatter")
		}

		got := scatter.Scattered.Direction.Normalize()
		expected := dir.Normalize()
		if got.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Expected undeviated direction %v, got %v", expected, got)
		}
	}
}

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	dielectric := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := dielectric.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Dielectric must always scatter")
	}
	if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Dielectric attenuation should be (1,1,1), got %v", scatter.Attenuation)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	// Exiting glass at a grazing angle: ratio*sin(theta) > 1 forces reflection
	dielectric := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	// sin(theta) = 0.8, ratio = 1.5 when exiting, so 1.2 > 1
	direction := core.NewVec3(0.8, 0, -0.6)
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), direction)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: false, // exiting the material
	}

	scatter, didScatter := dielectric.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Dielectric must always scatter")
	}

	expected := direction.Reflect(hit.Normal)
	got := scatter.Scattered.Direction
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, got)
	}
}

func TestReflectance_Schlick(t *testing.T) {
	// Normal incidence: R = R0 = ((1-n)/(1+n))²
	r0 := Reflectance(1.0, 1.0/1.5)
	expected := math.Pow((1-1.0/1.5)/(1+1.0/1.5), 2)
	if math.Abs(r0-expected) > 1e-12 {
		t.Errorf("Expected R0=%f at normal incidence, got %f", expected, r0)
	}

	// Grazing incidence: reflectance approaches 1
	grazing := Reflectance(0.0, 1.0/1.5)
	if math.Abs(grazing-1.0) > 1e-12 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", grazing)
	}

	// Reflectance grows monotonically toward grazing angles
	prev := Reflectance(1.0, 1.0/1.5)
	for cos := 0.9; cos >= 0; cos -= 0.1 {
		r := Reflectance(cos, 1.0/1.5)
		if r < prev {
			t.Errorf("Reflectance should not decrease toward grazing: R(%f)=%f < %f", cos, r, prev)
		}
		prev = r
	}
}
