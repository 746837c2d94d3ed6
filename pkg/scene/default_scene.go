package scene

import (
	"math/rand"

	"github.com/sarahkittyy/saraytracer/pkg/core"
	"github.com/sarahkittyy/saraytracer/pkg/geometry"
	"github.com/sarahkittyy/saraytracer/pkg/material"
	"github.com/sarahkittyy/saraytracer/pkg/renderer"
)

// sceneSeed fixes the random sphere layout so repeated renders of the
// default scene are reproducible
const sceneSeed = 42

// NewDefaultScene creates the cover scene: a large ground sphere, a grid of
// small random spheres, and three large feature spheres
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	eye := core.NewVec3(13, 2, 3)

	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:      eye,
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.01,
		FocusDistance: eye.Length(),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]core.Shape, 0),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // white horizon
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}

	random := rand.New(rand.NewSource(sceneSeed))

	// Ground
	ground := material.NewLambertian(core.NewVec3(0.8, 0.5, 0.9))
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground))

	// Grid of small random spheres
	for x := -8; x < 8; x++ {
		for z := -8; z < 8; z++ {
			pos := core.NewVec3(
				random.Float64()*0.9+float64(x),
				0.2,
				random.Float64()*0.9+float64(z),
			)

			// Keep clear of the large metal sphere
			if pos.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			var mat core.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(randomColor(random))
			case chooseMat < 0.95:
				mat = material.NewMetal(
					randomColor(random).Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)),
					random.Float64()*0.3,
				)
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Shapes = append(s.Shapes, geometry.NewSphere(pos, 0.2, mat))
		}
	}

	// Three large feature spheres
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.8, 0.5, 0.2))),
	)

	return s
}

// randomColor returns a color with each channel uniform in [0,1)
func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
