package scene

import (
	"github.com/sarahkittyy/saraytracer/pkg/core"
	"github.com/sarahkittyy/saraytracer/pkg/geometry"
	"github.com/sarahkittyy/saraytracer/pkg/material"
	"github.com/sarahkittyy/saraytracer/pkg/renderer"
)

// NewSingleSphereScene creates a minimal diagnostic scene: one gray diffuse
// sphere in front of a pinhole camera looking down -z
func NewSingleSphereScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.0, // pinhole
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		},
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
