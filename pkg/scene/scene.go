package scene

import (
	"github.com/sarahkittyy/saraytracer/pkg/core"
	"github.com/sarahkittyy/saraytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Shapes         []core.Shape
	TopColor       core.Vec3 // Background gradient color at the top
	BottomColor    core.Vec3 // Background gradient color at the bottom
	SamplingConfig renderer.SamplingConfig
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetShapes returns the objects in the scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}
