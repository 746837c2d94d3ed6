package geometry

import (
	"github.com/sarahkittyy/saraytracer/pkg/core"
)

// World is an aggregate of shapes tested exhaustively per ray
type World struct {
	Shapes []core.Shape
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{Shapes: make([]core.Shape, 0)}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...core.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Hit tests the ray against every shape and returns the nearest hit.
// The search interval shrinks to each accepted hit, so a farther surface
// can never override a nearer one regardless of shape order.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
