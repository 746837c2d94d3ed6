package renderer

import (
	"fmt"
	"math/rand"

	"github.com/sarahkittyy/saraytracer/pkg/core"
	"github.com/sarahkittyy/saraytracer/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for the per-row random generators
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// MergeSamplingConfig merges override values into a base config.
// Zero-valued override fields keep the base value.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	merged := base
	if override.SamplesPerPixel != 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		merged.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		merged.Seed = override.Seed
	}
	return merged
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []core.Shape
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	world  *geometry.World
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer with default sampling configuration.
// Dimensions must be positive; a malformed configuration fails here rather
// than producing a silently corrupt image.
func NewRaytracer(scene Scene, width, height int) (*Raytracer, error) {
	if scene == nil {
		return nil, fmt.Errorf("raytracer: scene must not be nil")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raytracer: invalid image dimensions %dx%d", width, height)
	}

	world := geometry.NewWorld()
	world.Add(scene.GetShapes()...)

	return &Raytracer{
		scene:  scene,
		world:  world,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
		logger: NewDefaultLogger(),
	}, nil
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) error {
	if config.SamplesPerPixel <= 0 {
		return fmt.Errorf("raytracer: samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return fmt.Errorf("raytracer: max depth must be positive, got %d", config.MaxDepth)
	}
	rt.config = config
	return nil
}

// SetLogger replaces the raytracer's logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Render traces the whole image across the worker pool and returns the
// finished framebuffer. Rows are partitioned across workers; each row's
// random generator is seeded from the base seed and the row index, so the
// output is identical for any worker count.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(rt.width, rt.height)

	pool := NewWorkerPool(rt.config.NumWorkers, rt.height, func(task RowTask) RowResult {
		return rt.renderRow(task, fb)
	})

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel with %d workers...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start()
	for j := 0; j < rt.height; j++ {
		pool.SubmitTask(RowTask{
			Row:    j,
			Random: rand.New(rand.NewSource(rt.config.Seed + int64(j))),
		})
	}

	stats := RenderStats{TotalPixels: rt.width * rt.height}
	for j := 0; j < rt.height; j++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Samples
	}
	pool.Stop()

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return fb, stats
}

// renderRow renders one scanline into the framebuffer. Row indices use the
// top-left origin; the camera's t axis points up, so the row is flipped
// when mapping to image-plane coordinates.
func (rt *Raytracer) renderRow(task RowTask, fb *Framebuffer) RowResult {
	camera := rt.scene.GetCamera()
	j := task.Row

	samples := 0
	for i := 0; i < rt.width; i++ {
		var ps PixelStats

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Normalized image-plane coordinates with antialiasing jitter
			s := (float64(i) + task.Random.Float64()) / float64(rt.width)
			t := (float64(rt.height-1-j) + task.Random.Float64()) / float64(rt.height)

			ray := camera.GetRay(s, t, task.Random)
			ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth, task.Random))
		}

		samples += ps.SampleCount

		// Average, gamma-correct (gamma = 2), clamp to [0,1]
		fb.Set(i, j, ps.Color().GammaCorrect(2.0).Clamp(0.0, 1.0))
	}

	return RowResult{Row: j, Samples: samples}
}
