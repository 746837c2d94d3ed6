package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/sarahkittyy/saraytracer/pkg/renderer"
	"github.com/sarahkittyy/saraytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'sphere'")
	width := flag.Int("width", 400, "Image width in pixels")
	samples := flag.Int("samples", 50, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of worker goroutines (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("o", "output.png", "Output PNG file")
	flag.Parse()

	var selectedScene *scene.Scene
	switch *sceneType {
	case "sphere":
		selectedScene = scene.NewSingleSphereScene()
	case "default":
		selectedScene = scene.NewDefaultScene()
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene = scene.NewDefaultScene()
	}

	height := int(float64(*width) / selectedScene.CameraConfig.AspectRatio)

	raytracer, err := renderer.NewRaytracer(selectedScene, *width, height)
	if err != nil {
		fmt.Printf("Error creating raytracer: %v\n", err)
		os.Exit(1)
	}

	config := renderer.MergeSamplingConfig(selectedScene.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
		Seed:            *seed,
	})
	if err := raytracer.SetSamplingConfig(config); err != nil {
		fmt.Printf("Error configuring raytracer: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	fb, stats := raytracer.Render()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%.1f samples/pixel)\n", renderTime, stats.AverageSamples)

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
