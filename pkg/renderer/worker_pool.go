package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// RowTask represents a single scanline rendering task for the worker pool
type RowTask struct {
	Row    int        // Framebuffer row index (top-left origin)
	Random *rand.Rand // Row-specific random generator for deterministic results
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row     int
	Samples int // Total samples taken across the row
}

// RowRenderer renders one scanline task and reports its sample count
type RowRenderer func(task RowTask) RowResult

// WorkerPool manages parallel scanline rendering. Each row writes a
// disjoint slice of the framebuffer, so workers need no locks.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	render      RowRenderer
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive worker count uses the number of CPUs.
func NewWorkerPool(numWorkers, queueSize int, render RowRenderer) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, queueSize),
		resultQueue: make(chan RowResult, queueSize),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- wp.render(task)
	}
}
