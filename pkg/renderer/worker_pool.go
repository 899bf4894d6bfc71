package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile  Tile
	Seed  int64       // Seed of the tile's private sampler
	Image *image.RGBA // Shared output image; tiles never overlap
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  tileStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(rt *Raytracer, numTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		raytracer:   rt,
		taskQueue:   make(chan TileTask, numTasks),   // Buffer for every tile
		resultQueue: make(chan TileResult, numTasks), // Buffer for every result
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		// Drain remaining tasks without rendering once cancelled
		if err := ctx.Err(); err != nil {
			wp.resultQueue <- TileResult{TileID: task.Tile.ID, Error: err}
			continue
		}

		sampler := core.NewSeededSampler(task.Seed)
		stats := wp.raytracer.RenderBounds(task.Tile.Bounds, task.Image, sampler)

		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Stats: stats}
	}
}
