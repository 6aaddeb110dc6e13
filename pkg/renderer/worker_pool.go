package renderer

import (
	"sync"
	"time"
)

// ColumnTask asks a worker to render every row of a column range
type ColumnTask struct {
	TaskID int // Index of the range, for deterministic stats ordering
	Range  ColumnRange
}

// ColumnResult carries a worker's private pixel buffer back to the coordinator
type ColumnResult struct {
	TaskID int
	Pixels []Pixel
	Stats  RangeStats
}

// WorkerPool renders column ranges in parallel. Workers share the read-only
// ray tracer and never touch each other's pixels.
type WorkerPool struct {
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual column rendering tasks
type Worker struct {
	ID          int
	tracer      *RayTracer
	height      int
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// The queues hold one entry per worker so tasks can be submitted before Start.
func NewWorkerPool(tracer *RayTracer, height, numWorkers int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ColumnTask, numWorkers),
		resultQueue: make(chan ColumnResult, numWorkers),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			tracer:      tracer,
			height:      height,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for all submitted tasks to finish and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a column task to the worker pool
func (wp *WorkerPool) SubmitTask(task ColumnTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed column result
func (wp *WorkerPool) GetResult() (ColumnResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		pixels, stats := renderColumns(w.tracer, task.Range, w.height)
		stats.Worker = w.ID
		w.resultQueue <- ColumnResult{
			TaskID: task.TaskID,
			Pixels: pixels,
			Stats:  stats,
		}
	}
}

// renderColumns computes every pixel in the range into a new buffer
func renderColumns(tracer *RayTracer, r ColumnRange, height int) ([]Pixel, RangeStats) {
	start := time.Now()
	stats := RangeStats{Range: r}
	pixels := make([]Pixel, 0, r.Width()*height)

	for x := r.Start; x < r.End; x++ {
		for y := 0; y < height; y++ {
			c, hit := tracer.compute(x, y)
			pixels = append(pixels, Pixel{X: x, Y: y, Color: c})
			if hit {
				stats.HitPixels++
			}
		}
	}

	stats.Pixels = len(pixels)
	stats.Duration = time.Since(start)
	return pixels, stats
}
