package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SlogLogger implements core.Logger on top of a structured logger.
// Each Printf becomes one info record with the trailing newline trimmed.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger; a nil logger uses slog.Default()
func NewSlogLogger(logger *slog.Logger) core.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func (sl *SlogLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	sl.logger.Log(context.Background(), slog.LevelInfo, message)
}

// Render traces every pixel of the scene. With fewer than two workers the
// columns are computed sequentially; otherwise each column range runs on
// its own goroutine and the buffers are merged once all of them finished.
func Render(s *scene.Scene, logger core.Logger) (*PixelBuffer, RenderStats, error) {
	if s == nil {
		return nil, RenderStats{}, fmt.Errorf("nil scene: %w", scene.ErrNoCamera)
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	config := s.Config
	tracer := NewRayTracer(s)
	start := time.Now()

	lightType := "no"
	if s.Light != nil {
		lightType = string(s.Light.Type())
	}
	logger.Printf("Rendering %dx%d: %d primitives, %s light, max depth %d, %d workers\n",
		config.Width, config.Height, s.GetPrimitiveCount(), lightType, config.MaxDepth, config.Workers)

	var results []ColumnResult
	if config.Workers < 2 {
		results = renderSequential(tracer, config.Width, config.Height)
	} else {
		results = renderParallel(tracer, Partition(config.Width, config.Workers), config.Height)
	}

	// Results arrive in completion order; stats are reported in column order
	sort.Slice(results, func(i, j int) bool {
		return results[i].TaskID < results[j].TaskID
	})

	buffer := NewPixelBuffer(config.Width, config.Height)
	stats := RenderStats{Workers: len(results)}
	for _, result := range results {
		buffer.Merge(result.Pixels)
		stats.add(result.Stats)
	}
	stats.Duration = time.Since(start)

	logger.Printf("Render completed in %v (%d pixels, %.1f%% hit)\n",
		stats.Duration, stats.TotalPixels, stats.HitRatio()*100)

	return buffer, stats, nil
}

func renderSequential(tracer *RayTracer, width, height int) []ColumnResult {
	r := ColumnRange{Start: 0, End: width}
	pixels, stats := renderColumns(tracer, r, height)
	return []ColumnResult{{TaskID: 0, Pixels: pixels, Stats: stats}}
}

func renderParallel(tracer *RayTracer, ranges []ColumnRange, height int) []ColumnResult {
	pool := NewWorkerPool(tracer, height, len(ranges))
	pool.Start()

	for i, r := range ranges {
		pool.SubmitTask(ColumnTask{TaskID: i, Range: r})
	}
	pool.Stop()

	results := make([]ColumnResult, 0, pool.GetNumWorkers())
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results = append(results, result)
	}
	return results
}
