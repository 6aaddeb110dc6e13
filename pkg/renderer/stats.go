package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit a primitive
	Workers     int           // Number of column ranges rendered
	Ranges      []RangeStats  // Per-range statistics in column order
	Duration    time.Duration // Wall time of the whole render
}

// RangeStats tracks the work done on one column range
type RangeStats struct {
	Range     ColumnRange
	Worker    int // ID of the worker that rendered the range
	Pixels    int
	HitPixels int
	Duration  time.Duration
}

// HitRatio returns the fraction of pixels that hit something
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// add folds one range's statistics into the totals
func (s *RenderStats) add(r RangeStats) {
	s.TotalPixels += r.Pixels
	s.HitPixels += r.HitPixels
	s.Ranges = append(s.Ranges, r)
}
