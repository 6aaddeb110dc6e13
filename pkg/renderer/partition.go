package renderer

import "fmt"

// ColumnRange is a half-open range of image columns [Start, End)
type ColumnRange struct {
	Start int
	End   int
}

// Width returns the number of columns in the range
func (r ColumnRange) Width() int {
	return r.End - r.Start
}

func (r ColumnRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Partition splits width columns into contiguous ranges, one per worker.
// Every range gets width/workers columns and the last absorbs the remainder.
// Fewer than one worker gives a single range; more workers than columns
// gives one range per column.
func Partition(width, workers int) []ColumnRange {
	if width <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > width {
		workers = width
	}

	partWidth := width / workers
	ranges := make([]ColumnRange, workers)
	for i := range ranges {
		ranges[i] = ColumnRange{Start: i * partWidth, End: (i + 1) * partWidth}
	}
	ranges[workers-1].End = width

	return ranges
}
