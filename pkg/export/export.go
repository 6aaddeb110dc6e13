package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrUnsupportedFormat is returned for file extensions imaging cannot encode
var ErrUnsupportedFormat = errors.New("unsupported image format")

// LogFileName is the render log appended to in the output directory
const LogFileName = "render-logs.log"

// Record describes one finished render for the file name, log and caption
type Record struct {
	Start       time.Time
	Duration    time.Duration
	Width       int
	Height      int
	AspectRatio float64
	FOV         float64
	Workers     int
	Reflection  float64
	MaxDepth    int
	Camera      string
	Light       string
	Objects     []string
}

// NewRecord collects the render settings of s and the stats of its render
func NewRecord(s *scene.Scene, stats renderer.RenderStats, start time.Time) Record {
	rec := Record{
		Start:      start,
		Duration:   stats.Duration,
		Width:      s.Config.Width,
		Height:     s.Config.Height,
		Workers:    stats.Workers,
		Reflection: s.Config.Reflection,
		MaxDepth:   s.Config.MaxDepth,
	}
	if s.Camera != nil {
		rec.AspectRatio = s.Camera.AspectRatio
		rec.FOV = s.Camera.FOV
		rec.Camera = s.Camera.String()
	}
	if s.Light != nil {
		rec.Light = s.Light.String()
	}
	for _, p := range s.Primitives {
		rec.Objects = append(rec.Objects, p.String())
	}
	return rec
}

// Options controls what Export writes
type Options struct {
	Dir       string // Output directory, created if missing
	Format    string // File extension without the dot
	Quality   int    // JPEG quality
	Thumbnail int    // Thumbnail width, 0 for none
	Label     bool   // Draw the caption onto the image
}

// Result lists the files Export wrote
type Result struct {
	ImagePath     string
	ThumbnailPath string
	LogPath       string
}

// Files returns the written image paths
func (r Result) Files() []string {
	files := []string{r.ImagePath}
	if r.ThumbnailPath != "" {
		files = append(files, r.ThumbnailPath)
	}
	return files
}

// FileName returns the base name for a render started at start:
// <Y-M-D>_<Y:H:M>-fov<fov>-res<W>x<H>.<ext>, numbers unpadded
func FileName(start time.Time, fov float64, width, height int, ext string) string {
	return fmt.Sprintf("%d-%d-%d_%d:%d:%d-fov%g-res%dx%d.%s",
		start.Year(), int(start.Month()), start.Day(),
		start.Year(), start.Hour(), start.Minute(),
		fov, width, height, strings.TrimPrefix(ext, "."))
}

// Export writes img, an optional thumbnail and a render log entry to opts.Dir
func Export(img image.Image, rec Record, opts Options) (Result, error) {
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	if opts.Label {
		img = Label(img, Caption(rec))
	}

	name := FileName(rec.Start, rec.FOV, rec.Width, rec.Height, opts.Format)
	result := Result{
		ImagePath: filepath.Join(opts.Dir, name),
		LogPath:   filepath.Join(opts.Dir, LogFileName),
	}

	if err := Save(img, result.ImagePath, opts.Quality); err != nil {
		return Result{}, err
	}

	if opts.Thumbnail > 0 {
		ext := filepath.Ext(name)
		result.ThumbnailPath = filepath.Join(opts.Dir, strings.TrimSuffix(name, ext)+"-thumb"+ext)
		if err := Save(Thumbnail(img, opts.Thumbnail), result.ThumbnailPath, opts.Quality); err != nil {
			return Result{}, err
		}
	}

	if err := AppendLog(result.LogPath, result.ImagePath, rec); err != nil {
		return Result{}, err
	}

	return result, nil
}

// Save encodes img to path in the format its extension names.
// quality applies to JPEG only.
func Save(img image.Image, path string, quality int) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes img to w as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
