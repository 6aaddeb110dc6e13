package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 100, A: 255})
		}
	}
	return img
}

func testRecord() Record {
	return Record{
		Start:       time.Date(2024, time.March, 5, 9, 7, 0, 0, time.UTC),
		Duration:    1500 * time.Millisecond,
		Width:       20,
		Height:      10,
		AspectRatio: 2,
		FOV:         20,
		Workers:     4,
		Reflection:  0.3,
		MaxDepth:    3,
		Camera:      "Camera(...)",
		Light:       "PointLight(...)",
		Objects:     []string{"Sphere(a)", "Plane(b)"},
	}
}

func TestFileName(t *testing.T) {
	rec := testRecord()
	got := FileName(rec.Start, rec.FOV, rec.Width, rec.Height, ".jpg")
	expected := "2024-3-5_2024:9:7-fov20-res20x10.jpg"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestExport_WritesImageThumbnailAndLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "renders")
	rec := testRecord()

	result, err := Export(testImage(20, 10), rec, Options{
		Dir:       dir,
		Format:    "png",
		Quality:   75,
		Thumbnail: 10,
		Label:     true,
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	img, err := imaging.Open(result.ImagePath)
	if err != nil {
		t.Fatalf("Opening exported image: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("Expected 20x10 image, got %v", img.Bounds())
	}

	thumb, err := imaging.Open(result.ThumbnailPath)
	if err != nil {
		t.Fatalf("Opening thumbnail: %v", err)
	}
	if thumb.Bounds().Dx() != 10 || thumb.Bounds().Dy() != 5 {
		t.Errorf("Expected 10x5 thumbnail, got %v", thumb.Bounds())
	}

	if len(result.Files()) != 2 {
		t.Errorf("Expected image and thumbnail, got %v", result.Files())
	}

	// A second export appends to the same log
	if _, err := Export(testImage(20, 10), rec, Options{Dir: dir, Format: "jpg", Quality: 90}); err != nil {
		t.Fatalf("Second export failed: %v", err)
	}
	data, err := os.ReadFile(result.LogPath)
	if err != nil {
		t.Fatalf("Reading log: %v", err)
	}
	if n := strings.Count(string(data), "image: "); n != 2 {
		t.Errorf("Expected 2 log entries, got %d", n)
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, err := Export(testImage(4, 4), testRecord(), Options{Dir: t.TempDir(), Format: "xyz", Quality: 75})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriteLog(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLog(&buf, "renders/x.png", testRecord()); err != nil {
		t.Fatalf("WriteLog failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"image: renders/x.png\n",
		"time: 1.5s\n",
		"resolution: 20 x 10 px\n",
		"aspect ratio: 2\n",
		"multi: 4\n",
		"reflection: 0.3\n",
		"max depth level: 3\n",
		"camera: Camera(...)\n",
		"light: PointLight(...)\n",
		"objects: [Sphere(a), Plane(b)]\n",
		strings.Repeat("# ", 20),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Log entry missing %q:\n%s", want, out)
		}
	}
}

func TestNewRecord(t *testing.T) {
	opts := scene.DefaultOptions()
	opts.Config.Width, opts.Config.Height = 16, 8
	s, err := scene.NewThreeSpheresScene(opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	start := time.Now()
	rec := NewRecord(s, renderer.RenderStats{Workers: 4, Duration: time.Second}, start)

	if rec.Width != 16 || rec.Height != 8 || rec.AspectRatio != 2 {
		t.Errorf("Unexpected size in record: %+v", rec)
	}
	if rec.FOV != 20 || rec.Workers != 4 || rec.Duration != time.Second {
		t.Errorf("Unexpected settings in record: %+v", rec)
	}
	if len(rec.Objects) != 5 {
		t.Errorf("Expected 5 objects, got %d", len(rec.Objects))
	}
	if rec.Camera == "" || rec.Light == "" {
		t.Error("Expected camera and light descriptions")
	}
}

func TestLabel_DrawsOnCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 40))
	labelled := Label(src, "hello")

	if labelled.Bounds() != src.Bounds() {
		t.Fatalf("Expected bounds %v, got %v", src.Bounds(), labelled.Bounds())
	}
	if src.RGBAAt(2, 38) != (color.RGBA{}) {
		t.Error("Source image should not be modified")
	}

	changed := false
	for y := 20; y < 40 && !changed; y++ {
		for x := 0; x < 200 && !changed; x++ {
			r, g, b, _ := labelled.At(x, y).RGBA()
			changed = r != 0 || g != 0 || b != 0
		}
	}
	if !changed {
		t.Error("Expected caption pixels along the bottom strip")
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, testImage(3, 2)); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decoding PNG: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 3x2, got %v", img.Bounds())
	}
}

// fakeS3 records PutObject calls
type fakeS3 struct {
	s3iface.S3API
	keys   []string
	bodies [][]byte
	types  []string
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.keys = append(f.keys, aws.StringValue(input.Key))
	f.bodies = append(f.bodies, body)
	f.types = append(f.types, aws.StringValue(input.ContentType))
	return &s3.PutObjectOutput{}, nil
}

func TestUploader_Upload(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "render.png")
	if err := os.WriteFile(file, []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("Writing file: %v", err)
	}

	client := &fakeS3{}
	uploader := NewUploader(client, "bucket", "renders/", nil)

	key, err := uploader.Upload(context.Background(), file)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if key != "renders/render.png" {
		t.Errorf("Expected key renders/render.png, got %q", key)
	}
	if string(client.bodies[0]) != "png-bytes" {
		t.Errorf("Unexpected body %q", client.bodies[0])
	}
	if client.types[0] != "image/png" {
		t.Errorf("Expected image/png, got %q", client.types[0])
	}
}

func TestUploader_UploadAllStopsOnError(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "render.jpg")
	if err := os.WriteFile(file, []byte("jpg"), 0644); err != nil {
		t.Fatalf("Writing file: %v", err)
	}

	failure := errors.New("access denied")
	uploader := NewUploader(&fakeS3{err: failure}, "bucket", "", nil)

	keys, err := uploader.UploadAll(context.Background(), []string{file, file})
	if !errors.Is(err, failure) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Expected no uploaded keys, got %v", keys)
	}
}

func TestUploader_MissingFile(t *testing.T) {
	uploader := NewUploader(&fakeS3{}, "bucket", "", nil)
	if _, err := uploader.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
