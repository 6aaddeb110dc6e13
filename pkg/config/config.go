package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidSetting wraps every malformed or out of range setting
var ErrInvalidSetting = errors.New("invalid setting")

// EnvPrefix is prepended to the upper-cased setting name to form its environment key
const EnvPrefix = "RT_"

// Settings holds everything the command line tools can configure
type Settings struct {
	Width          int
	Height         int
	Quality        int    // JPEG quality, 1-100
	OutputDir      string // Directory exported images and the render log go to
	Format         string // Export file extension: png, jpg, bmp, tif
	Processes      int    // Requested workers; below 2 renders sequentially
	MaxDepth       int
	Reflection     float64
	LightIntensity float64
	LightPosition  core.Vec3
	SphereColors   [3]string
	FloorMaterial  string
	Scene          string
	Export         bool
	Thumbnail      int  // Thumbnail width in pixels, 0 disables it
	Label          bool // Draw a caption onto the exported image
	S3             S3Settings
}

// S3Settings configures the optional upload of exported images
type S3Settings struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Enabled reports whether an upload target is configured
func (s S3Settings) Enabled() bool {
	return s.Bucket != ""
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		Width:          400,
		Height:         400,
		Quality:        75,
		OutputDir:      "renders",
		Format:         "jpg",
		Processes:      4,
		MaxDepth:       3,
		Reflection:     0.3,
		LightIntensity: 1,
		LightPosition:  core.NewVec3(75, 100, 20),
		SphereColors:   [3]string{"red", "green", "blue"},
		FloorMaterial:  "",
		Scene:          scene.DefaultSceneID,
		S3: S3Settings{
			Region: "us-east-1",
		},
	}
}

type option struct {
	name   string
	usage  string
	isBool bool
	set    func(s *Settings, value string) error
}

var options = []option{
	{name: "res", usage: "resolution as WIDTHxHEIGHT or WIDTH,HEIGHT", set: func(s *Settings, v string) error {
		w, h, err := parseResolution(v)
		s.Width, s.Height = w, h
		return err
	}},
	{name: "quality", usage: "JPEG quality (1-100); other formats ignore it", set: intSetter(func(s *Settings) *int { return &s.Quality })},
	{name: "dirout", usage: "output directory for exported images", set: func(s *Settings, v string) error {
		s.OutputDir = v
		return nil
	}},
	{name: "format", usage: "export format: png, jpg, bmp or tif", set: func(s *Settings, v string) error {
		s.Format = strings.ToLower(strings.TrimPrefix(v, "."))
		return nil
	}},
	{name: "processes", usage: "number of parallel workers (0 or 1 renders sequentially)", set: intSetter(func(s *Settings) *int { return &s.Processes })},
	{name: "rdepth", usage: "maximum recursion depth", set: intSetter(func(s *Settings) *int { return &s.MaxDepth })},
	{name: "reflection", usage: "weight of reflected light", set: floatSetter(func(s *Settings) *float64 { return &s.Reflection })},
	{name: "lightintensity", usage: "light intensity", set: floatSetter(func(s *Settings) *float64 { return &s.LightIntensity })},
	{name: "lightpos", usage: "light position as X,Y,Z", set: func(s *Settings, v string) error {
		p, err := parseVec3(v)
		s.LightPosition = p
		return err
	}},
	{name: "spherecolors", usage: "left, top and right sphere materials, comma separated", set: func(s *Settings, v string) error {
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return fmt.Errorf("expected 3 colours, got %d", len(parts))
		}
		for i, p := range parts {
			s.SphereColors[i] = strings.TrimSpace(p)
		}
		return nil
	}},
	{name: "floormat", usage: "floor material name, empty for the checkerboard", set: func(s *Settings, v string) error {
		s.FloorMaterial = v
		return nil
	}},
	{name: "scene", usage: "built-in scene to render", set: func(s *Settings, v string) error {
		s.Scene = v
		return nil
	}},
	{name: "export", usage: "write the image and render log to the output directory", isBool: true, set: boolSetter(func(s *Settings) *bool { return &s.Export })},
	{name: "thumb", usage: "also export a thumbnail of this width (0 disables)", set: intSetter(func(s *Settings) *int { return &s.Thumbnail })},
	{name: "label", usage: "draw a caption with the render settings", isBool: true, set: boolSetter(func(s *Settings) *bool { return &s.Label })},
	{name: "s3bucket", usage: "upload exported images to this S3 bucket", set: func(s *Settings, v string) error {
		s.S3.Bucket = v
		return nil
	}},
	{name: "s3region", usage: "S3 region", set: func(s *Settings, v string) error {
		s.S3.Region = v
		return nil
	}},
	{name: "s3endpoint", usage: "custom S3 endpoint", set: func(s *Settings, v string) error {
		s.S3.Endpoint = v
		return nil
	}},
}

// Secrets are read from the environment only
var secretOptions = []option{
	{name: "s3_access_key", set: func(s *Settings, v string) error {
		s.S3.AccessKey = v
		return nil
	}},
	{name: "s3_secret_key", set: func(s *Settings, v string) error {
		s.S3.SecretKey = v
		return nil
	}},
}

func intSetter(field func(*Settings) *int) func(*Settings, string) error {
	return func(s *Settings, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(s) = n
		return nil
	}
}

func floatSetter(field func(*Settings) *float64) func(*Settings, string) error {
	return func(s *Settings, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		*field(s) = f
		return nil
	}
}

func boolSetter(field func(*Settings) *bool) func(*Settings, string) error {
	return func(s *Settings, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(s) = b
		return nil
	}
}

// EnvKey returns the environment variable read for a setting name
func EnvKey(name string) string {
	return EnvPrefix + strings.ToUpper(name)
}

// Load builds settings from defaults, then envFile (if it exists), then the
// process environment, then args. Later sources win. An empty envFile skips
// the file.
func Load(args []string, envFile string) (Settings, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
		if values != nil {
			fileEnv = values
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	s := Default()
	if err := s.applyEnv(lookup); err != nil {
		return Settings{}, err
	}
	if err := s.applyFlags(args, io.Discard); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	for _, opt := range append(options, secretOptions...) {
		key := EnvKey(opt.name)
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if err := opt.set(s, v); err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidSetting, key, v, err)
		}
	}
	return nil
}

func (s *Settings) applyFlags(args []string, output io.Writer) error {
	fs := NewFlagSet(s)
	fs.SetOutput(output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}
	return nil
}

// NewFlagSet returns a flag set whose flags write into s
func NewFlagSet(s *Settings) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	for _, opt := range options {
		set := opt.set
		apply := func(v string) error { return set(s, v) }
		if opt.isBool {
			fs.BoolFunc(opt.name, opt.usage, apply)
		} else {
			fs.Func(opt.name, opt.usage, apply)
		}
	}
	return fs
}

// Validate checks ranges that parsing alone cannot catch
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidSetting, s.Width, s.Height)
	}
	if s.Quality < 1 || s.Quality > 100 {
		return fmt.Errorf("%w: quality %d outside 1-100", ErrInvalidSetting, s.Quality)
	}
	if s.Processes < 0 {
		return fmt.Errorf("%w: negative process count %d", ErrInvalidSetting, s.Processes)
	}
	if s.MaxDepth < 1 {
		return fmt.Errorf("%w: recursion depth %d, need at least 1", ErrInvalidSetting, s.MaxDepth)
	}
	if s.Thumbnail < 0 {
		return fmt.Errorf("%w: negative thumbnail width %d", ErrInvalidSetting, s.Thumbnail)
	}
	switch s.Format {
	case "png", "jpg", "jpeg", "bmp", "tif", "tiff":
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidSetting, s.Format)
	}
	if _, err := material.ParseFloor(s.FloorMaterial); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}
	for _, name := range s.SphereColors {
		if _, err := material.SolidByName(name); err != nil {
			return fmt.Errorf("%w: sphere colour: %w", ErrInvalidSetting, err)
		}
	}
	return nil
}

// SceneOptions converts the settings into options for the built-in scenes.
// workers is the already capped worker count.
func (s Settings) SceneOptions(workers int) (scene.Options, error) {
	floor, err := material.ParseFloor(s.FloorMaterial)
	if err != nil {
		return scene.Options{}, err
	}

	opts := scene.DefaultOptions()
	opts.Config.Width = s.Width
	opts.Config.Height = s.Height
	opts.Config.MaxDepth = s.MaxDepth
	opts.Config.Reflection = s.Reflection
	opts.Config.Workers = workers
	opts.LightPosition = s.LightPosition
	opts.LightIntensity = s.LightIntensity
	opts.SphereColors = s.SphereColors
	opts.Floor = floor
	return opts, nil
}

func parseResolution(v string) (int, int, error) {
	sep := "x"
	if strings.Contains(v, ",") {
		sep = ","
	}
	parts := strings.Split(strings.ToLower(v), sep)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("resolution %q is not WIDTHxHEIGHT", v)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func parseVec3(v string) (core.Vec3, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("vector %q is not X,Y,Z", v)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return core.Vec3{}, err
		}
		xyz[i] = f
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}
