package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], ".env", os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders one image as configured by envFile, the environment and args
func run(args []string, envFile string, stdout io.Writer) error {
	settings, err := config.Load(args, envFile)
	if errors.Is(err, flag.ErrHelp) {
		printHelp(stdout)
		return err
	}
	if err != nil {
		return err
	}

	logger := renderer.NewSlogLogger(slog.New(slog.NewTextHandler(stdout, nil)))

	workers := config.WorkerCount(settings.Processes, settings.Width)
	opts, err := settings.SceneOptions(workers)
	if err != nil {
		return err
	}

	selectedScene, err := scene.Lookup(settings.Scene, opts)
	if err != nil {
		return err
	}
	logger.Printf("Using scene %s with %d primitives\n", settings.Scene, selectedScene.GetPrimitiveCount())

	startTime := time.Now()
	buffer, stats, err := renderer.Render(selectedScene, logger)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if !settings.Export {
		fmt.Fprintf(stdout, "Rendered %dx%d in %v (%.1f%% hit)\n",
			buffer.Width, buffer.Height, stats.Duration, stats.HitRatio()*100)
		return nil
	}

	result, err := export.Export(buffer.Image(), export.NewRecord(selectedScene, stats, startTime), export.Options{
		Dir:       settings.OutputDir,
		Format:    settings.Format,
		Quality:   settings.Quality,
		Thumbnail: settings.Thumbnail,
		Label:     settings.Label,
	})
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	logger.Printf("Render saved as %s\n", result.ImagePath)

	if settings.S3.Enabled() {
		if err := upload(settings.S3, result.Files(), logger); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Total time: %v\n", time.Since(startTime))
	return nil
}

func upload(settings config.S3Settings, files []string, logger core.Logger) error {
	uploader, err := export.NewS3Uploader(settings, logger)
	if err != nil {
		return fmt.Errorf("creating uploader: %w", err)
	}
	if _, err := uploader.UploadAll(context.Background(), files); err != nil {
		return fmt.Errorf("uploading: %w", err)
	}
	return nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	settings := config.Default()
	fs := config.NewFlagSet(&settings)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Every option can also be set as an environment variable, e.g. %s or in a .env file.\n",
		config.EnvKey("res"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-14s %s\n", info.ID, info.Description)
	}
}
