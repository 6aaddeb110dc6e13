package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string  // Built-in scene name
	Width      int     // Image width
	Height     int     // Image height
	Depth      int     // Maximum recursion depth
	Reflection float64 // Reflection weight
	Workers    int     // Requested workers, capped by the server
	Floor      string  // Floor material name
	Label      bool    // Draw the settings caption
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	defaults := scene.DefaultRenderConfig()
	req := &RenderRequest{
		Scene: values.Get("scene"),
		Floor: values.Get("floor"),
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", defaults.Width, minResolution, maxResolution); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", defaults.Height, minResolution, maxResolution); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", defaults.MaxDepth, 1, maxDepthLimit); err != nil {
		return nil, err
	}
	if req.Reflection, err = parseFloatParam(values, "reflection", defaults.Reflection, 0, 1); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(values, "workers", defaults.Workers, 0, maxWorkers); err != nil {
		return nil, err
	}
	if v := values.Get("label"); v != "" {
		if req.Label, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid label: %s", v)
		}
	}

	return req, nil
}

// createScene builds the requested scene with the request's overrides
func createScene(req *RenderRequest) (*scene.Scene, error) {
	floor, err := material.ParseFloor(req.Floor)
	if err != nil {
		return nil, err
	}

	opts := scene.DefaultOptions()
	opts.Config.Width = req.Width
	opts.Config.Height = req.Height
	opts.Config.MaxDepth = req.Depth
	opts.Config.Reflection = req.Reflection
	opts.Config.Workers = config.WorkerCount(req.Workers, req.Width)
	opts.Floor = floor

	return scene.Lookup(req.Scene, opts)
}

// isClientError reports errors caused by bad request values
func isClientError(err error) bool {
	return errors.Is(err, scene.ErrUnknownScene) ||
		errors.Is(err, material.ErrUnknownMaterial) ||
		errors.Is(err, scene.ErrInvalidConfig)
}

// handleRender renders a scene and returns it as a PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sceneObj, err := createScene(req)
	if err != nil {
		if isClientError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	renderID := fmt.Sprintf("render-%d", s.renderCount.Add(1))
	start := time.Now()

	buffer, stats, err := renderer.Render(sceneObj, NewWebLogger(renderID, s.console))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var img image.Image = buffer.Image()
	if req.Label {
		img = export.Label(img, export.Caption(export.NewRecord(sceneObj, stats, start)))
	}

	var buf bytes.Buffer
	if err := export.EncodePNG(&buf, img); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to encode image: " + err.Error()})
	}

	header := c.Response().Header()
	header.Set("X-Render-Id", renderID)
	header.Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	header.Set("X-Render-Workers", strconv.Itoa(stats.Workers))
	header.Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels))

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
