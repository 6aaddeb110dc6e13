package server

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	InShadow     bool                   `json:"inShadow"`
	Color        [3]int                 `json:"color"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorHex(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func solidInfo(s material.Solid) map[string]interface{} {
	return map[string]interface{}{
		"color":     colorHex(s.Color),
		"ambient":   s.Ambient,
		"diffuse":   s.Diffuse,
		"specular":  s.Specular,
		"shininess": s.Shininess,
	}
}

// extractMaterialInfo describes the material and the sub-material that applies at point
func extractMaterialInfo(mat material.Material, point core.Vec3) (string, map[string]interface{}) {
	switch m := mat.(type) {
	case material.Solid:
		return "solid", solidInfo(m)
	case *material.CheckerBoard:
		return "checkerboard", map[string]interface{}{
			"size":     m.Size,
			"first":    solidInfo(m.First),
			"second":   solidInfo(m.Second),
			"resolved": solidInfo(m.Resolve(point)),
		}
	default:
		return "unknown", map[string]interface{}{"description": mat.String()}
	}
}

// extractGeometryInfo describes the primitive's shape
func extractGeometryInfo(p geometry.Primitive) (string, map[string]interface{}) {
	switch g := p.(type) {
	case *geometry.Sphere:
		return "sphere", map[string]interface{}{
			"center": vecArray(g.Center),
			"radius": g.Radius,
		}
	case *geometry.Plane:
		return "plane", map[string]interface{}{
			"point":  vecArray(g.Point),
			"normal": vecArray(g.Normal),
		}
	case *geometry.Triangle:
		return "triangle", map[string]interface{}{
			"a": vecArray(g.A),
			"b": vecArray(g.B),
			"c": vecArray(g.C),
		}
	default:
		return "unknown", map[string]interface{}{"description": p.String()}
	}
}

// inspectPixel traces the primary ray of one pixel and reports what it hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	tracer := renderer.NewRayTracer(sceneObj)
	ray := sceneObj.Camera.RayFor(pixelX, pixelY)

	hpd, ok := tracer.Intersect(1, ray)
	if !ok {
		return InspectResponse{Hit: false}
	}

	geometryType, geometryProps := extractGeometryInfo(hpd.Primitive)
	materialType, materialProps := extractMaterialInfo(hpd.Primitive.Material(), hpd.Intersection())
	pixel := tracer.Compute(pixelX, pixelY)

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		MaterialType: materialType,
		Point:        vecArray(hpd.Intersection()),
		Normal:       vecArray(hpd.Normal()),
		Distance:     hpd.Distance,
		InShadow:     tracer.ObjectBetween(hpd),
		Color:        [3]int{pixel.Color.R, pixel.Color.G, pixel.Color.B},
		Properties: map[string]interface{}{
			"geometry": geometryProps,
			"material": materialProps,
		},
	}
}

func parseInspectRequest(values url.Values) (*RenderRequest, int, int, error) {
	req, err := parseRenderRequest(values)
	if err != nil {
		return nil, 0, 0, err
	}
	x, err := parseIntParam(values, "x", 0, 0, req.Width-1)
	if err != nil {
		return nil, 0, 0, err
	}
	y, err := parseIntParam(values, "y", 0, 0, req.Height-1)
	if err != nil {
		return nil, 0, 0, err
	}
	return req, x, y, nil
}

// handleInspect reports the primitive and shading of a single pixel
func (s *Server) handleInspect(c echo.Context) error {
	req, x, y, err := parseInspectRequest(c.QueryParams())
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

	return c.JSON(http.StatusOK, inspectPixel(sceneObj, x, y))
}
