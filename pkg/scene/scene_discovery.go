package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// DefaultSceneID names the scene used when none is requested
const DefaultSceneID = "three-spheres"

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type builder func(Options) (*Scene, error)

type registration struct {
	info  SceneInfo
	build builder
}

var registry = map[string]registration{
	"three-spheres": {
		info: SceneInfo{
			ID:          "three-spheres",
			DisplayName: "Three Spheres",
			Description: "Three spheres and a triangle above a checkerboard floor",
		},
		build: NewThreeSpheresScene,
	},
	"single-sphere": {
		info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One sphere in front of the camera, lit from above",
		},
		build: NewSingleSphereScene,
	},
}

// ListScenes returns all built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, r := range registry {
		scenes = append(scenes, r.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes
}

// Lookup builds the named scene. An empty name selects DefaultSceneID.
func Lookup(name string, opts Options) (*Scene, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	if id == "" || id == "default" {
		id = DefaultSceneID
	}

	r, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := r.build(opts)
	if err != nil {
		return nil, fmt.Errorf("building scene %s: %w", id, err)
	}
	return s, nil
}
