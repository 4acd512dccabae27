// meshtool builds a procedural primitive mesh and reports its
// attribute and index buffer statistics.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/XenosGod/bevy/internal/config"
	"github.com/XenosGod/bevy/internal/logger"
	"github.com/XenosGod/bevy/pkg/mesh"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	shape, err := shapeFromConfig(&cfg.Shape)
	if err != nil {
		logger.Error("invalid shape configuration", zap.Error(err))
		os.Exit(1)
	}

	data, err := mesh.Build(shape)
	if err != nil {
		var tooMany *mesh.TooManyVerticesError
		if errors.As(err, &tooMany) {
			logger.Error("subdivision level too high",
				zap.Int("subdivisions", tooMany.Subdivisions),
				zap.Int("projected_vertices", tooMany.Projected),
				zap.Int("vertex_limit", tooMany.Limit))
		} else {
			logger.Error("mesh generation failed", zap.Error(err))
		}
		os.Exit(1)
	}

	if err := data.Validate(); err != nil {
		logger.Error("mesh validation failed", zap.Error(err))
		os.Exit(1)
	}

	min, max := data.Bounds()
	logger.Info("mesh built",
		zap.String("shape", cfg.Shape.Kind),
		zap.String("topology", data.Topology.String()),
		zap.Int("vertices", len(data.Positions)),
		zap.Int("indices", len(data.Indices)),
		zap.Int("triangles", data.TriangleCount()),
		zap.Float32s("bounds_min", min[:]),
		zap.Float32s("bounds_max", max[:]))
}

// shapeFromConfig maps the shape section of the config onto a mesh
// descriptor.
func shapeFromConfig(sc *config.ShapeConfig) (mesh.Shape, error) {
	switch sc.Kind {
	case "cube":
		return mesh.NewCube(sc.Size), nil
	case "box":
		return mesh.NewBox(sc.XLength, sc.YLength, sc.ZLength), nil
	case "quad":
		q := mesh.NewQuad(mgl32.Vec2{sc.Width, sc.Height})
		q.Flip = sc.Flip
		return q, nil
	case "plane":
		return mesh.NewPlane(sc.Size), nil
	case "icosphere":
		return mesh.Icosphere{Radius: sc.Radius, Subdivisions: sc.Subdivisions}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", sc.Kind)
	}
}
