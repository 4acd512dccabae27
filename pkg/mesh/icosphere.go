package mesh

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/XenosGod/bevy/pkg/icosa"
)

// MaxIcosphereVertices is the vertex budget for icosphere generation:
// indices are 32-bit but the budget stays friendly to 16-bit index
// buffers.
const MaxIcosphereVertices = 65535

// MaxIcosphereSubdivisions is the highest accepted subdivision level.
const MaxIcosphereSubdivisions = 79

// Subdivision is a subdivided icosahedron: raw points on the unit
// sphere, per-point UV data, and triangle indices retrievable per
// base face (0..19).
type Subdivision interface {
	RawPoints() []mgl32.Vec3
	RawData() []mgl32.Vec2
	IndicesPerMainTriangle() int
	AppendIndices(face int, dst []uint32) []uint32
}

// SubdivideFunc produces a Subdivision for the given level, calling
// uv once per generated unit-sphere point.
type SubdivideFunc func(level int, uv func(mgl32.Vec3) mgl32.Vec2) Subdivision

// Icosphere is a sphere approximated by recursively subdividing an
// icosahedron, with spherical UV projection.
type Icosphere struct {
	Radius       float32
	Subdivisions int

	// Subdivide supplies the subdivision engine; nil selects the
	// built-in icosa implementation.
	Subdivide SubdivideFunc
}

// NewIcosphere returns an Icosphere with the given radius and the
// default of 5 subdivisions.
func NewIcosphere(radius float32) Icosphere {
	return Icosphere{Radius: radius, Subdivisions: 5}
}

// TooManyVerticesError reports a subdivision level whose projected
// vertex count exceeds the index budget. Callers can recover by
// clamping the level and retrying.
type TooManyVerticesError struct {
	Subdivisions int
	Projected    int
	Limit        int
}

func (e *TooManyVerticesError) Error() string {
	return fmt.Sprintf("cannot create an icosphere of %d subdivisions: %d vertices would be generated (limited to %d vertices or %d subdivisions)",
		e.Subdivisions, e.Projected, e.Limit, MaxIcosphereSubdivisions)
}

// MeshData builds the sphere mesh. Normals are the raw unit-sphere
// points, which equal the normalized positions. The spherical UV
// projection distorts near the poles and leaves a seam at the azimuth
// wrap; v spans [-0.5, 0.5].
func (s Icosphere) MeshData() (*Data, error) {
	if s.Subdivisions >= 80 {
		// https://oeis.org/A005901
		next := s.Subdivisions + 1
		return nil, &TooManyVerticesError{
			Subdivisions: s.Subdivisions,
			Projected:    next*next*10 + 2,
			Limit:        MaxIcosphereVertices,
		}
	}

	subdivide := s.Subdivide
	if subdivide == nil {
		subdivide = func(level int, uv func(mgl32.Vec3) mgl32.Vec2) Subdivision {
			return icosa.New(level, uv)
		}
	}

	generated := subdivide(s.Subdivisions, func(p mgl32.Vec3) mgl32.Vec2 {
		inclination := float32(gomath.Acos(float64(p.Z())))
		azimuth := float32(gomath.Atan2(float64(p.Y()), float64(p.X())))
		u := 1 - inclination/gomath.Pi
		v := azimuth / gomath.Pi * 0.5
		return mgl32.Vec2{u, v}
	})

	raw := generated.RawPoints()
	d := &Data{
		Topology:  TriangleList,
		Positions: make([]mgl32.Vec3, len(raw)),
		Normals:   make([]mgl32.Vec3, len(raw)),
		UVs:       append([]mgl32.Vec2(nil), generated.RawData()...),
	}
	for i, p := range raw {
		d.Positions[i] = p.Mul(s.Radius)
		d.Normals[i] = p
	}

	indices := make([]uint32, 0, generated.IndicesPerMainTriangle()*20)
	for face := 0; face < 20; face++ {
		indices = generated.AppendIndices(face, indices)
	}
	d.Indices = indices
	return d, nil
}
