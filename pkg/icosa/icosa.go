// Package icosa subdivides the faces of a regular icosahedron into
// points on the unit sphere. Points on shared edges are generated
// once and referenced by both neighboring faces, so a subdivision
// level of n yields exactly 10*(n+1)^2 + 2 points.
package icosa

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// base icosahedron: corners of three orthogonal golden rectangles,
// projected onto the unit sphere.
var basePoints [12]mgl32.Vec3

func init() {
	t := float32((1 + gomath.Sqrt(5)) / 2)
	raw := [12]mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i, p := range raw {
		basePoints[i] = p.Normalize()
	}
}

// baseFaces lists the 20 faces wound counter-clockwise when seen from
// outside the sphere.
var baseFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// Sphere is an icosahedron whose faces have been subdivided a fixed
// number of times. It is immutable once built.
type Sphere struct {
	subdivisions int
	points       []mgl32.Vec3
	data         []mgl32.Vec2

	// faces holds one triangular lattice of point indices per base
	// face: row r contains r+1 entries, apex first.
	faces [20][][]uint32
}

// New subdivides each icosahedron face level times. Each face edge is
// split into level+1 segments and every generated point is placed on
// the unit sphere by spherical interpolation. The uv callback runs
// once per point, in generation order: the 12 base corners first,
// then edge points, then face interior points. Level 0 is the bare
// icosahedron.
func New(level int, uv func(mgl32.Vec3) mgl32.Vec2) *Sphere {
	s := &Sphere{subdivisions: level}

	addPoint := func(p mgl32.Vec3) uint32 {
		idx := uint32(len(s.points))
		s.points = append(s.points, p)
		s.data = append(s.data, uv(p))
		return idx
	}
	for _, p := range basePoints {
		addPoint(p)
	}

	// Interior points of each of the 30 edges, stored once walking
	// from the lower corner index to the higher.
	type edgeKey struct{ a, b int }
	edges := make(map[edgeKey]uint32, 30)
	edgeStart := func(a, b int) uint32 {
		if a > b {
			a, b = b, a
		}
		key := edgeKey{a, b}
		start, ok := edges[key]
		if !ok {
			start = uint32(len(s.points))
			for i := 1; i <= level; i++ {
				frac := float32(i) / float32(level+1)
				addPoint(slerp(basePoints[a], basePoints[b], frac))
			}
			edges[key] = start
		}
		return start
	}
	// edgePoint returns the i-th interior point (1..level) walking
	// the edge from corner a to corner b.
	edgePoint := func(a, b, i int) uint32 {
		start := edgeStart(a, b)
		if a < b {
			return start + uint32(i-1)
		}
		return start + uint32(level-i)
	}

	for f, face := range baseFaces {
		c0, c1, c2 := face[0], face[1], face[2]
		lattice := make([][]uint32, level+2)
		lattice[0] = []uint32{uint32(c0)}
		for r := 1; r <= level; r++ {
			row := make([]uint32, r+1)
			row[0] = edgePoint(c0, c1, r)
			row[r] = edgePoint(c0, c2, r)
			left := s.points[row[0]]
			right := s.points[row[r]]
			for c := 1; c < r; c++ {
				row[c] = addPoint(slerp(left, right, float32(c)/float32(r)))
			}
			lattice[r] = row
		}
		bottom := make([]uint32, level+2)
		bottom[0] = uint32(c1)
		bottom[level+1] = uint32(c2)
		for i := 1; i <= level; i++ {
			bottom[i] = edgePoint(c1, c2, i)
		}
		lattice[level+1] = bottom
		s.faces[f] = lattice
	}
	return s
}

// Subdivisions returns the subdivision level the sphere was built
// with.
func (s *Sphere) Subdivisions() int {
	return s.subdivisions
}

// RawPoints returns all generated points on the unit sphere. The
// caller must not modify the slice.
func (s *Sphere) RawPoints() []mgl32.Vec3 {
	return s.points
}

// RawData returns the uv callback output for every point, in the same
// order as RawPoints.
func (s *Sphere) RawData() []mgl32.Vec2 {
	return s.data
}

// IndicesPerMainTriangle reports how many indices each base face
// contributes.
func (s *Sphere) IndicesPerMainTriangle() int {
	n := s.subdivisions + 1
	return 3 * n * n
}

// AppendIndices appends the triangle indices of one base face (0..19)
// to dst and returns the extended slice. Triangles are emitted row by
// row from the apex, alternating upward and downward triangles, and
// keep the winding of the base face.
func (s *Sphere) AppendIndices(face int, dst []uint32) []uint32 {
	lattice := s.faces[face]
	for r := 0; r+1 < len(lattice); r++ {
		top, bottom := lattice[r], lattice[r+1]
		for c := 0; c < len(top); c++ {
			dst = append(dst, top[c], bottom[c], bottom[c+1])
			if c+1 < len(top) {
				dst = append(dst, top[c], bottom[c+1], top[c+1])
			}
		}
	}
	return dst
}

// slerp interpolates between two unit vectors along the great-circle
// arc joining them, keeping the result on the unit sphere.
func slerp(a, b mgl32.Vec3, frac float32) mgl32.Vec3 {
	dot := mgl32.Clamp(a.Dot(b), -1, 1)
	omega := float32(gomath.Acos(float64(dot)))
	sinOmega := float32(gomath.Sin(float64(omega)))
	if sinOmega < 1e-6 {
		// Near-parallel endpoints: normalized lerp is stable here.
		return a.Mul(1 - frac).Add(b.Mul(frac)).Normalize()
	}
	wa := float32(gomath.Sin(float64((1-frac)*omega))) / sinOmega
	wb := float32(gomath.Sin(float64(frac*omega))) / sinOmega
	return a.Mul(wa).Add(b.Mul(wb))
}
