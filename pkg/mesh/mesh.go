// Package mesh builds procedural primitive meshes — boxes, quads,
// ground planes, and subdivided icospheres — as vertex attribute
// buffers plus a triangle index buffer, ready for a rendering
// pipeline to consume.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PrimitiveTopology describes how the entries of an index buffer are
// grouped into primitives.
type PrimitiveTopology int

const (
	PointList PrimitiveTopology = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

// String returns the topology name.
func (t PrimitiveTopology) String() string {
	switch t {
	case PointList:
		return "point-list"
	case LineList:
		return "line-list"
	case LineStrip:
		return "line-strip"
	case TriangleList:
		return "triangle-list"
	case TriangleStrip:
		return "triangle-strip"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// Data holds the complete mesh attribute and index buffers ready for
// GPU upload. All generators in this package produce triangle lists
// with positions, normals, and one UV channel of equal length.
type Data struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
	Topology  PrimitiveTopology
}

// Validate checks the buffer invariants: every attribute buffer has
// the same length, every index addresses a valid vertex, and a
// triangle list has a multiple of three indices.
func (d *Data) Validate() error {
	if len(d.Normals) != len(d.Positions) {
		return fmt.Errorf("normal count %d does not match position count %d", len(d.Normals), len(d.Positions))
	}
	if len(d.UVs) != len(d.Positions) {
		return fmt.Errorf("uv count %d does not match position count %d", len(d.UVs), len(d.Positions))
	}
	if d.Topology == TriangleList && len(d.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= len(d.Positions) {
			return fmt.Errorf("index %d at offset %d out of range for %d vertices", idx, i, len(d.Positions))
		}
	}
	return nil
}

// TriangleCount returns the number of triangles described by the
// index buffer.
func (d *Data) TriangleCount() int {
	return len(d.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh yields zero vectors.
func (d *Data) Bounds() (min, max mgl32.Vec3) {
	if len(d.Positions) == 0 {
		return
	}
	min, max = d.Positions[0], d.Positions[0]
	for _, p := range d.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return
}
