package mesh

import "github.com/go-gl/mathgl/mgl32"

// Quad is a rectangle on the XY plane, centered at the origin.
// Flip reverses the corner order and mirrors the texture coordinates,
// producing a back-facing copy of the same rectangle.
type Quad struct {
	// Size is the full width and height of the rectangle.
	Size mgl32.Vec2
	Flip bool
}

// NewQuad returns a front-facing Quad of the given size.
func NewQuad(size mgl32.Vec2) Quad {
	return Quad{Size: size}
}

// NewFlippedQuad returns a Quad with reversed winding and mirrored
// texture coordinates.
func NewFlippedQuad(size mgl32.Vec2) Quad {
	return Quad{Size: size, Flip: true}
}

// MeshData builds the quad with a constant +Z normal.
func (q Quad) MeshData() (*Data, error) {
	extentX := q.Size.X() / 2
	extentY := q.Size.Y() / 2

	northWest := mgl32.Vec2{-extentX, extentY}
	northEast := mgl32.Vec2{extentX, extentY}
	southWest := mgl32.Vec2{-extentX, -extentY}
	southEast := mgl32.Vec2{extentX, -extentY}

	type vertex struct {
		pos mgl32.Vec2
		uv  mgl32.Vec2
	}
	var vertices [4]vertex
	if q.Flip {
		vertices = [4]vertex{
			{southEast, mgl32.Vec2{1, 1}},
			{northEast, mgl32.Vec2{1, 0}},
			{northWest, mgl32.Vec2{0, 0}},
			{southWest, mgl32.Vec2{0, 1}},
		}
	} else {
		vertices = [4]vertex{
			{southWest, mgl32.Vec2{0, 1}},
			{northWest, mgl32.Vec2{0, 0}},
			{northEast, mgl32.Vec2{1, 0}},
			{southEast, mgl32.Vec2{1, 1}},
		}
	}

	d := &Data{
		Topology:  TriangleList,
		Positions: make([]mgl32.Vec3, 0, 4),
		Normals:   make([]mgl32.Vec3, 0, 4),
		UVs:       make([]mgl32.Vec2, 0, 4),
		Indices:   []uint32{0, 2, 1, 0, 3, 2},
	}
	for _, v := range vertices {
		d.Positions = append(d.Positions, mgl32.Vec3{v.pos.X(), v.pos.Y(), 0})
		d.Normals = append(d.Normals, mgl32.Vec3{0, 0, 1})
		d.UVs = append(d.UVs, v.uv)
	}
	return d, nil
}
