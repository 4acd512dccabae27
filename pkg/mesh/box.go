package mesh

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned cuboid described by its bounds on each axis.
// Any finite bounds are accepted; zero or inverted extents produce
// degenerate geometry rather than an error.
type Box struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32
}

// NewBox returns a Box with the given edge lengths, centered at the
// origin.
func NewBox(xLength, yLength, zLength float32) Box {
	return Box{
		MinX: -xLength / 2, MaxX: xLength / 2,
		MinY: -yLength / 2, MaxY: yLength / 2,
		MinZ: -zLength / 2, MaxZ: zLength / 2,
	}
}

// Cube is a Box with the same edge length on every axis, centered at
// the origin.
type Cube struct {
	Size float32
}

// NewCube returns a Cube with the given edge length.
func NewCube(size float32) Cube {
	return Cube{Size: size}
}

// MeshData builds the cube as a box with equal half-extents.
func (c Cube) MeshData() (*Data, error) {
	return NewBox(c.Size, c.Size, c.Size).MeshData()
}

// MeshData builds the box as six independent quad faces. Corners are
// not shared between faces so each face keeps its own flat normal,
// giving hard edges.
func (b Box) MeshData() (*Data, error) {
	type vertex struct {
		pos  mgl32.Vec3
		norm mgl32.Vec3
		uv   mgl32.Vec2
	}
	vertices := [24]vertex{
		// Top (+Z)
		{mgl32.Vec3{b.MinX, b.MinY, b.MaxZ}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{b.MaxX, b.MinY, b.MaxZ}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{b.MaxX, b.MaxY, b.MaxZ}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{b.MinX, b.MaxY, b.MaxZ}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0, 1}},
		// Bottom (-Z)
		{mgl32.Vec3{b.MinX, b.MaxY, b.MinZ}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{b.MaxX, b.MaxY, b.MinZ}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{b.MaxX, b.MinY, b.MinZ}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{b.MinX, b.MinY, b.MinZ}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{1, 1}},
		// Right (+X)
		{mgl32.Vec3{b.MaxX, b.MinY, b.MinZ}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{b.MaxX, b.MaxY, b.MinZ}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{b.MaxX, b.MaxY, b.MaxZ}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{b.MaxX, b.MinY, b.MaxZ}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{0, 1}},
		// Left (-X)
		{mgl32.Vec3{b.MinX, b.MinY, b.MaxZ}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{b.MinX, b.MaxY, b.MaxZ}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{b.MinX, b.MaxY, b.MinZ}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{b.MinX, b.MinY, b.MinZ}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{1, 1}},
		// Front (+Y)
		{mgl32.Vec3{b.MaxX, b.MaxY, b.MinZ}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{b.MinX, b.MaxY, b.MinZ}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{b.MinX, b.MaxY, b.MaxZ}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{b.MaxX, b.MaxY, b.MaxZ}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 1}},
		// Back (-Y)
		{mgl32.Vec3{b.MaxX, b.MinY, b.MaxZ}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{b.MinX, b.MinY, b.MaxZ}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{b.MinX, b.MinY, b.MinZ}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{b.MaxX, b.MinY, b.MinZ}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, 1}},
	}

	d := &Data{
		Topology:  TriangleList,
		Positions: make([]mgl32.Vec3, 0, len(vertices)),
		Normals:   make([]mgl32.Vec3, 0, len(vertices)),
		UVs:       make([]mgl32.Vec2, 0, len(vertices)),
	}
	for _, v := range vertices {
		d.Positions = append(d.Positions, v.pos)
		d.Normals = append(d.Normals, v.norm)
		d.UVs = append(d.UVs, v.uv)
	}

	d.Indices = []uint32{
		0, 1, 2, 2, 3, 0, // top
		4, 5, 6, 6, 7, 4, // bottom
		8, 9, 10, 10, 11, 8, // right
		12, 13, 14, 14, 15, 12, // left
		16, 17, 18, 18, 19, 16, // front
		20, 21, 22, 22, 23, 20, // back
	}
	return d, nil
}
