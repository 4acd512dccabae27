package mesh

import "github.com/go-gl/mathgl/mgl32"

// Plane is a square on the XZ plane at height zero, centered at the
// origin, with a single upward normal. Useful as a ground surface.
type Plane struct {
	// Size is the full side length of the square.
	Size float32
}

// NewPlane returns a Plane with the given side length.
func NewPlane(size float32) Plane {
	return Plane{Size: size}
}

// MeshData builds the plane with a constant +Y normal.
func (p Plane) MeshData() (*Data, error) {
	extent := p.Size / 2

	// Corners run east-south, east-north, west-north, west-south.
	type vertex struct {
		pos mgl32.Vec3
		uv  mgl32.Vec2
	}
	vertices := [4]vertex{
		{mgl32.Vec3{extent, 0, -extent}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{extent, 0, extent}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{-extent, 0, extent}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{-extent, 0, -extent}, mgl32.Vec2{0, 1}},
	}

	d := &Data{
		Topology:  TriangleList,
		Positions: make([]mgl32.Vec3, 0, 4),
		Normals:   make([]mgl32.Vec3, 0, 4),
		UVs:       make([]mgl32.Vec2, 0, 4),
		Indices:   []uint32{0, 2, 1, 0, 3, 2},
	}
	for _, v := range vertices {
		d.Positions = append(d.Positions, v.pos)
		d.Normals = append(d.Normals, mgl32.Vec3{0, 1, 0})
		d.UVs = append(d.UVs, v.uv)
	}
	return d, nil
}
