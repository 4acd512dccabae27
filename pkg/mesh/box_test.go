package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBox_MeshData_Counts(t *testing.T) {
	d, err := NewBox(1, 2, 3).MeshData()
	if err != nil {
		t.Fatalf("building box: %v", err)
	}
	checkInvariants(t, d)

	if len(d.Positions) != 24 {
		t.Errorf("expected 24 positions, got %d", len(d.Positions))
	}
	if len(d.Indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(d.Indices))
	}
}

func TestBox_MeshData_FaceNormals(t *testing.T) {
	d, err := NewBox(2, 2, 2).MeshData()
	if err != nil {
		t.Fatalf("building box: %v", err)
	}

	wantNormals := []mgl32.Vec3{
		{0, 0, 1},  // top
		{0, 0, -1}, // bottom
		{1, 0, 0},  // right
		{-1, 0, 0}, // left
		{0, 1, 0},  // front
		{0, -1, 0}, // back
	}
	for face, want := range wantNormals {
		for corner := 0; corner < 4; corner++ {
			got := d.Normals[face*4+corner]
			if !vec3Equal(got, want) {
				t.Errorf("face %d corner %d normal = %v, want %v", face, corner, got, want)
			}
		}
	}
}

func TestBox_MeshData_IndexPattern(t *testing.T) {
	d, err := NewBox(1, 1, 1).MeshData()
	if err != nil {
		t.Fatalf("building box: %v", err)
	}

	for face := 0; face < 6; face++ {
		base := uint32(face * 4)
		want := []uint32{base, base + 1, base + 2, base + 2, base + 3, base}
		got := d.Indices[face*6 : face*6+6]
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("face %d indices = %v, want %v", face, got, want)
				break
			}
		}
	}
}

func TestBox_MeshData_FaceUVs(t *testing.T) {
	d, err := NewBox(1, 1, 1).MeshData()
	if err != nil {
		t.Fatalf("building box: %v", err)
	}

	// Every face covers the full texture with each corner on a
	// distinct corner of UV space.
	for face := 0; face < 6; face++ {
		seen := make(map[mgl32.Vec2]bool)
		for corner := 0; corner < 4; corner++ {
			uv := d.UVs[face*4+corner]
			if (uv.X() != 0 && uv.X() != 1) || (uv.Y() != 0 && uv.Y() != 1) {
				t.Errorf("face %d corner %d uv = %v, want components 0 or 1", face, corner, uv)
			}
			seen[uv] = true
		}
		if len(seen) != 4 {
			t.Errorf("face %d has %d distinct uvs, want 4", face, len(seen))
		}
	}
}

func TestNewBox_CenteredBounds(t *testing.T) {
	b := NewBox(2, 4, 6)
	if b.MinX != -1 || b.MaxX != 1 || b.MinY != -2 || b.MaxY != 2 || b.MinZ != -3 || b.MaxZ != 3 {
		t.Errorf("bounds not centered on origin: %+v", b)
	}
}

func TestCube_MeshData_MatchesUniformBox(t *testing.T) {
	cube, err := NewCube(2).MeshData()
	if err != nil {
		t.Fatalf("building cube: %v", err)
	}
	box, err := NewBox(2, 2, 2).MeshData()
	if err != nil {
		t.Fatalf("building box: %v", err)
	}

	if len(cube.Positions) != len(box.Positions) {
		t.Fatalf("cube has %d positions, box has %d", len(cube.Positions), len(box.Positions))
	}
	for i := range cube.Positions {
		if !vec3Equal(cube.Positions[i], box.Positions[i]) {
			t.Errorf("position %d: cube %v, box %v", i, cube.Positions[i], box.Positions[i])
		}
	}
}

func TestBox_MeshData_DegenerateAccepted(t *testing.T) {
	// Zero and inverted extents are valid silent output, not errors.
	for _, b := range []Box{
		{},
		{MinX: 1, MaxX: -1, MinY: 1, MaxY: -1, MinZ: 1, MaxZ: -1},
	} {
		d, err := b.MeshData()
		if err != nil {
			t.Errorf("degenerate box %+v returned error: %v", b, err)
			continue
		}
		checkInvariants(t, d)
	}
}
