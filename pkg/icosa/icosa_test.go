package icosa

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func flatUV(p mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{p.X(), p.Y()}
}

func allIndices(s *Sphere) []uint32 {
	var indices []uint32
	for face := 0; face < 20; face++ {
		indices = s.AppendIndices(face, indices)
	}
	return indices
}

func TestNew_PointAndIndexCounts(t *testing.T) {
	for level := 0; level <= 4; level++ {
		s := New(level, flatUV)

		n := level + 1
		wantPoints := 10*n*n + 2
		if got := len(s.RawPoints()); got != wantPoints {
			t.Errorf("level %d: %d points, want %d", level, got, wantPoints)
		}
		if got := len(s.RawData()); got != wantPoints {
			t.Errorf("level %d: %d data entries, want %d", level, got, wantPoints)
		}
		if got := s.IndicesPerMainTriangle(); got != 3*n*n {
			t.Errorf("level %d: %d indices per main triangle, want %d", level, got, 3*n*n)
		}
		if got := len(allIndices(s)); got != 60*n*n {
			t.Errorf("level %d: %d total indices, want %d", level, got, 60*n*n)
		}
	}
}

func TestNew_PointsOnUnitSphere(t *testing.T) {
	s := New(3, flatUV)
	for i, p := range s.RawPoints() {
		if mag := p.Len(); mag < 0.99999 || mag > 1.00001 {
			t.Errorf("point %d has magnitude %f, want 1", i, mag)
		}
	}
}

func TestNew_SharedEdgeVertices(t *testing.T) {
	s := New(2, flatUV)
	points := s.RawPoints()
	indices := allIndices(s)

	used := make(map[uint32]bool)
	for _, idx := range indices {
		if int(idx) >= len(points) {
			t.Fatalf("index %d out of range for %d points", idx, len(points))
		}
		used[idx] = true
	}

	// Edge points are shared between neighboring faces, so every
	// generated point must be referenced and none duplicated.
	if len(used) != len(points) {
		t.Errorf("%d distinct indices for %d points", len(used), len(points))
	}
}

func TestNew_UVCallbackPerPoint(t *testing.T) {
	calls := 0
	s := New(2, func(p mgl32.Vec3) mgl32.Vec2 {
		calls++
		return mgl32.Vec2{p.Z(), p.Z()}
	})

	if calls != len(s.RawPoints()) {
		t.Errorf("callback ran %d times for %d points", calls, len(s.RawPoints()))
	}
	for i, p := range s.RawPoints() {
		want := mgl32.Vec2{p.Z(), p.Z()}
		if s.RawData()[i] != want {
			t.Errorf("data %d = %v, want %v", i, s.RawData()[i], want)
		}
	}
}

func TestAppendIndices_OutwardWinding(t *testing.T) {
	for _, level := range []int{0, 2} {
		s := New(level, flatUV)
		points := s.RawPoints()
		indices := allIndices(s)

		for tri := 0; tri < len(indices)/3; tri++ {
			a := points[indices[tri*3]]
			b := points[indices[tri*3+1]]
			c := points[indices[tri*3+2]]

			normal := b.Sub(a).Cross(c.Sub(a))
			centroid := a.Add(b).Add(c)
			if normal.Dot(centroid) <= 0 {
				t.Errorf("level %d triangle %d winds inward", level, tri)
			}
		}
	}
}

func TestAppendIndices_Deterministic(t *testing.T) {
	a := allIndices(New(2, flatUV))
	b := allIndices(New(2, flatUV))

	if len(a) != len(b) {
		t.Fatalf("index counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d differs: %d vs %d", i, a[i], b[i])
			break
		}
	}
}

func TestAppendIndices_AppendsToExisting(t *testing.T) {
	s := New(0, flatUV)

	prefix := []uint32{7, 8, 9}
	out := s.AppendIndices(0, append([]uint32(nil), prefix...))
	if len(out) != len(prefix)+s.IndicesPerMainTriangle() {
		t.Fatalf("appended block has length %d, want %d", len(out)-len(prefix), s.IndicesPerMainTriangle())
	}
	for i, want := range prefix {
		if out[i] != want {
			t.Errorf("existing prefix overwritten at %d: got %d, want %d", i, out[i], want)
		}
	}
}
