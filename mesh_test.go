package tin

import "testing"

type constGrid struct{ w, h int }

func (g constGrid) Width() int               { return g.w }
func (g constGrid) Height() int               { return g.h }
func (g constGrid) HeightAt(x, y int) float64 { return 0 }

func TestNewMesh_RejectsUndersizedGrid(t *testing.T) {
	if _, err := NewMesh(constGrid{w: 1, h: 5}); err != ErrGridTooSmall {
		t.Errorf("err = %v, want ErrGridTooSmall", err)
	}
	if _, err := NewMesh(constGrid{w: 5, h: 1}); err != ErrGridTooSmall {
		t.Errorf("err = %v, want ErrGridTooSmall", err)
	}
}

func TestNewMesh_SeedsFourCornersAndTwoTriangles(t *testing.T) {
	m, err := NewMesh(constGrid{w: 10, h: 10})
	if err != nil {
		t.Fatal(err)
	}

	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount() = %d, want 4", got)
	}
	if got := m.TriangleCount(); got != 2 {
		t.Errorf("TriangleCount() = %d, want 2", got)
	}

	coords := m.Coords()
	want := []int32{0, 0, 9, 0, 0, 9, 9, 9}
	if len(coords) != len(want) {
		t.Fatalf("Coords() length = %d, want %d", len(coords), len(want))
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Errorf("Coords()[%d] = %d, want %d", i, coords[i], want[i])
		}
	}
}

func TestAddTriangle_LinksTwins(t *testing.T) {
	m, err := NewMesh(constGrid{w: 4, h: 4})
	if err != nil {
		t.Fatal(err)
	}

	// The two seed triangles share an edge; verify the twin array agrees
	// with the half-edge addressed on each side.
	tris := m.Triangles()
	if len(tris) != 6 {
		t.Fatalf("Triangles() length = %d, want 6", len(tris))
	}

	for e, twin := range m.halfedges {
		if twin < 0 {
			continue
		}
		if m.halfedges[twin] != int32(e) {
			t.Errorf("halfedges[%d] = %d but halfedges[%d] = %d, want symmetric twin", e, twin, twin, m.halfedges[twin])
		}
	}
}

func TestUpdateTriangle_PreservesID(t *testing.T) {
	m, err := NewMesh(constGrid{w: 4, h: 4})
	if err != nil {
		t.Fatal(err)
	}

	e := int32(0)
	before := e / 3
	got := m.updateTriangle(e, 1, 2, 3, noHalfedge, noHalfedge, noHalfedge)
	if got/3 != before {
		t.Errorf("updateTriangle changed triangle id: got %d, want %d", got/3, before)
	}
	if m.triangles[e] != 1 || m.triangles[e+1] != 2 || m.triangles[e+2] != 3 {
		t.Errorf("triangle vertices = %v, want [1 2 3]", m.triangles[e:e+3])
	}
}
