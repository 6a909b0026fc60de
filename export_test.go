package tin

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteOBJ_WritesVerticesAndFaces(t *testing.T) {
	m, err := NewMesh(constGrid{w: 4, h: 4})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "v ") {
		t.Error("expected at least one vertex line")
	}
	if !strings.Contains(out, "f ") {
		t.Error("expected at least one face line")
	}

	faceLines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "f ") {
			faceLines++
		}
	}
	if faceLines != m.TriangleCount() {
		t.Errorf("face line count = %d, want %d", faceLines, m.TriangleCount())
	}
}

func TestFloatInCircle_AgreesWithIntegerPredicateOnSimpleCase(t *testing.T) {
	if !FloatInCircle(0, 0, 0, 10, 10, 0, 9, 9) {
		t.Error("expected (9,9) inside circumcircle")
	}
	if FloatInCircle(0, 0, 0, 10, 10, 0, 100, 100) {
		t.Error("expected (100,100) outside circumcircle")
	}
}
