package meshio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempOBJ(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestReadOBJParsesTriangle(t *testing.T) {
	path := writeTempOBJ(t, `# a comment
v 0 0 0
v 1 0 0
v 0 1 0

f 1 2 3
`)
	verts := ReadOBJ(path)
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(verts))
	}
	if verts[0].X != 0 || verts[1].X != 1 || verts[2].Y != 1 {
		t.Errorf("unexpected vertex positions: %+v", verts)
	}
}

func TestReadOBJHandlesSlashedFaceIndices(t *testing.T) {
	path := writeTempOBJ(t, `v 0 0 0
v 1 0 0
v 0 1 0
f 1/1/1 2/2/1 3/3/1
`)
	verts := ReadOBJ(path)
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(verts))
	}
}

func TestReadOBJIgnoresUnknownDirectives(t *testing.T) {
	path := writeTempOBJ(t, `mtllib foo.mtl
v 0 0 0
v 1 0 0
v 0 1 0
usemtl bar
f 1 2 3
`)
	verts := ReadOBJ(path)
	if len(verts) != 3 {
		t.Errorf("got %d vertices, want 3", len(verts))
	}
}

func TestReadOBJMissingFileReturnsEmptySlice(t *testing.T) {
	verts := ReadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	if verts == nil {
		t.Error("expected a non-nil empty slice, got nil")
	}
	if len(verts) != 0 {
		t.Errorf("got %d vertices, want 0", len(verts))
	}
}
