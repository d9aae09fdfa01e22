// Package meshio loads triangle meshes from Wavefront OBJ and glTF
// files into flat vertex-position slices, three vertices per triangle.
package meshio

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"lumentrace/pkg/core"
)

// ReadOBJ parses a Wavefront OBJ file, recognizing only "v x y z"
// vertex directives and "f a/... b/... c/..." triangular face
// directives (only the vertex index before the first slash is used).
// Comments and unknown directives are skipped. A missing or
// unreadable file yields an empty, non-nil slice rather than an error.
func ReadOBJ(path string) []core.Vec3 {
	f, err := os.Open(path)
	if err != nil {
		return []core.Vec3{}
	}
	defer f.Close()

	var vertices []core.Vec3
	var triangles []core.Vec3

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			vertices = append(vertices, core.NewVec3(x, y, z))

		case "f":
			if len(fields) < 4 {
				continue
			}
			for _, tok := range fields[1:4] {
				idx := faceVertexIndex(tok)
				if idx < 1 || idx > len(vertices) {
					continue
				}
				triangles = append(triangles, vertices[idx-1])
			}
		}
	}

	if triangles == nil {
		return []core.Vec3{}
	}
	return triangles
}

// faceVertexIndex extracts the 1-based vertex index from a face token
// like "3", "3/1", or "3/1/2".
func faceVertexIndex(tok string) int {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	return n
}
