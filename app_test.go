package main

import (
	"os"
	"testing"
)

// TestE2EBracketExample exercises the full pipeline: script source →
// engine → scene → meshes. This is the same path that the Wails Evaluate
// binding takes, but without the Wails runtime.
func TestE2EBracketExample(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/bracket.carve")
	if err != nil {
		t.Fatalf("failed to read bracket.carve: %v", err)
	}

	result := app.Evaluate(string(source))

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	if len(result.Meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(result.Meshes))
	}

	expected := map[string]bool{
		"bracket": false,
		"knob":    false,
	}

	for _, m := range result.Meshes {
		if _, ok := expected[m.Name]; !ok {
			t.Errorf("unexpected solid name: %q", m.Name)
			continue
		}
		expected[m.Name] = true

		if len(m.Vertices) == 0 {
			t.Errorf("solid %q: no vertices", m.Name)
		}
		if len(m.Normals) != len(m.Vertices) {
			t.Errorf("solid %q: %d normal floats for %d vertex floats", m.Name, len(m.Normals), len(m.Vertices))
		}
		if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
			t.Errorf("solid %q: bad index count %d", m.Name, len(m.Indices))
		}
		if m.Color == "" {
			t.Errorf("solid %q: no color assigned", m.Name)
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("missing mesh for solid %q", name)
		}
	}
}

// cubeBuffer returns a closed unit-size cube in the flat interchange
// format (12 triangles, 24 floats each), minimum corner at (ox, oy, oz).
// Normals and uvs are zero; the engine recomputes planes from positions.
func cubeBuffer(ox, oy, oz, size float32) []float32 {
	c := func(i, j, k float32) [3]float32 {
		return [3]float32{ox + i*size, oy + j*size, oz + k*size}
	}
	corners := [8][3]float32{
		c(0, 0, 0), c(1, 0, 0), c(1, 1, 0), c(0, 1, 0),
		c(0, 0, 1), c(1, 0, 1), c(1, 1, 1), c(0, 1, 1),
	}
	faces := [6][4]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{3, 7, 6, 2}, {0, 4, 7, 3}, {1, 2, 6, 5},
	}

	buf := make([]float32, 0, 12*24)
	vertex := func(p [3]float32) {
		buf = append(buf, p[0], p[1], p[2] /*normal*/, 0, 0, 0 /*uv*/, 0, 0)
	}
	for _, f := range faces {
		vertex(corners[f[0]])
		vertex(corners[f[1]])
		vertex(corners[f[2]])
		vertex(corners[f[0]])
		vertex(corners[f[2]])
		vertex(corners[f[3]])
	}
	return buf
}

// TestMeshBufferBindings drives the four flat-buffer boolean bindings
// directly, the way the frontend does for imported geometry.
func TestMeshBufferBindings(t *testing.T) {
	app := NewApp()

	t.Run("union of disjoint cubes keeps both", func(t *testing.T) {
		out, err := app.UnionMeshes(cubeBuffer(0, 0, 0, 1), cubeBuffer(10, 0, 0, 1))
		if err != nil {
			t.Fatalf("UnionMeshes: %v", err)
		}
		if len(out) != 2*12*24 {
			t.Errorf("union output has %d floats, want %d", len(out), 2*12*24)
		}
	})

	t.Run("difference of identical cubes is empty", func(t *testing.T) {
		out, err := app.DifferenceMeshes(cubeBuffer(0, 0, 0, 1), cubeBuffer(0, 0, 0, 1))
		if err != nil {
			t.Fatalf("DifferenceMeshes: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("difference output has %d floats, want 0", len(out))
		}
	})

	t.Run("intersection of distant cubes is empty", func(t *testing.T) {
		out, err := app.IntersectMeshes(cubeBuffer(0, 0, 0, 1), cubeBuffer(100, 50, 0, 1))
		if err != nil {
			t.Fatalf("IntersectMeshes: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("intersection output has %d floats, want 0", len(out))
		}
	})

	t.Run("invert reverses winding and normals", func(t *testing.T) {
		in := []float32{
			0, 0, 0 /**/, 0, 0, 1 /**/, 0, 0,
			1, 0, 0 /**/, 0, 0, 1 /**/, 1, 0,
			0, 1, 0 /**/, 0, 0, 1 /**/, 0, 1,
		}
		out, err := app.InvertMesh(in)
		if err != nil {
			t.Fatalf("InvertMesh: %v", err)
		}
		if len(out) != 24 {
			t.Fatalf("invert output has %d floats, want 24", len(out))
		}
		// Vertex 0 and vertex 2 swap; every normal is negated.
		if out[0] != 0 || out[1] != 1 {
			t.Errorf("first vertex = (%v, %v), want (0, 1) after winding flip", out[0], out[1])
		}
		if out[5] != -1 {
			t.Errorf("first vertex nz = %v, want -1 after normal flip", out[5])
		}
	})

	t.Run("malformed buffer length is rejected", func(t *testing.T) {
		if _, err := app.UnionMeshes([]float32{1, 2, 3}, nil); err == nil {
			t.Error("expected an error for a buffer that is not a multiple of 24 floats")
		}
	})
}
