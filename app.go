package main

import (
	"context"
	"log"
	"os"

	"github.com/chazu/carve/pkg/csg"
	"github.com/chazu/carve/pkg/engine"
	"github.com/chazu/carve/pkg/kernel"
	"github.com/chazu/carve/pkg/kernel/bsp"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// colorPalette is a default palette used to assign distinct colors to
// scene solids.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	UVs      []float32 `json:"uvs"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes []MeshData      `json:"meshes"`
	Errors []EvalErrorData `json:"errors"`
}

// FileResult is returned by OpenFile with the file contents and path.
type FileResult struct {
	Content string `json:"content"`
	Path    string `json:"path"`
}

// NewApp creates a new App with an engine over the BSP kernel: mesh
// booleans are exact, so flat faces stay flat in the viewport. The sdfx
// kernel remains available behind the same kernel.Kernel interface for
// callers that prefer SDF-based evaluation.
func NewApp() *App {
	k := bsp.New()
	return &App{
		engine: engine.NewEngine(k),
		kernel: k,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes Carve script source and returns mesh data + errors.
// This is the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes: []MeshData{},
		Errors: []EvalErrorData{},
	}

	scene, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: err.Error(),
		})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	for i, ns := range scene.Solids {
		mesh, err := a.kernel.ToMesh(ns.Solid)
		if err != nil {
			log.Printf("ToMesh error for %q: %v", ns.Name, err)
			result.Errors = append(result.Errors, EvalErrorData{
				Message: "meshing failed for " + ns.Name + ": " + err.Error(),
			})
			return result
		}
		mesh.Name = ns.Name
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: mesh.Vertices,
			Normals:  mesh.Normals,
			UVs:      mesh.UVs,
			Indices:  mesh.Indices,
			Name:     mesh.Name,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}

	return result
}

// The four mesh-buffer bindings below operate directly on the flat
// interchange format (24 floats per triangle: position, normal, uv per
// vertex), bypassing the scripting layer. The frontend uses them for
// direct mesh-on-mesh edits of imported geometry.

// UnionMeshes returns the boolean union of two triangle buffers.
func (a *App) UnionMeshes(m1, m2 []float32) ([]float32, error) {
	return csg.UnionMesh(m1, m2)
}

// DifferenceMeshes returns m1 with the space covered by m2 removed.
func (a *App) DifferenceMeshes(m1, m2 []float32) ([]float32, error) {
	return csg.DifferenceMesh(m1, m2)
}

// IntersectMeshes returns the space covered by both m1 and m2.
func (a *App) IntersectMeshes(m1, m2 []float32) ([]float32, error) {
	return csg.IntersectionMesh(m1, m2)
}

// InvertMesh returns the complement of a triangle buffer.
func (a *App) InvertMesh(m1 []float32) ([]float32, error) {
	return csg.InverseMesh(m1)
}

// carveFileFilter is the dialog filter for .carve files.
var carveFileFilter = runtime.FileFilter{
	DisplayName: "Carve Scripts (*.carve)",
	Pattern:     "*.carve",
}

// OpenFile shows an open file dialog and returns the file contents + path.
func (a *App) OpenFile() (FileResult, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Open Carve Script",
		Filters: []runtime.FileFilter{
			carveFileFilter,
		},
	})
	if err != nil {
		return FileResult{}, err
	}
	// User cancelled the dialog.
	if path == "" {
		return FileResult{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}
	return FileResult{
		Content: string(data),
		Path:    path,
	}, nil
}

// SaveFile saves content to the given path (or shows a save dialog if path is empty).
func (a *App) SaveFile(content string, path string) (string, error) {
	if path == "" {
		var err error
		path, err = runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
			Title:           "Save Carve Script",
			DefaultFilename: "untitled.carve",
			Filters: []runtime.FileFilter{
				carveFileFilter,
			},
		})
		if err != nil {
			return "", err
		}
		// User cancelled the dialog.
		if path == "" {
			return "", nil
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// SetTitle updates the window title.
func (a *App) SetTitle(title string) {
	runtime.WindowSetTitle(a.ctx, title)
}
