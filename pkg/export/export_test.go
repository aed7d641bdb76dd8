package export

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/mesher"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

func triangleMesh() *mesher.Mesh {
	return &mesher.Mesh{
		Vertices: []mesher.Vertex{
			{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func sphereMesh(t *testing.T) *mesher.Mesh {
	t.Helper()
	node, err := sdfgraph.NewSphere(1.0)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	cfg := mesher.DefaultMeshConfig()
	cfg.Resolution = 16
	return mesher.Generate(node, cfg)
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"scene.glb":  FormatGLB,
		"scene.gltf": FormatGLTF,
		"scene.obj":  FormatOBJ,
		"scene.stl":  FormatSTL,
		"SCENE.STL":  FormatSTL,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil {
			t.Fatalf("FormatFromPath(%q): %v", path, err)
		}
		if got != want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", path, got, want)
		}
	}
	if _, err := FormatFromPath("scene.fbx"); err == nil {
		t.Error("want error for unrecognized extension")
	}
}

func TestFormatCapabilities(t *testing.T) {
	if !FormatGLB.HasMaterials() || !FormatGLTF.HasMaterials() {
		t.Error("glTF family must report material support")
	}
	if FormatOBJ.HasMaterials() || FormatSTL.HasMaterials() {
		t.Error("OBJ/STL must report no material support")
	}
}

// TestSaveSTLSize checks scenario S3: a binary STL file is exactly
// 80 + 4 + 50*T bytes for T triangles.
func TestSaveSTLSize(t *testing.T) {
	mesh := sphereMesh(t)
	path := filepath.Join(t.TempDir(), "scene.stl")
	if err := SaveSTL(mesh, path, DefaultOptions()); err != nil {
		t.Fatalf("SaveSTL: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	want := int64(80+4) + int64(mesh.TriangleCount())*50
	if info.Size() != want {
		t.Errorf("want size %d, got %d", want, info.Size())
	}
}

func TestSaveSTLHeaderAndCount(t *testing.T) {
	mesh := triangleMesh()
	path := filepath.Join(t.TempDir(), "tri.stl")
	if err := SaveSTL(mesh, path, DefaultOptions()); err != nil {
		t.Fatalf("SaveSTL: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 80+4+50 {
		t.Fatalf("want 1-triangle file size %d, got %d", 80+4+50, len(data))
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	if count != 1 {
		t.Errorf("want triangle count 1, got %d", count)
	}
}

// TestSaveGLBHeader checks scenario S6: a GLB file begins with magic
// 'glTF' and version 2, little-endian.
func TestSaveGLBHeader(t *testing.T) {
	mesh := sphereMesh(t)
	path := filepath.Join(t.TempDir(), "scene.glb")
	if err := SaveGLB(mesh, path, DefaultOptions()); err != nil {
		t.Fatalf("SaveGLB: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) < 8 {
		t.Fatalf("file too short: %d bytes", len(data))
	}
	want := []byte{0x67, 0x6C, 0x54, 0x46, 0x02, 0x00, 0x00, 0x00}
	for i, b := range want {
		if data[i] != b {
			t.Fatalf("byte %d: want 0x%02X, got 0x%02X", i, b, data[i])
		}
	}
}

func TestSaveOBJFaceCount(t *testing.T) {
	mesh := triangleMesh()
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := SaveOBJ(mesh, path, DefaultOptions()); err != nil {
		t.Fatalf("SaveOBJ: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty OBJ output")
	}
	if faces := strings.Count(string(data), "\nf "); faces != mesh.TriangleCount() {
		t.Errorf("want %d faces, got %d", mesh.TriangleCount(), faces)
	}
}

func TestWriteDispatchesByExtension(t *testing.T) {
	mesh := triangleMesh()
	dir := t.TempDir()
	for _, name := range []string{"a.obj", "a.stl", "a.glb", "a.gltf"} {
		if err := Write(mesh, filepath.Join(dir, name), DefaultOptions()); err != nil {
			t.Errorf("Write(%q): %v", name, err)
		}
	}
	if err := Write(mesh, filepath.Join(dir, "a.fbx"), DefaultOptions()); err == nil {
		t.Error("want error for unrecognized extension")
	}
}

func TestExportSVGProducesImage(t *testing.T) {
	node, err := sdfgraph.NewSphere(1.0)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	opts := DefaultSVGOptions()
	opts.Width, opts.Height = 64, 64
	opts.GridStep = 8
	data, err := ExportSVG(node, opts)
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty SVG output")
	}
}
