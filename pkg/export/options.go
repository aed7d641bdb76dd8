package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a mesh sink target (spec §6).
type Format int

const (
	FormatUnknown Format = iota
	FormatGLB
	FormatGLTF
	FormatOBJ
	FormatSTL
)

func (f Format) String() string {
	switch f {
	case FormatGLB:
		return "glb"
	case FormatGLTF:
		return "gltf"
	case FormatOBJ:
		return "obj"
	case FormatSTL:
		return "stl"
	default:
		return "unknown"
	}
}

// ErrExportFormat reports an unrecognized or inconsistent target format.
var ErrExportFormat = errors.New("export: unrecognized format")

// FormatFromPath maps a file extension to a Format (spec §6): .glb, .gltf,
// .obj, .stl. Matching is case-insensitive.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb":
		return FormatGLB, nil
	case ".gltf":
		return FormatGLTF, nil
	case ".obj":
		return FormatOBJ, nil
	case ".stl":
		return FormatSTL, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrExportFormat, path)
	}
}

// HasMaterials reports whether a format's writer can carry material data.
// OBJ and STL are geometry-only sinks (spec §4.7): requests for materials
// against these formats silently drop them rather than failing.
func (f Format) HasMaterials() bool {
	return f == FormatGLB || f == FormatGLTF
}

// Options configures a Write call (spec §6's mesh sink interface).
type Options struct {
	// EmbedTextures embeds image data in the binary chunk (GLB) or writes
	// side-car PNGs (glTF). Ignored outside the glTF family.
	EmbedTextures bool
	// TextureSize is the edge length, in pixels, of any procedurally
	// generated textures. Ignored outside the glTF family.
	TextureSize uint32
	// GenerateLOD is advisory: writers that support multiple detail
	// levels may emit them, but are not required to.
	GenerateLOD bool
	// BaseColor is the glTF material's base color factor; the glTF
	// writers emit that material only when EmbedTextures is set. The OBJ
	// and STL writers ignore it.
	BaseColor [4]float32
}

// DefaultOptions returns a plain, non-embedding, non-LOD option set.
func DefaultOptions() Options {
	return Options{
		TextureSize: 512,
		BaseColor:   [4]float32{0.8, 0.8, 0.8, 1.0},
	}
}
