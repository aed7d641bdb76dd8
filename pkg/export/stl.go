package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/mesher"
)

// stlHeaderSize, stlTriangleSize mirror the binary STL layout (spec §6):
// 80-byte header, u32 triangle count, then 50 bytes per triangle
// (3 x f32 normal, 3 x 3 x f32 vertices, u16 attribute byte count).
const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// SaveSTL writes mesh as binary STL. Face normals are recomputed from
// triangle positions rather than taken from the mesh's vertex normals,
// since STL stores one normal per face (spec §4.7): cross product of two
// edges, normalized, falling back to (0,0,1) when the triangle is
// degenerate. STL carries no material data; opts is otherwise unused.
func SaveSTL(mesh *mesher.Mesh, path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	var header [stlHeaderSize]byte
	copy(header[:], "sdfkit binary STL export")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	triCount := uint32(mesh.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, triCount); err != nil {
		return err
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := mesh.Vertices[mesh.Indices[i]].Position
		v1 := mesh.Vertices[mesh.Indices[i+1]].Position
		v2 := mesh.Vertices[mesh.Indices[i+2]].Position
		n := faceNormal(v0, v1, v2)

		if err := writeVec3(w, n); err != nil {
			return err
		}
		if err := writeVec3(w, v0); err != nil {
			return err
		}
		if err := writeVec3(w, v1); err != nil {
			return err
		}
		if err := writeVec3(w, v2); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}

	return w.Flush()
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-12 {
		return mgl32.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

func writeVec3(w *bufio.Writer, v mgl32.Vec3) error {
	if err := binary.Write(w, binary.LittleEndian, v.X()); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, v.Y()); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, v.Z())
}
