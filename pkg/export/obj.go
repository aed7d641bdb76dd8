package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sdfkit/sdfkit/pkg/mesher"
)

// SaveOBJ writes mesh as a Wavefront OBJ: positions, normals, texture
// coordinates, and triangle faces. OBJ carries no material data (spec
// §4.7) — opts.BaseColor and opts.EmbedTextures are ignored.
func SaveOBJ(mesh *mesher.Mesh, path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# sdfkit mesh export")
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "v %g %g %g\n", v.Position.X(), v.Position.Y(), v.Position.Z())
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "vt %g %g\n", v.UV.X(), v.UV.Y())
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "vn %g %g %g\n", v.Normal.X(), v.Normal.Y(), v.Normal.Z())
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return w.Flush()
}
