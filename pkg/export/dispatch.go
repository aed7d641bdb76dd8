package export

import (
	"fmt"

	"github.com/sdfkit/sdfkit/pkg/mesher"
)

// Write serializes mesh to path, selecting a writer from path's extension
// (spec §6). This is the mesh sink interface's single operation.
func Write(mesh *mesher.Mesh, path string, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return WriteFormat(mesh, path, format, opts)
}

// WriteFormat serializes mesh to path using an explicitly chosen format,
// bypassing extension sniffing. Returns ErrExportFormat for any format
// other than the four spec §6 names.
func WriteFormat(mesh *mesher.Mesh, path string, format Format, opts Options) error {
	switch format {
	case FormatGLB:
		return SaveGLB(mesh, path, opts)
	case FormatGLTF:
		return SaveGLTF(mesh, path, opts)
	case FormatOBJ:
		return SaveOBJ(mesh, path, opts)
	case FormatSTL:
		return SaveSTL(mesh, path, opts)
	default:
		return fmt.Errorf("%w: %v", ErrExportFormat, format)
	}
}
