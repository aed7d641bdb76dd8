// Package export serializes a mesher.Mesh to one of four file formats:
// GLB, glTF, OBJ, and binary STL, plus a debug SVG cross-section writer.
// Dispatch is by destination file extension (Write), or callers may invoke
// a format-specific writer directly.
package export
