package mesher

// mergeCells concatenates per-cell vertex/index arrays into one mesh,
// rebasing each cell's local indices by the running vertex count.
// Cells are visited in lexicographic order (the order marchCells wrote
// them in), so the result is deterministic given the same input
// (spec §4.3 step 4).
func mergeCells(cells []cellResult) *Mesh {
	totalVerts, totalIdx := 0, 0
	for _, c := range cells {
		totalVerts += len(c.vertices)
		totalIdx += len(c.indices)
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, totalVerts),
		Indices:  make([]uint32, 0, totalIdx),
	}

	for _, c := range cells {
		if len(c.vertices) == 0 {
			continue
		}
		offset := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, c.vertices...)
		for _, idx := range c.indices {
			mesh.Indices = append(mesh.Indices, offset+uint32(idx))
		}
	}

	return mesh
}
