package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/sdfkit/sdfkit/pkg/mesher"
)

// buildDocument lowers a mesher.Mesh into a single-node, single-mesh glTF
// document: one POSITION/NORMAL/TEXCOORD_0 primitive and, when opts
// requests materials, one PBR metallic-roughness material tinted by
// opts.BaseColor (spec §4.7, §6).
func buildDocument(mesh *mesher.Mesh, opts Options) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	uvs := make([][2]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{v.Position.X(), v.Position.Y(), v.Position.Z()}
		normals[i] = [3]float32{v.Normal.X(), v.Normal.Y(), v.Normal.Z()}
		uvs[i] = [2]float32{v.UV.X(), v.UV.Y()}
	}

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	uvAccessor := modeler.WriteTextureCoord(doc, uvs)
	indexAccessor := modeler.WriteIndices(doc, mesh.Indices)

	prim := &gltf.Primitive{
		Indices: gltf.Index(indexAccessor),
		Attributes: map[string]uint32{
			gltf.POSITION:   posAccessor,
			gltf.NORMAL:     normalAccessor,
			gltf.TEXCOORD_0: uvAccessor,
		},
	}

	if opts.EmbedTextures {
		matIdx := uint32(len(doc.Materials))
		doc.Materials = append(doc.Materials, &gltf.Material{
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &opts.BaseColor,
			},
		})
		prim.Material = gltf.Index(matIdx)
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{prim}})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: gltf.Index(0)})
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []uint32{0}})
	doc.Scene = gltf.Index(0)

	return doc
}

// SaveGLB writes mesh as a single binary glTF file: a 12-byte header
// followed by a JSON chunk and a BIN chunk (spec §6). Materials are
// embedded in the same binary chunk when opts.EmbedTextures is set.
func SaveGLB(mesh *mesher.Mesh, path string, opts Options) error {
	doc := buildDocument(mesh, opts)
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export: save glb %q: %w", path, err)
	}
	return nil
}

// SaveGLTF writes mesh as JSON glTF plus a side-car .bin buffer (spec
// §4.7). Texture payloads, if any, are written as side-car PNG files by
// the gltf library's own resource resolution.
func SaveGLTF(mesh *mesher.Mesh, path string, opts Options) error {
	doc := buildDocument(mesh, opts)
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("export: save gltf %q: %w", path, err)
	}
	return nil
}
