// Package viewer adapts a glTF document and an orbit camera to the selection
// package's Viewer interface.
package viewer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/spotlight/pkg/selection"
)

// ErrUnsupportedMaterial is returned when a material cannot take
// metallic-roughness factors.
var ErrUnsupportedMaterial = errors.New("unsupported material")

// Extensions whose materials are not driven by metallic-roughness factors.
const (
	extSpecularGlossiness = "KHR_materials_pbrSpecularGlossiness"
	extUnlit              = "KHR_materials_unlit"
)

// Material wraps one glTF material.
type Material struct {
	mat      *gltf.Material
	original [4]float64
}

// Name returns the material name.
func (m *Material) Name() selection.MaterialID {
	return m.mat.Name
}

// Supported reports whether the material takes metallic-roughness factors.
func (m *Material) Supported() bool {
	if m.mat.Extensions == nil {
		return true
	}
	_, specGloss := m.mat.Extensions[extSpecularGlossiness]
	_, unlit := m.mat.Extensions[extUnlit]
	return !specGloss && !unlit
}

// ApplyStyle writes the style's factors and alpha mode. Unsupported materials
// are left untouched.
func (m *Material) ApplyStyle(s selection.MaterialStyle) error {
	if !m.Supported() {
		return fmt.Errorf("%w: %q", ErrUnsupportedMaterial, m.mat.Name)
	}

	pbr := m.mat.PBRMetallicRoughness
	if pbr == nil {
		pbr = &gltf.PBRMetallicRoughness{}
		m.mat.PBRMetallicRoughness = pbr
	}
	color := s.BaseColor
	pbr.BaseColorFactor = &color
	pbr.MetallicFactor = gltf.Float(s.Metallic)
	pbr.RoughnessFactor = gltf.Float(s.Roughness)

	switch s.Opacity {
	case selection.OpacityBlend:
		m.mat.AlphaMode = gltf.AlphaBlend
	default:
		m.mat.AlphaMode = gltf.AlphaOpaque
	}
	return nil
}

// Style reads the material's current appearance back.
func (m *Material) Style() selection.MaterialStyle {
	s := selection.MaterialStyle{
		BaseColor: baseColor(m.mat),
		Metallic:  1, // glTF defaults
		Roughness: 1,
	}
	if pbr := m.mat.PBRMetallicRoughness; pbr != nil {
		if pbr.MetallicFactor != nil {
			s.Metallic = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			s.Roughness = *pbr.RoughnessFactor
		}
	}
	if m.mat.AlphaMode == gltf.AlphaBlend {
		s.Opacity = selection.OpacityBlend
	}
	return s
}

// Original returns the base color the material had when it was loaded.
func (m *Material) Original() [4]float64 {
	return m.original
}

func baseColor(mat *gltf.Material) [4]float64 {
	if pbr := mat.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
		return *pbr.BaseColorFactor
	}
	return [4]float64{1, 1, 1, 1}
}

// Model is a loaded glTF document plus the camera looking at it.
type Model struct {
	Name      string
	doc       *gltf.Document
	materials []*Material
	camera    *OrbitCamera
}

// Load opens a .gltf or .glb file.
func Load(path string, fps int) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	m := NewModel(doc, fps)
	m.Name = filepath.Base(path)
	return m, nil
}

// NewModel wraps an in-memory document. Its materials are enumerable as soon
// as NewModel returns.
func NewModel(doc *gltf.Document, fps int) *Model {
	m := &Model{
		doc:    doc,
		camera: NewOrbitCamera(fps),
	}
	for _, mat := range doc.Materials {
		if mat == nil {
			continue
		}
		m.materials = append(m.materials, &Material{mat: mat, original: baseColor(mat)})
	}
	return m
}

// Materials enumerates the document's materials in document order.
func (m *Model) Materials() []selection.Material {
	out := make([]selection.Material, len(m.materials))
	for i, mat := range m.materials {
		out[i] = mat
	}
	return out
}

// MaterialByName returns the first material called id.
func (m *Model) MaterialByName(id selection.MaterialID) (selection.Material, bool) {
	if mat := m.Material(id); mat != nil {
		return mat, true
	}
	return nil, false
}

// Material returns the concrete material called id, or nil.
func (m *Model) Material(id selection.MaterialID) *Material {
	for _, mat := range m.materials {
		if mat.Name() == id {
			return mat
		}
	}
	return nil
}

// SetCameraOrbit parses and applies a camera-orbit attribute.
func (m *Model) SetCameraOrbit(orbit string) error {
	yaw, pitch, radius, err := ParseOrbit(orbit)
	if err != nil {
		return err
	}
	m.camera.SetOrbit(yaw, pitch, radius)
	return nil
}

// SetCameraTarget parses and applies a camera-target attribute.
func (m *Model) SetCameraTarget(target string) error {
	t, err := ParseTarget(target)
	if err != nil {
		return err
	}
	m.camera.SetTarget(t)
	return nil
}

// Camera returns the model's camera.
func (m *Model) Camera() *OrbitCamera {
	return m.camera
}

// Document returns the underlying glTF document.
func (m *Model) Document() *gltf.Document {
	return m.doc
}

// MeshCount returns the number of meshes in the document.
func (m *Model) MeshCount() int {
	return len(m.doc.Meshes)
}

// Save writes the document with its current material state. The format is
// chosen by extension: .glb is binary, anything else is JSON.
func (m *Model) Save(path string) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(m.doc, path)
	} else {
		err = gltf.Save(m.doc, path)
	}
	if err != nil {
		return fmt.Errorf("save gltf: %w", err)
	}
	return nil
}

// All returns the concrete materials in document order.
func (m *Model) All() []*Material {
	out := make([]*Material, len(m.materials))
	copy(out, m.materials)
	return out
}
