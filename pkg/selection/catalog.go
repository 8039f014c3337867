package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultDescription is shown for parts without a configured description.
const DefaultDescription = "Part selected."

// ErrInvalidCatalog is returned when a parts file is structurally wrong.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Part is one selectable entry of the catalog, in button order.
type Part struct {
	Material MaterialID
	Label    string
}

// Catalog holds the static per-part lookup tables. It is immutable once built.
type Catalog struct {
	parts        []Part
	defaultID    MaterialID
	descriptions map[MaterialID]string
	orbits       map[MaterialID]Orbit
	targets      map[MaterialID]Target
}

// PartSpec describes one part for NewCatalog. Nil fields fall back to defaults.
type PartSpec struct {
	Material    MaterialID `json:"material"`
	Label       string     `json:"label,omitempty"`
	Description *string    `json:"description,omitempty"`
	Orbit       *Orbit     `json:"orbit,omitempty"`
	Target      *Point     `json:"target,omitempty"`
}

// Point is the JSON form of a camera target.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// CatalogFile is the JSON layout of a parts file.
type CatalogFile struct {
	Default MaterialID `json:"default,omitempty"`
	Parts   []PartSpec `json:"parts"`
}

// NewCatalog builds the lookup tables from part specs. defaultID may be empty,
// in which case the first part is the startup default.
func NewCatalog(defaultID MaterialID, specs []PartSpec) (*Catalog, error) {
	c := &Catalog{
		parts:        make([]Part, 0, len(specs)),
		descriptions: make(map[MaterialID]string),
		orbits:       make(map[MaterialID]Orbit),
		targets:      make(map[MaterialID]Target),
	}

	seen := make(map[MaterialID]bool, len(specs))
	for i, s := range specs {
		if s.Material == "" {
			return nil, fmt.Errorf("%w: part %d has no material", ErrInvalidCatalog, i)
		}
		if seen[s.Material] {
			return nil, fmt.Errorf("%w: duplicate material %q", ErrInvalidCatalog, s.Material)
		}
		seen[s.Material] = true

		label := s.Label
		if label == "" {
			label = s.Material
		}
		c.parts = append(c.parts, Part{Material: s.Material, Label: label})

		if s.Description != nil {
			c.descriptions[s.Material] = *s.Description
		}
		if s.Orbit != nil {
			c.orbits[s.Material] = *s.Orbit
		}
		if s.Target != nil {
			c.targets[s.Material] = NewTarget(s.Target.X, s.Target.Y, s.Target.Z)
		}
	}

	switch {
	case defaultID != "":
		c.defaultID = defaultID
	case len(c.parts) > 0:
		c.defaultID = c.parts[0].Material
	}

	return c, nil
}

// LoadCatalog reads a JSON parts file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var f CatalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	c, err := NewCatalog(f.Default, f.Parts)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parts returns the configured parts in button order.
func (c *Catalog) Parts() []Part {
	out := make([]Part, len(c.parts))
	copy(out, c.parts)
	return out
}

// Default returns the material selected when the model becomes ready.
func (c *Catalog) Default() MaterialID {
	return c.defaultID
}

// Description returns the description for id, or DefaultDescription.
func (c *Catalog) Description(id MaterialID) string {
	if d, ok := c.descriptions[id]; ok {
		return d
	}
	return DefaultDescription
}

// Orbit returns the camera orbit for id, or DefaultOrbit.
func (c *Catalog) Orbit(id MaterialID) Orbit {
	if o, ok := c.orbits[id]; ok {
		return o
	}
	return DefaultOrbit
}

// Target returns the camera target for id. There is no default target.
func (c *Catalog) Target(id MaterialID) (Target, bool) {
	t, ok := c.targets[id]
	return t, ok
}

func ptr[T any](v T) *T { return &v }

// DefaultCatalog returns the built-in tables for the JCB excavator model.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog("Mesh 1 Mat", []PartSpec{
		{
			Material:    "Mesh 1 Mat",
			Label:       "Arm",
			Description: ptr("This is the arm of the JCB, used for digging and lifting."),
			Orbit:       &Orbit{Yaw: -75, Pitch: 75},
			Target:      &Point{X: 0.15, Y: 4.0, Z: 1.0},
		},
		{
			Material:    "Mesh 2 Mat",
			Label:       "Bucket",
			Description: ptr("This is the bucket, perfect for scooping and loading materials."),
			Orbit:       &Orbit{Yaw: -25, Pitch: 85},
			Target:      &Point{X: 3.0, Y: 3.0, Z: 3.0},
		},
		{
			Material:    "Mesh 3 Mat",
			Label:       "Cabin",
			Description: ptr("This is the cabin, where the operator controls the machine."),
			Orbit:       &Orbit{Yaw: 45, Pitch: 75},
			Target:      &Point{X: 14.0, Y: 6.0, Z: 2.0},
		},
	})
	if err != nil {
		panic(err) // static table
	}
	return c
}
