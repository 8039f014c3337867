package selection

// Assignment pairs a material with the style it should receive.
type Assignment struct {
	Material MaterialID
	Style    MaterialStyle
}

// Projection is everything one selection changes in the viewer and the UI.
type Projection struct {
	Styles      []Assignment // one per known material, in enumeration order
	Orbit       Orbit
	Target      *Target // nil leaves the camera target untouched
	Description string
	ActiveID    MaterialID
}

// StyleFor returns the style projected for id. Materials not covered by the
// projection are Dimmed.
func (p Projection) StyleFor(id MaterialID) MaterialStyle {
	for _, a := range p.Styles {
		if a.Material == id {
			return a.Style
		}
	}
	return Dimmed
}

// Highlighted returns the materials that received the Highlighted style.
func (p Projection) Highlighted() []MaterialID {
	var out []MaterialID
	for _, a := range p.Styles {
		if a.Style == Highlighted {
			out = append(out, a.Material)
		}
	}
	return out
}

// Projector maps a requested material to a Projection using a fixed catalog.
type Projector struct {
	catalog *Catalog
}

// NewProjector creates a projector over the given tables.
func NewProjector(catalog *Catalog) *Projector {
	return &Projector{catalog: catalog}
}

// Catalog returns the tables the projector reads.
func (p *Projector) Catalog() *Catalog {
	return p.catalog
}

// Select computes the projection for requested. Unknown ids are valid input:
// they fall back to the default orbit and description, leave the target alone,
// and dim every material.
func (p *Projector) Select(requested MaterialID, known []MaterialID) Projection {
	styles := make([]Assignment, len(known))
	for i, id := range known {
		styles[i] = Assignment{Material: id, Style: Style(id == requested)}
	}

	proj := Projection{
		Styles:      styles,
		Orbit:       p.catalog.Orbit(requested),
		Description: p.catalog.Description(requested),
		ActiveID:    requested,
	}
	if t, ok := p.catalog.Target(requested); ok {
		proj.Target = &t
	}
	return proj
}
