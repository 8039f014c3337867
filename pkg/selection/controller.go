package selection

import (
	"fmt"
	"io"
	"log"
)

// Material is one styleable material handle owned by a viewer.
type Material interface {
	Name() MaterialID
	// ApplyStyle writes the style's factors. Handles that cannot take PBR
	// factors return an error and are left as they were.
	ApplyStyle(MaterialStyle) error
}

// Viewer is the 3D viewer a projection is applied to.
type Viewer interface {
	Materials() []Material
	MaterialByName(id MaterialID) (Material, bool)
	SetCameraOrbit(orbit string) error
	SetCameraTarget(target string) error
}

// Button is one selectable control in the UI.
type Button interface {
	Target() MaterialID
	SetSelected(on bool)
	SetPressed(on bool)
}

// Panel is the UI that shows the buttons and the description text.
type Panel interface {
	Buttons() []Button
	SetDescription(text string)
}

// Result is the outcome of styling one material.
type Result struct {
	Material MaterialID
	Err      error
}

// Report collects the per-material outcomes of one Apply.
type Report struct {
	Results   []Result
	CameraErr error // orbit or target command rejected by the viewer
}

// Failures returns the results whose style was rejected.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Applied returns the materials that took their projected style.
func (r Report) Applied() []MaterialID {
	var out []MaterialID
	for _, res := range r.Results {
		if res.Err == nil {
			out = append(out, res.Material)
		}
	}
	return out
}

// KnownMaterials lists the names of the viewer's materials in enumeration order.
func KnownMaterials(v Viewer) []MaterialID {
	mats := v.Materials()
	ids := make([]MaterialID, len(mats))
	for i, m := range mats {
		ids[i] = m.Name()
	}
	return ids
}

// Apply pushes a projection into the viewer and the panel. Each material is
// styled independently; a rejected material never stops the rest. panel may
// be nil.
func Apply(p Projection, v Viewer, panel Panel) Report {
	var rep Report

	for _, m := range v.Materials() {
		id := m.Name()
		rep.Results = append(rep.Results, Result{
			Material: id,
			Err:      m.ApplyStyle(p.StyleFor(id)),
		})
	}

	if err := v.SetCameraOrbit(p.Orbit.String()); err != nil {
		rep.CameraErr = fmt.Errorf("camera orbit: %w", err)
	}
	if p.Target != nil {
		if err := v.SetCameraTarget(p.Target.String()); err != nil && rep.CameraErr == nil {
			rep.CameraErr = fmt.Errorf("camera target: %w", err)
		}
	}

	if panel != nil {
		// Every button is reset so a stale active state cannot survive.
		for _, b := range panel.Buttons() {
			on := b.Target() == p.ActiveID
			b.SetSelected(on)
			b.SetPressed(on)
		}
		panel.SetDescription(p.Description)
	}

	return rep
}

// Controller drives selections for one viewer and panel. It owns the
// selection state and is meant to be called from a single event loop.
type Controller struct {
	projector *Projector
	viewer    Viewer
	panel     Panel
	logger    *log.Logger
	state     State
	last      Projection
}

// NewController wires a projector to a viewer and panel. A nil logger discards.
func NewController(p *Projector, v Viewer, panel Panel, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		projector: p,
		viewer:    v,
		panel:     panel,
		logger:    logger,
	}
}

// Ready is called once the viewer's materials are enumerable. It selects the
// catalog's startup default.
func (c *Controller) Ready() Report {
	return c.Select(c.projector.Catalog().Default())
}

// Select projects id, applies it and makes it the current selection.
func (c *Controller) Select(id MaterialID) Report {
	proj := c.projector.Select(id, KnownMaterials(c.viewer))
	rep := Apply(proj, c.viewer, c.panel)

	prev := c.state.Replace(id)
	c.last = proj

	if old, ok := prev.Current(); ok && old != id {
		c.logger.Printf("select %q (was %q)", id, old)
	} else {
		c.logger.Printf("select %q", id)
	}
	if _, ok := c.viewer.MaterialByName(id); !ok {
		c.logger.Printf("select %q: not in model, every material dimmed", id)
	}
	for _, f := range rep.Failures() {
		c.logger.Printf("skip material %q: %v", f.Material, f.Err)
	}
	if rep.CameraErr != nil {
		c.logger.Printf("select %q: %v", id, rep.CameraErr)
	}

	return rep
}

// State returns the current selection.
func (c *Controller) State() State {
	return c.state
}

// Projection returns the projection applied by the last Select.
func (c *Controller) Projection() Projection {
	return c.last
}
