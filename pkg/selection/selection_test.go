package selection

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var jcbMaterials = []MaterialID{"Mesh 1 Mat", "Mesh 2 Mat", "Mesh 3 Mat"}

func TestStyle(t *testing.T) {
	if Style(true) != Highlighted {
		t.Errorf("Style(true) = %+v, want Highlighted", Style(true))
	}
	if Style(false) != Dimmed {
		t.Errorf("Style(false) = %+v, want Dimmed", Style(false))
	}
	if Highlighted == Dimmed {
		t.Error("Highlighted and Dimmed must differ")
	}

	if Dimmed.BaseColor != [4]float64{0.6, 0.6, 0.6, 0.4} || Dimmed.Opacity != OpacityBlend ||
		Dimmed.Metallic != 0.5 || Dimmed.Roughness != 0.8 {
		t.Errorf("unexpected Dimmed style: %+v", Dimmed)
	}
	if Highlighted.BaseColor != [4]float64{1, 1, 0, 1} || Highlighted.Opacity != OpacityOpaque ||
		Highlighted.Metallic != 1.0 || Highlighted.Roughness != 0.35 {
		t.Errorf("unexpected Highlighted style: %+v", Highlighted)
	}
}

func TestOpacityString(t *testing.T) {
	if OpacityBlend.String() != "BLEND" {
		t.Errorf("OpacityBlend = %q", OpacityBlend.String())
	}
	if OpacityOpaque.String() != "OPAQUE" {
		t.Errorf("OpacityOpaque = %q", OpacityOpaque.String())
	}
}

func TestCameraStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"default orbit", DefaultOrbit.String(), "0deg 75deg 3m"},
		{"negative yaw", Orbit{Yaw: -25, Pitch: 85}.String(), "-25deg 85deg 3m"},
		{"fractional", Orbit{Yaw: 12.5, Pitch: 80.25}.String(), "12.5deg 80.25deg 3m"},
		{"whole target", NewTarget(3, 3, 3).String(), "3m 3m 3m"},
		{"fractional target", NewTarget(0.15, 4, 1).String(), "0.15m 4m 1m"},
		{"zero and negative", NewTarget(0, -2, 0).String(), "0m -2m 0m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestDefaultCatalogLookups(t *testing.T) {
	c := DefaultCatalog()

	if c.Default() != "Mesh 1 Mat" {
		t.Errorf("Default() = %q", c.Default())
	}
	if got := c.Orbit("Mesh 3 Mat"); got != (Orbit{Yaw: 45, Pitch: 75}) {
		t.Errorf("Orbit(Mesh 3 Mat) = %+v", got)
	}
	if got, ok := c.Target("Mesh 1 Mat"); !ok || got != NewTarget(0.15, 4, 1) {
		t.Errorf("Target(Mesh 1 Mat) = %v, %v", got, ok)
	}

	parts := c.Parts()
	if len(parts) != 3 || parts[1].Label != "Bucket" {
		t.Fatalf("unexpected parts: %+v", parts)
	}

	// Parts returns a copy.
	parts[0].Label = "changed"
	if c.Parts()[0].Label != "Arm" {
		t.Error("Parts should not expose internal storage")
	}
}

func TestCatalogFallbacks(t *testing.T) {
	c := DefaultCatalog()

	if got := c.Description("Unknown Mat"); got != DefaultDescription {
		t.Errorf("Description = %q, want %q", got, DefaultDescription)
	}
	if got := c.Orbit("Unknown Mat"); got != DefaultOrbit {
		t.Errorf("Orbit = %+v, want %+v", got, DefaultOrbit)
	}
	if _, ok := c.Target("Unknown Mat"); ok {
		t.Error("Target should be absent for unknown material")
	}
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []PartSpec
	}{
		{"empty material", []PartSpec{{Label: "x"}}},
		{"duplicate", []PartSpec{{Material: "a"}, {Material: "a"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog("", tc.specs)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestNewCatalogPartialSpecs(t *testing.T) {
	c, err := NewCatalog("", []PartSpec{
		{Material: "Body", Orbit: &Orbit{Yaw: 10, Pitch: 60}},
		{Material: "Wheel", Description: ptr("A wheel.")},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if c.Default() != "Body" {
		t.Errorf("default should be first part, got %q", c.Default())
	}
	if c.Parts()[0].Label != "Body" {
		t.Errorf("label should fall back to material name, got %q", c.Parts()[0].Label)
	}
	if c.Description("Body") != DefaultDescription {
		t.Errorf("Body description = %q", c.Description("Body"))
	}
	if c.Orbit("Wheel") != DefaultOrbit {
		t.Errorf("Wheel orbit = %+v", c.Orbit("Wheel"))
	}
	if _, ok := c.Target("Body"); ok {
		t.Error("Body has no target")
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.json")
	data := `{
		"default": "Door",
		"parts": [
			{"material": "Hull", "label": "Hull", "description": "The hull.",
			 "orbit": {"yaw": -10, "pitch": 70}, "target": {"x": 1, "y": 2, "z": 3}},
			{"material": "Door"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Default() != "Door" {
		t.Errorf("Default() = %q", c.Default())
	}
	if c.Description("Hull") != "The hull." {
		t.Errorf("Description(Hull) = %q", c.Description("Hull"))
	}
	if got, ok := c.Target("Hull"); !ok || got.String() != "1m 2m 3m" {
		t.Errorf("Target(Hull) = %v, %v", got, ok)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatalog(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCatalog(bad)
	if err == nil || !strings.Contains(err.Error(), "catalog: parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	dup := filepath.Join(dir, "dup.json")
	if err := os.WriteFile(dup, []byte(`{"parts":[{"material":"a"},{"material":"a"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(dup); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestSelectBucket(t *testing.T) {
	p := NewProjector(DefaultCatalog())
	proj := p.Select("Mesh 2 Mat", jcbMaterials)

	want := []Assignment{
		{Material: "Mesh 1 Mat", Style: Dimmed},
		{Material: "Mesh 2 Mat", Style: Highlighted},
		{Material: "Mesh 3 Mat", Style: Dimmed},
	}
	if !reflect.DeepEqual(proj.Styles, want) {
		t.Errorf("Styles = %+v, want %+v", proj.Styles, want)
	}
	if proj.Orbit != (Orbit{Yaw: -25, Pitch: 85}) {
		t.Errorf("Orbit = %+v", proj.Orbit)
	}
	if proj.Target == nil || *proj.Target != NewTarget(3, 3, 3) {
		t.Errorf("Target = %v", proj.Target)
	}
	if proj.Description != "This is the bucket, perfect for scooping and loading materials." {
		t.Errorf("Description = %q", proj.Description)
	}
	if proj.ActiveID != "Mesh 2 Mat" {
		t.Errorf("ActiveID = %q", proj.ActiveID)
	}
}

func TestSelectUnknown(t *testing.T) {
	p := NewProjector(DefaultCatalog())
	proj := p.Select("Unknown Mat", jcbMaterials)

	for _, a := range proj.Styles {
		if a.Style != Dimmed {
			t.Errorf("%s should be Dimmed", a.Material)
		}
	}
	if len(proj.Highlighted()) != 0 {
		t.Errorf("nothing should be highlighted, got %v", proj.Highlighted())
	}
	if proj.Orbit != DefaultOrbit {
		t.Errorf("Orbit = %+v, want default", proj.Orbit)
	}
	if proj.Target != nil {
		t.Errorf("Target should be absent, got %v", *proj.Target)
	}
	if proj.Description != DefaultDescription {
		t.Errorf("Description = %q", proj.Description)
	}
	if proj.ActiveID != "Unknown Mat" {
		t.Errorf("ActiveID = %q", proj.ActiveID)
	}
}

func TestSelectMaterialMissingFromTables(t *testing.T) {
	p := NewProjector(DefaultCatalog())
	known := append([]MaterialID{"Glass"}, jcbMaterials...)
	proj := p.Select("Glass", known)

	if got := proj.Highlighted(); !reflect.DeepEqual(got, []MaterialID{"Glass"}) {
		t.Errorf("Highlighted = %v, want [Glass]", got)
	}
	if proj.Orbit != DefaultOrbit || proj.Target != nil || proj.Description != DefaultDescription {
		t.Errorf("camera and description should fall back: %+v", proj)
	}
}

func TestSelectExactlyOneHighlighted(t *testing.T) {
	p := NewProjector(DefaultCatalog())
	for _, id := range jcbMaterials {
		t.Run(id, func(t *testing.T) {
			proj := p.Select(id, jcbMaterials)
			if len(proj.Styles) != len(jcbMaterials) {
				t.Fatalf("expected %d styles, got %d", len(jcbMaterials), len(proj.Styles))
			}
			hl := proj.Highlighted()
			if len(hl) != 1 || hl[0] != id {
				t.Errorf("Highlighted = %v, want [%s]", hl, id)
			}
			if proj.StyleFor(id) != Highlighted {
				t.Errorf("StyleFor(%s) should be Highlighted", id)
			}
		})
	}
}

func TestSelectIdempotent(t *testing.T) {
	p := NewProjector(DefaultCatalog())
	for _, id := range []MaterialID{"Mesh 1 Mat", "Unknown Mat"} {
		a := p.Select(id, jcbMaterials)
		b := p.Select(id, jcbMaterials)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Select(%q) not idempotent:\n%+v\n%+v", id, a, b)
		}
	}
}

func TestSelectTargetIsCopy(t *testing.T) {
	c := DefaultCatalog()
	p := NewProjector(c)
	proj := p.Select("Mesh 2 Mat", jcbMaterials)
	proj.Target[0] = 99

	if got, _ := c.Target("Mesh 2 Mat"); got[0] != 3 {
		t.Errorf("catalog target mutated through projection: %v", got)
	}
}

func TestState(t *testing.T) {
	var s State
	if _, ok := s.Current(); ok {
		t.Error("zero State should have nothing selected")
	}

	prev := s.Replace("a")
	if _, ok := prev.Current(); ok {
		t.Error("first Replace should return empty state")
	}
	if !s.IsSelected("a") {
		t.Error("a should be selected")
	}

	prev = s.Replace("b")
	if id, _ := prev.Current(); id != "a" {
		t.Errorf("previous = %q, want a", id)
	}
	if s.IsSelected("a") || !s.IsSelected("b") {
		t.Error("only b should be selected")
	}
}
