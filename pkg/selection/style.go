// Package selection computes the highlight, camera and description state for a
// selected model part and applies it to a viewer and a UI panel.
package selection

// MaterialID names one material in the loaded model.
type MaterialID = string

// Opacity controls how a material's alpha channel is interpreted.
type Opacity int

const (
	OpacityOpaque Opacity = iota // Alpha ignored
	OpacityBlend                 // Alpha blended with what is behind
)

// String returns the glTF alpha mode name.
func (o Opacity) String() string {
	switch o {
	case OpacityBlend:
		return "BLEND"
	default:
		return "OPAQUE"
	}
}

// MaterialStyle holds the PBR factors written to a material.
type MaterialStyle struct {
	BaseColor [4]float64 // RGBA in 0-1 range
	Opacity   Opacity
	Metallic  float64 // 0 = dielectric, 1 = metal
	Roughness float64 // 0 = smooth, 1 = rough
}

// The only two appearances a material can take.
var (
	Dimmed = MaterialStyle{
		BaseColor: [4]float64{0.6, 0.6, 0.6, 0.4},
		Opacity:   OpacityBlend,
		Metallic:  0.5,
		Roughness: 0.8,
	}
	Highlighted = MaterialStyle{
		BaseColor: [4]float64{1, 1, 0, 1},
		Opacity:   OpacityOpaque,
		Metallic:  1.0,
		Roughness: 0.35,
	}
)

// Style returns Highlighted for the selected material and Dimmed otherwise.
func Style(selected bool) MaterialStyle {
	if selected {
		return Highlighted
	}
	return Dimmed
}
