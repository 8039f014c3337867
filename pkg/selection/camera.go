package selection

import (
	"strconv"

	"github.com/flywave/go3d/float64/vec3"
)

// OrbitRadius is the fixed camera distance used for every preset.
const OrbitRadius = "3m"

// Orbit is a camera position around the target, in degrees.
type Orbit struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// DefaultOrbit is used for parts without a configured orbit.
var DefaultOrbit = Orbit{Yaw: 0, Pitch: 75}

// String formats the orbit as a camera-orbit attribute, e.g. "-25deg 85deg 3m".
func (o Orbit) String() string {
	return formatNumber(o.Yaw) + "deg " + formatNumber(o.Pitch) + "deg " + OrbitRadius
}

// Target is a camera look-at point in metres.
type Target vec3.T

// NewTarget creates a target from its coordinates.
func NewTarget(x, y, z float64) Target {
	return Target{x, y, z}
}

// Vec3 returns the target as a go3d vector.
func (t Target) Vec3() vec3.T {
	return vec3.T(t)
}

// String formats the target as a camera-target attribute, e.g. "3m 3m 3m".
func (t Target) String() string {
	return formatNumber(t[0]) + "m " + formatNumber(t[1]) + "m " + formatNumber(t[2]) + "m"
}

// formatNumber prints the shortest decimal that round-trips, with no
// exponent and no trailing zeros (3 -> "3", 0.15 -> "0.15").
func formatNumber(v float64) string {
	if v == 0 {
		return "0" // normalizes -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
