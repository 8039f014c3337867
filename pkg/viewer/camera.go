package viewer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/flywave/go3d/float64/vec3"
)

// ErrMalformedCamera is returned for camera attribute strings that cannot be parsed.
var ErrMalformedCamera = errors.New("malformed camera value")

// ParseOrbit parses a camera-orbit attribute like "-25deg 85deg 3m" into
// yaw and pitch (degrees) and radius (metres).
func ParseOrbit(s string) (yaw, pitch, radius float64, err error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: orbit %q: want 3 terms", ErrMalformedCamera, s)
	}
	if yaw, err = parseUnit(fields[0], "deg"); err != nil {
		return 0, 0, 0, fmt.Errorf("orbit %q: %w", s, err)
	}
	if pitch, err = parseUnit(fields[1], "deg"); err != nil {
		return 0, 0, 0, fmt.Errorf("orbit %q: %w", s, err)
	}
	if radius, err = parseUnit(fields[2], "m"); err != nil {
		return 0, 0, 0, fmt.Errorf("orbit %q: %w", s, err)
	}
	return yaw, pitch, radius, nil
}

// ParseTarget parses a camera-target attribute like "0.15m 4m 1m".
func ParseTarget(s string) (vec3.T, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return vec3.T{}, fmt.Errorf("%w: target %q: want 3 terms", ErrMalformedCamera, s)
	}
	var t vec3.T
	for i, f := range fields {
		v, err := parseUnit(f, "m")
		if err != nil {
			return vec3.T{}, fmt.Errorf("target %q: %w", s, err)
		}
		t[i] = v
	}
	return t, nil
}

func parseUnit(term, unit string) (float64, error) {
	num, ok := strings.CutSuffix(term, unit)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no %q unit", ErrMalformedCamera, term, unit)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedCamera, term)
	}
	return v, nil
}

// axis eases one camera value toward its goal with a critically damped spring.
type axis struct {
	pos, vel, goal float64
	spring         harmonica.Spring
}

func newAxis(fps int, v float64) axis {
	return axis{
		pos:  v,
		goal: v,
		// Frequency 6.0 = quick settle, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

func (a *axis) update() {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.goal)
}

func (a *axis) snap() {
	a.pos, a.vel = a.goal, 0
}

func (a *axis) settled() bool {
	const eps = 1e-3
	return math.Abs(a.pos-a.goal) < eps && math.Abs(a.vel) < eps
}

// OrbitCamera is a camera orbiting a target point. Commands set goals; Update
// moves the current values toward them one frame at a time.
type OrbitCamera struct {
	yaw, pitch, radius axis
	target             [3]axis
}

// Initial camera framing, matching a viewer with no orbit set.
const (
	initialYaw    = 0
	initialPitch  = 75
	initialRadius = 3
)

// NewOrbitCamera creates a camera that animates at the given frame rate.
func NewOrbitCamera(fps int) *OrbitCamera {
	if fps <= 0 {
		fps = 60
	}
	c := &OrbitCamera{
		yaw:    newAxis(fps, initialYaw),
		pitch:  newAxis(fps, initialPitch),
		radius: newAxis(fps, initialRadius),
	}
	for i := range c.target {
		c.target[i] = newAxis(fps, 0)
	}
	return c
}

// SetOrbit sets the goal orbit (degrees, metres).
func (c *OrbitCamera) SetOrbit(yaw, pitch, radius float64) {
	c.yaw.goal = yaw
	c.pitch.goal = pitch
	c.radius.goal = radius
}

// SetTarget sets the goal look-at point.
func (c *OrbitCamera) SetTarget(t vec3.T) {
	for i := range c.target {
		c.target[i].goal = t[i]
	}
}

// Update advances the camera by one frame.
func (c *OrbitCamera) Update() {
	c.yaw.update()
	c.pitch.update()
	c.radius.update()
	for i := range c.target {
		c.target[i].update()
	}
}

// Snap jumps straight to the goals.
func (c *OrbitCamera) Snap() {
	c.yaw.snap()
	c.pitch.snap()
	c.radius.snap()
	for i := range c.target {
		c.target[i].snap()
	}
}

// Settled reports whether every value has reached its goal.
func (c *OrbitCamera) Settled() bool {
	if !c.yaw.settled() || !c.pitch.settled() || !c.radius.settled() {
		return false
	}
	cur, goal := c.Target(), c.GoalTarget()
	d := vec3.Sub(&cur, &goal)
	return d.Length() < 1e-3
}

// Orbit returns the current yaw, pitch and radius.
func (c *OrbitCamera) Orbit() (yaw, pitch, radius float64) {
	return c.yaw.pos, c.pitch.pos, c.radius.pos
}

// GoalOrbit returns the commanded yaw, pitch and radius.
func (c *OrbitCamera) GoalOrbit() (yaw, pitch, radius float64) {
	return c.yaw.goal, c.pitch.goal, c.radius.goal
}

// Target returns the current look-at point.
func (c *OrbitCamera) Target() vec3.T {
	return vec3.T{c.target[0].pos, c.target[1].pos, c.target[2].pos}
}

// GoalTarget returns the commanded look-at point.
func (c *OrbitCamera) GoalTarget() vec3.T {
	return vec3.T{c.target[0].goal, c.target[1].goal, c.target[2].goal}
}
