// Package ui provides the terminal stand-in for the part selection page: a
// row of part buttons, a description line and a material swatch list.
package ui

import (
	"strconv"

	"github.com/taigrr/spotlight/pkg/selection"
)

// Button selects one catalog part.
type Button struct {
	target   selection.MaterialID
	label    string
	index    int // 0-based position in the bar
	selected bool
	pressed  bool

	// Hit box from the last Draw, in cells.
	x0, x1, y int
	drawn     bool
}

// Target returns the material the button selects.
func (b *Button) Target() selection.MaterialID { return b.target }

// Label returns the text drawn on the button, e.g. "1 Arm".
func (b *Button) Label() string {
	if b.index < 9 {
		return strconv.Itoa(b.index+1) + " " + b.label
	}
	return b.label
}

// SetSelected sets or clears the highlighted look.
func (b *Button) SetSelected(on bool) { b.selected = on }

// Selected reports whether the button has the highlighted look.
func (b *Button) Selected() bool { return b.selected }

// SetPressed sets or clears the pressed state announced to assistive readers.
func (b *Button) SetPressed(on bool) { b.pressed = on }

// Pressed reports the pressed state.
func (b *Button) Pressed() bool { return b.pressed }

// Panel holds the buttons and the description text.
type Panel struct {
	buttons     []*Button
	description string
	background  [3]uint8
}

// NewPanel creates one button per catalog part, in catalog order.
func NewPanel(parts []selection.Part, background [3]uint8) *Panel {
	p := &Panel{background: background}
	for i, part := range parts {
		p.buttons = append(p.buttons, &Button{
			target: part.Material,
			label:  part.Label,
			index:  i,
		})
	}
	return p
}

// Buttons returns every button, for selection.Apply.
func (p *Panel) Buttons() []selection.Button {
	out := make([]selection.Button, len(p.buttons))
	for i, b := range p.buttons {
		out[i] = b
	}
	return out
}

// Button returns the button at index i, or nil.
func (p *Panel) Button(i int) *Button {
	if i < 0 || i >= len(p.buttons) {
		return nil
	}
	return p.buttons[i]
}

// Len returns the number of buttons.
func (p *Panel) Len() int { return len(p.buttons) }

// SetDescription sets the description text.
func (p *Panel) SetDescription(text string) { p.description = text }

// Description returns the description text.
func (p *Panel) Description() string { return p.description }

// Active returns the index of the pressed button, or -1.
func (p *Panel) Active() int {
	for i, b := range p.buttons {
		if b.pressed {
			return i
		}
	}
	return -1
}

// Cycle returns the button delta steps away from the active one, wrapping
// around. With no active button it starts from the first.
func (p *Panel) Cycle(delta int) *Button {
	n := len(p.buttons)
	if n == 0 {
		return nil
	}
	i := p.Active()
	if i < 0 {
		return p.buttons[0]
	}
	i = ((i+delta)%n + n) % n
	return p.buttons[i]
}

// HitTest returns the button drawn at cell (x, y), or nil.
func (p *Panel) HitTest(x, y int) *Button {
	for _, b := range p.buttons {
		if b.drawn && y == b.y && x >= b.x0 && x < b.x1 {
			return b
		}
	}
	return nil
}
