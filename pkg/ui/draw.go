package ui

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/taigrr/spotlight/pkg/selection"
)

// Canvas is anything cells can be drawn on. *uv.Terminal satisfies it.
type Canvas interface {
	SetCell(x, y int, c *uv.Cell)
}

// Swatch is one material row in the material list.
type Swatch struct {
	Name      selection.MaterialID
	Style     selection.MaterialStyle
	Supported bool
}

// Frame is the viewer state shown above the buttons.
type Frame struct {
	Title    string
	Camera   string
	Swatches []Swatch
}

// Colors
var (
	colorText     = color.RGBA{220, 220, 220, 255}
	colorDim      = color.RGBA{130, 130, 140, 255}
	colorBlack    = color.RGBA{0, 0, 0, 255}
	colorSelected = color.RGBA{255, 255, 0, 255}
	colorButton   = color.RGBA{70, 70, 85, 255}
)

// Draw renders the whole UI into a width x height cell area.
func (p *Panel) Draw(c Canvas, width, height int, f Frame) {
	bg := p.backgroundColor()
	base := uv.Style{Fg: colorText, Bg: bg}

	// Always repaint the full area so shrinking rows leave nothing behind
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetCell(x, y, &uv.Cell{Content: " ", Width: 1, Style: base})
		}
	}
	for _, b := range p.buttons {
		b.drawn = false
	}
	if width <= 0 || height <= 0 {
		return
	}

	// Top: title and camera readout
	x := drawText(c, 1, 0, width, f.Title, base)
	drawText(c, x+2, 0, width, f.Camera, uv.Style{Fg: colorDim, Bg: bg})

	// Material list, as many rows as fit above the description
	bottom := height - 3
	for i, s := range f.Swatches {
		y := 2 + i
		if y >= bottom {
			break
		}
		p.drawSwatch(c, y, width, s)
	}

	// Description line and button bar
	if height >= 3 {
		drawText(c, 1, height-3, width, p.description, base)
	}
	p.drawButtons(c, height-1, width)
}

func (p *Panel) drawSwatch(c Canvas, y, width int, s Swatch) {
	bg := p.backgroundColor()
	swatch := uv.Style{Bg: blend(s.Style, p.background)}
	for x := 1; x < 5 && x < width; x++ {
		c.SetCell(x, y, &uv.Cell{Content: " ", Width: 1, Style: swatch})
	}

	st := uv.Style{Fg: colorText, Bg: bg}
	x := drawText(c, 6, y, width, s.Name, st)

	detail := fmt.Sprintf("%-6s metal %.2f  rough %.2f", s.Style.Opacity, s.Style.Metallic, s.Style.Roughness)
	if !s.Supported {
		detail = "unsupported material"
	}
	drawText(c, max(x+2, 24), y, width, detail, uv.Style{Fg: colorDim, Bg: bg})
}

func (p *Panel) drawButtons(c Canvas, y, width int) {
	x := 1
	for _, b := range p.buttons {
		marker := "○ "
		if b.pressed {
			marker = "● "
		}
		text := " " + marker + b.Label() + " "

		st := uv.Style{Fg: colorText, Bg: colorButton}
		if b.selected {
			st = uv.Style{Fg: colorBlack, Bg: colorSelected}
		}

		end := drawText(c, x, y, width, text, st)
		if end > x {
			b.x0, b.x1, b.y, b.drawn = x, end, y, true
		}
		x = end + 1
		if x >= width {
			break
		}
	}
}

func (p *Panel) backgroundColor() color.RGBA {
	return color.RGBA{p.background[0], p.background[1], p.background[2], 255}
}

// blend composites a material's base color over the background. BLEND
// materials use their alpha; OPAQUE materials cover it.
func blend(s selection.MaterialStyle, background [3]uint8) color.Color {
	fg := colorful.Color{R: s.BaseColor[0], G: s.BaseColor[1], B: s.BaseColor[2]}.Clamped()
	if s.Opacity == selection.OpacityOpaque {
		return fg
	}
	bg := colorful.Color{
		R: float64(background[0]) / 255,
		G: float64(background[1]) / 255,
		B: float64(background[2]) / 255,
	}
	alpha := min(max(s.BaseColor[3], 0), 1)
	return bg.BlendRgb(fg, alpha)
}

// drawText writes s starting at (x, y), clipped at maxX. It returns the
// column after the last cell written.
func drawText(c Canvas, x, y, maxX int, s string, st uv.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		c.SetCell(x, y, &uv.Cell{Content: string(r), Width: w, Style: st})
		x += w
	}
	return x
}
