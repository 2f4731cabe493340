package mapper

import (
	"fmt"
	"strings"

	"circuit-board/internal/circuit/geometry"
	"circuit-board/internal/circuit/models"
)

// ============================================================
// Renderer
// ============================================================

const (
	terminalStart = "green"
	terminalEnd   = "blue"
	ledLitColor   = "red"
)

var fills = map[models.ElementID]string{
	models.Source:   "#d9d9d9",
	models.Resistor: "#faf191",
	models.LED:      "#ffffff",
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render собирает SVG доски: сетку, плитки и свечение светодиода.
func (r *Renderer) Render(state *models.State) (string, error) {
	if state == nil {
		return "", fmt.Errorf("state is nil")
	}
	if state.CellSize <= 0 {
		return "", fmt.Errorf("invalid cell size %d", state.CellSize)
	}

	width := state.Columns * state.CellSize
	height := state.Rows * state.CellSize

	var elements []string
	elements = append(elements, r.renderGrid(state)...)
	for _, e := range state.Elements {
		elements = append(elements, r.renderElement(e, state)...)
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height))
	builder.WriteString("\n")
	builder.WriteString(`  <defs><filter id="glow" x="-100%" y="-100%" width="300%" height="300%">` +
		`<feDropShadow dx="0" dy="0" stdDeviation="20" flood-color="` + ledLitColor + `"/></filter></defs>`)
	builder.WriteString("\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Element renderers
// ============================================================

func (r *Renderer) renderGrid(state *models.State) []string {
	var out []string
	cell := state.CellSize
	width := state.Columns * cell
	height := state.Rows * cell

	for col := 1; col < state.Columns; col++ {
		x := col * cell
		out = append(out, fmt.Sprintf(`<line x1="%d" y1="0" x2="%d" y2="%d" stroke="#eee" />`, x, x, height))
	}
	for row := 1; row < state.Rows; row++ {
		y := row * cell
		out = append(out, fmt.Sprintf(`<line x1="0" y1="%d" x2="%d" y2="%d" stroke="#eee" />`, y, width, y))
	}
	return out
}

func (r *Renderer) renderElement(e models.Element, state *models.State) []string {
	cell := state.CellSize
	width, height := geometry.Dimensions(e.Size, e.Orientation, cell)
	x := e.X * cell
	y := e.Y * cell

	fill, ok := fills[e.ID]
	if !ok {
		fill = "#ccc"
	}

	stroke, strokeWidth, filter := "#000", 1, ""
	if e.ID == models.LED && state.Lit {
		stroke, strokeWidth, filter = ledLitColor, 6, ` filter="url(#glow)"`
	}
	out := []string{fmt.Sprintf(`<rect id="%s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="%d"%s />`,
		e.ID, x, y, width, height, fill, stroke, strokeWidth, filter)}

	// Клеммы: начало зелёное, конец синий.
	if e.Orientation == models.Horizontal {
		out = append(out,
			terminal(x, y, x, y+height, terminalStart),
			terminal(x+width, y, x+width, y+height, terminalEnd),
		)
	} else {
		out = append(out,
			terminal(x, y, x+width, y, terminalStart),
			terminal(x, y+height, x+width, y+height, terminalEnd),
		)
	}
	return out
}

func terminal(x1, y1, x2, y2 int, color string) string {
	return fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="3" />`, x1, y1, x2, y2, color)
}
