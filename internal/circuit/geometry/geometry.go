package geometry

import (
	"math"

	"circuit-board/internal/circuit/models"
)

// ============================================================
// Endpoints
// ============================================================

// Endpoints возвращает начальную и конечную клетки элемента.
// Горизонтальный элемент тянется по X, любой другой - по Y.
func Endpoints(e models.Element) (start, end models.Point) {
	start = models.Point{X: e.X, Y: e.Y}
	if e.Orientation == models.Horizontal {
		return start, models.Point{X: e.X + e.Size - 1, Y: e.Y}
	}
	return start, models.Point{X: e.X, Y: e.Y + e.Size - 1}
}

// Dimensions возвращает размер плитки в пикселях.
func Dimensions(size int, orientation models.Orientation, cell int) (width, height int) {
	if orientation == models.Horizontal {
		return size * cell, cell
	}
	return cell, size * cell
}

// Cells возвращает размер плитки в клетках сетки.
func Cells(e models.Element) (cols, rows int) {
	return Dimensions(e.Size, e.Orientation, 1)
}

// Snap переводит пиксельное смещение в ближайшую клетку.
func Snap(px float64, cell int) int {
	if cell <= 0 {
		return 0
	}
	return int(math.Round(px / float64(cell)))
}

// ============================================================
// Proximity
// ============================================================

const threshold = 1

// Match - пара меток, которую возвращает Touching при касании.
type Match struct {
	First  models.Endpoint
	Second models.Endpoint
}

func (m Match) Label() models.Label {
	return models.NewLabel(m.First, m.Second)
}

// Touching проверяет, что точки стоят вплотную по одной оси.
// Совпадающие точки (0) и соседи по диагонали (√2) не касаются.
func Touching(p1, p2 models.Point, a, b models.Endpoint) (Match, bool) {
	dx := math.Abs(float64(p2.X - p1.X))
	dy := math.Abs(float64(p2.Y - p1.Y))
	diagonal := math.Sqrt(dx*dx + dy*dy)

	if dx <= threshold && dy <= threshold && diagonal == threshold {
		return Match{First: a, Second: b}, true
	}
	return Match{}, false
}
