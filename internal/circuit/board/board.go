package board

import (
	"errors"
	"fmt"
	"sync"

	"circuit-board/internal/circuit/geometry"
	"circuit-board/internal/circuit/graph"
	"circuit-board/internal/circuit/models"
	"circuit-board/internal/circuit/rule"
)

// ============================================================
// Board
// ============================================================

var ErrUnknownElement = errors.New("unknown element")

const (
	EventDragStart = "drag-start"
	EventDragStop  = "drag-stop"
)

// Observer вызывается под замком доски, поэтому получает ревизии строго по
// возрастанию. Не должен блокироваться и обращаться к доске.
type Observer func(event string, state models.State)

const (
	DefaultCellSize = 50
	viewportStep    = 100
	defaultViewport = 1000
)

// DefaultLayout - три элемента в начале сетки с фиксированными размерами.
func DefaultLayout() []models.Element {
	return []models.Element{
		{ID: models.Source, Orientation: models.Vertical, Size: 3},
		{ID: models.Resistor, Orientation: models.Horizontal, Size: 4},
		{ID: models.LED, Orientation: models.Horizontal, Size: 2},
	}
}

type Options struct {
	ViewportWidth  int
	ViewportHeight int
	CellSize       int
}

// registry - позиции размещённых элементов в порядке первого броска.
// После создания не меняется: DragStop собирает новый и подменяет целиком.
type registry struct {
	order    []models.ElementID
	elements map[models.ElementID]models.Element
}

func (r registry) with(e models.Element) registry {
	next := registry{
		order:    append([]models.ElementID{}, r.order...),
		elements: make(map[models.ElementID]models.Element, len(r.elements)+1),
	}
	for id, el := range r.elements {
		next.elements[id] = el
	}
	if _, ok := next.elements[e.ID]; !ok {
		next.order = append(next.order, e.ID)
	}
	next.elements[e.ID] = e
	return next
}

func (r registry) snapshot() []models.Element {
	out := make([]models.Element, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.elements[id])
	}
	return out
}

type Board struct {
	mu sync.Mutex

	id       string
	cellSize int
	columns  int
	rows     int
	layout   []models.Element

	registry    registry
	connections models.Connections
	lit         bool
	revision    int
	observer    Observer
}

func New(id string, opts Options) *Board {
	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}

	layout := DefaultLayout()
	minCells := 1
	for _, e := range layout {
		if e.Size > minCells {
			minCells = e.Size
		}
	}

	return &Board{
		id:          id,
		cellSize:    cell,
		columns:     gridCells(opts.ViewportWidth, cell, minCells),
		rows:        gridCells(opts.ViewportHeight, cell, minCells),
		layout:      layout,
		registry:    registry{elements: map[models.ElementID]models.Element{}},
		connections: models.Connections{},
	}
}

// gridCells округляет вьюпорт вниз до сотни пикселей и переводит в клетки.
func gridCells(viewport, cell, minCells int) int {
	if viewport <= 0 {
		viewport = defaultViewport
	}
	px := (viewport / viewportStep) * viewportStep
	cells := px / cell
	if cells < minCells {
		return minCells
	}
	return cells
}

func (b *Board) ID() string {
	return b.id
}

func (b *Board) CellSize() int {
	return b.cellSize
}

// DragStart гасит светодиод, как только плитку взяли.
func (b *Board) DragStart(id models.ElementID) (models.State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.element(id); err != nil {
		return models.State{}, err
	}

	b.lit = false
	b.revision++
	return b.commit(EventDragStart), nil
}

// DragStop записывает новую позицию элемента (в клетках) и пересчитывает схему.
func (b *Board) DragStop(id models.ElementID, x, y int) (models.State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, err := b.element(id)
	if err != nil {
		return models.State{}, err
	}

	e.X, e.Y = b.clamp(e, x, y)
	next := b.registry.with(e)

	connections := graph.Evaluate(next.snapshot())

	b.registry = next
	b.connections = connections
	b.lit = rule.Lit(connections)
	b.revision++
	return b.commit(EventDragStop), nil
}

// Observe подписывает fn на все последующие события доски.
func (b *Board) Observe(fn Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.observer = fn
}

// commit снимает состояние и отдаёт его наблюдателю, не отпуская замок.
func (b *Board) commit(event string) models.State {
	state := b.state()
	if b.observer != nil {
		b.observer(event, state)
	}
	return state
}

func (b *Board) State() models.State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state()
}

// element возвращает элемент с текущей позицией: из реестра, если он уже
// был брошен, иначе из начальной раскладки.
func (b *Board) element(id models.ElementID) (models.Element, error) {
	if e, ok := b.registry.elements[id]; ok {
		return e, nil
	}
	for _, e := range b.layout {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, id)
}

// clamp держит плитку целиком внутри сетки.
func (b *Board) clamp(e models.Element, x, y int) (int, int) {
	cols, rows := geometry.Cells(e)
	return clampInt(x, 0, b.columns-cols), clampInt(y, 0, b.rows-rows)
}

func clampInt(v, min, max int) int {
	if max < min {
		max = min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (b *Board) state() models.State {
	elements := make([]models.Element, 0, len(b.layout))
	for _, e := range b.layout {
		if placed, ok := b.registry.elements[e.ID]; ok {
			e = placed
		}
		elements = append(elements, e)
	}

	connections := make(models.Connections, len(b.connections))
	for k, v := range b.connections {
		connections[k] = v
	}

	return models.State{
		ID:          b.id,
		Columns:     b.columns,
		Rows:        b.rows,
		CellSize:    b.cellSize,
		Elements:    elements,
		Placed:      append([]models.ElementID{}, b.registry.order...),
		Connections: connections,
		Lit:         b.lit,
		Revision:    b.revision,
	}
}
