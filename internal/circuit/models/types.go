package models

import (
	"sort"
	"strings"
)

// ============================================================
// Elements
// ============================================================

type ElementID string

const (
	Source   ElementID = "source"
	Resistor ElementID = "resistor"
	LED      ElementID = "led"
)

// Valid сообщает, является ли id одним из трёх элементов доски.
func (id ElementID) Valid() bool {
	switch id {
	case Source, Resistor, LED:
		return true
	}
	return false
}

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

type Element struct {
	ID          ElementID   `json:"id"`
	Orientation Orientation `json:"orientation"`
	Size        int         `json:"size"`
	X           int         `json:"x"`
	Y           int         `json:"y"`
}

// ============================================================
// Geometry primitives
// ============================================================

// Point - координата клетки сетки.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Endpoint обозначает конец элемента: A - начало, B - конец.
type Endpoint string

const (
	Start Endpoint = "A"
	End   Endpoint = "B"
)

// ============================================================
// Connectivity
// ============================================================

// Label описывает, какой конец первого элемента коснулся какого конца второго.
type Label string

const (
	LabelStartEnd   Label = "A-B"
	LabelEndStart   Label = "B-A"
	LabelStartStart Label = "A-A"
	LabelEndEnd     Label = "B-B"
)

func NewLabel(first, second Endpoint) Label {
	return Label(string(first) + "-" + string(second))
}

// PairKey - неупорядоченная пара элементов: id отсортированы и склеены через "-".
type PairKey string

func NewPairKey(a, b ElementID) PairKey {
	ids := []string{string(a), string(b)}
	sort.Strings(ids)
	return PairKey(strings.Join(ids, "-"))
}

// Connections хранит не более одной метки на пару.
type Connections map[PairKey]Label

type Edge struct {
	Pair  PairKey `json:"pair"`
	Label Label   `json:"label"`
}

// ============================================================
// Board state
// ============================================================

type State struct {
	ID          string      `json:"id"`
	Columns     int         `json:"columns"`
	Rows        int         `json:"rows"`
	CellSize    int         `json:"cell_size"`
	Elements    []Element   `json:"elements"`
	Placed      []ElementID `json:"placed"`
	Connections Connections `json:"connections"`
	Lit         bool        `json:"lit"`
	Revision    int         `json:"revision"`
}
