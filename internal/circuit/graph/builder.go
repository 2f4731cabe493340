package graph

import (
	"sort"

	"circuit-board/internal/circuit/geometry"
	"circuit-board/internal/circuit/models"
)

// ============================================================
// Connectivity Builder
// ============================================================

// probe - одна из четырёх проверок концов пары (A, B).
type probe struct {
	first  func(start, end models.Point) models.Point
	second func(start, end models.Point) models.Point
	a, b   models.Endpoint
}

func startOf(start, _ models.Point) models.Point { return start }
func endOf(_, end models.Point) models.Point { return end }

// Порядок важен: срабатывает первая подходящая проверка.
var probes = []probe{
	{first: startOf, second: endOf, a: models.Start, b: models.End},
	{first: endOf, second: startOf, a: models.End, b: models.Start},
	{first: startOf, second: startOf, a: models.Start, b: models.Start},
	{first: endOf, second: endOf, a: models.End, b: models.End},
}

// Evaluate строит карту соединений для снимка элементов.
// Элементы обходятся в порядке id, поэтому пара (lo, hi) всегда проверяется
// раньше (hi, lo) и метка читается с точки зрения первого id ключа.
// При обходе в порядке бросков led-resistor получал бы "B-A", если резистор
// брошен раньше светодиода.
func Evaluate(elements []models.Element) models.Connections {
	items := make([]models.Element, len(elements))
	copy(items, elements)
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	connections := make(models.Connections)
	for _, first := range items {
		for _, second := range items {
			if first.ID == second.ID {
				continue
			}
			label, ok := Connected(first, second)
			if !ok {
				continue
			}
			key := models.NewPairKey(first.ID, second.ID)
			if _, exists := connections[key]; !exists {
				connections[key] = label
			}
		}
	}
	return connections
}

// Connected проверяет концы двух элементов и возвращает первую совпавшую метку.
func Connected(first, second models.Element) (models.Label, bool) {
	firstStart, firstEnd := geometry.Endpoints(first)
	secondStart, secondEnd := geometry.Endpoints(second)

	for _, p := range probes {
		m, ok := geometry.Touching(
			p.first(firstStart, firstEnd),
			p.second(secondStart, secondEnd),
			p.a, p.b,
		)
		if ok {
			return m.Label(), true
		}
	}
	return "", false
}

// Edges возвращает соединения списком, отсортированным по паре.
func Edges(connections models.Connections) []models.Edge {
	edges := make([]models.Edge, 0, len(connections))
	for pair, label := range connections {
		edges = append(edges, models.Edge{Pair: pair, Label: label})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Pair < edges[j].Pair })
	return edges
}
