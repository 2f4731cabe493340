package geometry

import (
	"testing"

	"circuit-board/internal/circuit/models"
)

func TestEndpoints(t *testing.T) {
	cases := []struct {
		name       string
		e          models.Element
		start, end models.Point
	}{
		{"horizontal", models.Element{Orientation: models.Horizontal, Size: 4, X: 2, Y: 5}, models.Point{X: 2, Y: 5}, models.Point{X: 5, Y: 5}},
		{"vertical", models.Element{Orientation: models.Vertical, Size: 3, X: 0, Y: 0}, models.Point{X: 0, Y: 0}, models.Point{X: 0, Y: 2}},
		{"single cell", models.Element{Orientation: models.Horizontal, Size: 1, X: 7, Y: 1}, models.Point{X: 7, Y: 1}, models.Point{X: 7, Y: 1}},
		{"unknown orientation falls back to vertical", models.Element{Orientation: "diagonal", Size: 2, X: 1, Y: 1}, models.Point{X: 1, Y: 1}, models.Point{X: 1, Y: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := Endpoints(tc.e)
			if start != tc.start || end != tc.end {
				t.Fatalf("expected %v-%v, got %v-%v", tc.start, tc.end, start, end)
			}
		})
	}
}

func TestTouching(t *testing.T) {
	origin := models.Point{X: 3, Y: 3}
	cases := []struct {
		name  string
		other models.Point
		want  bool
	}{
		{"right", models.Point{X: 4, Y: 3}, true},
		{"left", models.Point{X: 2, Y: 3}, true},
		{"above", models.Point{X: 3, Y: 2}, true},
		{"below", models.Point{X: 3, Y: 4}, true},
		{"coincident", models.Point{X: 3, Y: 3}, false},
		{"diagonal", models.Point{X: 4, Y: 4}, false},
		{"two cells", models.Point{X: 5, Y: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := Touching(origin, tc.other, models.Start, models.End)
			if ok != tc.want {
				t.Fatalf("expected %t, got %t", tc.want, ok)
			}
			if ok && m.Label() != models.LabelStartEnd {
				t.Fatalf("expected label %q, got %q", models.LabelStartEnd, m.Label())
			}
			if !ok && m != (Match{}) {
				t.Fatalf("expected empty match, got %#v", m)
			}
		})
	}
}

func TestTouchingReturnsTags(t *testing.T) {
	m, ok := Touching(models.Point{X: 0, Y: 0}, models.Point{X: 0, Y: 1}, models.End, models.Start)
	if !ok {
		t.Fatal("expected match")
	}
	if m.First != models.End || m.Second != models.Start {
		t.Fatalf("tags swapped: %#v", m)
	}
}

func TestDimensions(t *testing.T) {
	if w, h := Dimensions(4, models.Horizontal, 50); w != 200 || h != 50 {
		t.Fatalf("horizontal: got %dx%d", w, h)
	}
	if w, h := Dimensions(3, models.Vertical, 50); w != 50 || h != 150 {
		t.Fatalf("vertical: got %dx%d", w, h)
	}
	if w, h := Dimensions(2, "", 10); w != 10 || h != 20 {
		t.Fatalf("fallback: got %dx%d", w, h)
	}
}

func TestSnap(t *testing.T) {
	cases := map[float64]int{0: 0, 50: 1, 74: 1, 75: 2, 149.9: 3, -50: -1}
	for px, want := range cases {
		if got := Snap(px, 50); got != want {
			t.Errorf("Snap(%v): expected %d, got %d", px, want, got)
		}
	}
	if got := Snap(100, 0); got != 0 {
		t.Errorf("zero cell: expected 0, got %d", got)
	}
}
