package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestBoardManager(t *testing.T) {
	m := NewBoardManager(25)

	b := m.Create(800, 600)
	if _, err := uuid.Parse(b.ID()); err != nil {
		t.Fatalf("board id is not a uuid: %s", err)
	}
	if b.CellSize() != 25 {
		t.Fatalf("expected cell size 25, got %d", b.CellSize())
	}
	if state := b.State(); state.Columns != 32 || state.Rows != 24 {
		t.Fatalf("expected 32x24, got %dx%d", state.Columns, state.Rows)
	}

	other := m.Create(0, 0)
	if other.ID() == b.ID() {
		t.Fatal("board ids must be unique")
	}
	if m.Count() != 2 {
		t.Fatalf("expected 2 boards, got %d", m.Count())
	}

	got, ok := m.Resolve(b.ID())
	if !ok || got != b {
		t.Fatal("resolve returned a different board")
	}

	if !m.Remove(b.ID()) {
		t.Fatal("remove failed")
	}
	if m.Remove(b.ID()) {
		t.Fatal("second remove must report false")
	}
	if _, ok := m.Resolve(b.ID()); ok {
		t.Fatal("removed board still resolves")
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 board, got %d", m.Count())
	}
}
