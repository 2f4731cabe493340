package service

import (
	"sync"

	"circuit-board/internal/circuit/board"

	"github.com/google/uuid"
)

// ============================================================
// Board Manager
// ============================================================

type BoardManager struct {
	mu       sync.Mutex
	boards   map[string]*board.Board // boardID -> board
	cellSize int
}

func NewBoardManager(cellSize int) *BoardManager {
	return &BoardManager{
		boards:   make(map[string]*board.Board),
		cellSize: cellSize,
	}
}

// Create заводит новую доску под вьюпорт клиента.
func (m *BoardManager) Create(viewportWidth, viewportHeight int) *board.Board {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	b := board.New(id, board.Options{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		CellSize:       m.cellSize,
	})
	m.boards[id] = b
	return b
}

func (m *BoardManager) Resolve(id string) (*board.Board, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boards[id]
	return b, ok
}

func (m *BoardManager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.boards[id]; !ok {
		return false
	}
	delete(m.boards, id)
	return true
}

func (m *BoardManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.boards)
}
