package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"circuit-board/internal/circuit/board"
	"circuit-board/internal/circuit/geometry"
	"circuit-board/internal/circuit/mapper"
	"circuit-board/internal/circuit/models"
	"circuit-board/internal/circuit/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Board Handler
// ============================================================

// Publisher получает состояние доски после каждого события перетаскивания.
// Publish вызывается под замком доски и не должен блокироваться.
type Publisher interface {
	Open(boardID string)
	Close(boardID string)
	Publish(event string, state models.State)
}

type BoardHandler struct {
	boards   *service.BoardManager
	stream   Publisher
	renderer *mapper.Renderer
}

func NewBoardHandler(boards *service.BoardManager, stream Publisher) *BoardHandler {
	return &BoardHandler{
		boards:   boards,
		stream:   stream,
		renderer: mapper.NewRenderer(),
	}
}

type createRequest struct {
	ViewportWidth  int `json:"viewport_width"`
	ViewportHeight int `json:"viewport_height"`
}

type dragStartRequest struct {
	Element models.ElementID `json:"element"`
}

// dragStopRequest несёт смещение плитки в пикселях, как его отдаёт страница.
type dragStopRequest struct {
	Element models.ElementID `json:"element"`
	X       float64          `json:"x"`
	Y       float64          `json:"y"`
}

// Create заводит доску; тело запроса необязательно.
func (h *BoardHandler) Create(c fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}
	}

	b := h.boards.Create(req.ViewportWidth, req.ViewportHeight)
	if h.stream != nil {
		h.stream.Open(b.ID())
		b.Observe(h.stream.Publish)
	}

	state := b.State()
	log.Printf("[BOARD] Created %s (%dx%d cells)", state.ID, state.Columns, state.Rows)
	return c.Status(http.StatusCreated).JSON(state)
}

func (h *BoardHandler) Get(c fiber.Ctx) error {
	b, ok := h.boards.Resolve(c.Params("id"))
	if !ok {
		return boardNotFound(c)
	}
	return c.JSON(b.State())
}

func (h *BoardHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")
	if !h.boards.Remove(id) {
		return boardNotFound(c)
	}
	if h.stream != nil {
		h.stream.Close(id)
	}

	log.Printf("[BOARD] Removed %s", id)
	return c.SendStatus(http.StatusNoContent)
}

// DragStart гасит светодиод, пока плитку держат.
func (h *BoardHandler) DragStart(c fiber.Ctx) error {
	b, ok := h.boards.Resolve(c.Params("id"))
	if !ok {
		return boardNotFound(c)
	}

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}
	var req dragStartRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	state, err := b.DragStart(req.Element)
	if err != nil {
		return dragError(c, err)
	}

	return c.JSON(state)
}

// DragStop фиксирует бросок и возвращает пересчитанную схему.
func (h *BoardHandler) DragStop(c fiber.Ctx) error {
	b, ok := h.boards.Resolve(c.Params("id"))
	if !ok {
		return boardNotFound(c)
	}

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}
	var req dragStopRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	x := geometry.Snap(req.X, b.CellSize())
	y := geometry.Snap(req.Y, b.CellSize())
	state, err := b.DragStop(req.Element, x, y)
	if err != nil {
		return dragError(c, err)
	}

	log.Printf("[BOARD] %s: %s dropped at (%d,%d), lit=%t, connections=%v",
		state.ID, req.Element, x, y, state.Lit, state.Connections)
	return c.JSON(state)
}

// SVG отдаёт текущую доску картинкой.
func (h *BoardHandler) SVG(c fiber.Ctx) error {
	b, ok := h.boards.Resolve(c.Params("id"))
	if !ok {
		return boardNotFound(c)
	}

	state := b.State()
	svg, err := h.renderer.Render(&state)
	if err != nil {
		log.Printf("[BOARD] Render error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

// ============================================================
// Helpers
// ============================================================

func boardNotFound(c fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "board not found"})
}

func dragError(c fiber.Ctx, err error) error {
	if errors.Is(err, board.ErrUnknownElement) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Printf("[BOARD] Drag error: %v", err)
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
