package events

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"circuit-board/internal/circuit/models"

	"github.com/r3labs/sse/v2"
)

// ============================================================
// Board Event Stream
// ============================================================

// EventClosed уходит подписчикам перед удалением доски; события
// перетаскивания называются как board.EventDragStart и board.EventDragStop.
const EventClosed = "closed"

// Stream публикует состояние досок по SSE: один поток на доску,
// клиент подписывается через ?stream=<boardID>.
type Stream struct {
	s *sse.Server
}

func NewStream() *Stream {
	s := sse.New()
	s.AutoReplay = false
	return &Stream{s: s}
}

func (s *Stream) Open(boardID string) {
	s.s.CreateStream(boardID)
}

func (s *Stream) Close(boardID string) {
	s.s.TryPublish(boardID, &sse.Event{Event: []byte(EventClosed), Data: []byte(boardID)})
	s.s.RemoveStream(boardID)
}

func (s *Stream) Publish(event string, state models.State) {
	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("[EVENTS] marshal json: %s", err)
		return
	}
	s.s.TryPublish(state.ID, &sse.Event{
		Event: []byte(event),
		Data:  data,
	})
}

func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Страница отдаётся с другого порта.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	s.s.ServeHTTP(w, r)
}

func (s *Stream) Shutdown() {
	s.s.Close()
}

// NewServer отдаёт поток по /events на отдельном адресе.
func NewServer(addr string, s *Stream) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/events", s)
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
