package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/peter-bloomfield/arduino-christmas-lights/internal/engine"
)

// Server exposes a frame preview stream and a command injection endpoint
// over websockets, plus a health probe. Frames flow out only; commands are
// never acknowledged back to the sender.
type Server struct {
	mu      sync.RWMutex
	eng     *engine.Engine
	clients map[*websocket.Conn]bool
	limit   *rate.Limiter
	start   time.Time
}

func New(eng *engine.Engine) *Server {
	s := &Server{
		eng:     eng,
		clients: map[*websocket.Conn]bool{},
		limit:   rate.NewLimiter(rate.Limit(25), 25),
		start:   time.Now(),
	}
	eng.OnFrame(s.broadcast)
	return s
}

// Routes registers the websocket and health handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.handleFrames)
	mux.HandleFunc("/control", s.handleControl)
	mux.HandleFunc("/health", s.handleHealth)
}

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

type controlMsg struct {
	Cmd string `json:"cmd"`
}

// handleControl accepts {"cmd":"<tokens>"} and replays the bytes into the
// engine's command queue, rate-limited so a chatty client cannot starve
// the serial path.
func (s *Server) handleControl(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg controlMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		for i := 0; i < len(msg.Cmd); i++ {
			if !s.limit.Allow() {
				log.Warn().Msg("control rate limit hit; dropping command bytes")
				break
			}
			s.eng.Enqueue(msg.Cmd[i])
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cycle, scheme := s.eng.State().Snapshot()
	resp := map[string]any{
		"uptime_s": time.Since(s.start).Seconds(),
		"frame_id": s.eng.FrameID(),
		"lights":   s.eng.Lights(),
		"cycle_s":  cycle,
		"scheme":   scheme.String(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// broadcast runs on the render loop goroutine; it copies the buffer before
// handing it to the websocket writers.
func (s *Server) broadcast(id uint64, rgb []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.clients) == 0 {
		return
	}
	type frame struct {
		T       int64  `json:"t"`
		FrameID uint64 `json:"frame_id"`
		RGB     []byte `json:"rgb"`
	}
	b, _ := json.Marshal(frame{T: time.Now().UnixNano(), FrameID: id, RGB: append([]byte{}, rgb...)})
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}
