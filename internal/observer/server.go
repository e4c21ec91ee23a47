// Package observer streams simulation frames to read-only websocket
// clients: one RLE-encoded grid per spin tick.
package observer

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const Version = "1.0"

type BootstrapResponse struct {
	ProtocolVersion string `json:"protocol_version"`
	Source          string `json:"source"`
	Tick            uint64 `json:"tick"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
}

type SubscribeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
}

type Frame struct {
	Type     string `json:"type"` // always "FRAME"
	Tick     uint64 `json:"tick"`
	Load     int64  `json:"load"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CellsRLE string `json:"cells_rle"`
}

type Server struct {
	source string
	log    *zap.Logger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu   sync.Mutex
	last Frame
	subs map[uint64]chan []byte
}

func NewServer(source string, logger *zap.Logger) *Server {
	return &Server{
		source: source,
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		subs: map[uint64]chan []byte{},
	}
}

// Publish fans a frame out to every subscriber. Slow subscribers drop
// frames rather than stalling the simulation loop.
func (s *Server) Publish(f Frame) {
	f.Type = "FRAME"
	b, err := json.Marshal(f)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.last = f
	for id, ch := range s.subs {
		select {
		case ch <- b:
		default:
			s.log.Debug("observer frame dropped", zap.Uint64("sub", id), zap.Uint64("tick", f.Tick))
		}
	}
	s.mu.Unlock()
}

func (s *Server) BootstrapHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		s.mu.Lock()
		last := s.last
		s.mu.Unlock()

		resp := BootstrapResponse{
			ProtocolVersion: Version,
			Source:          s.source,
			Tick:            last.Tick,
			Width:           last.Width,
			Height:          last.Height,
		}
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(resp)
	}
}

func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Handshake: must send SUBSCRIBE first.
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var sub SubscribeMsg
		if err := json.Unmarshal(msg, &sub); err != nil || sub.Type != "SUBSCRIBE" || sub.ProtocolVersion != Version {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected SUBSCRIBE"),
				time.Now().Add(time.Second))
			return
		}

		id := s.nextID.Add(1)
		out := make(chan []byte, 8)

		s.mu.Lock()
		s.subs[id] = out
		s.mu.Unlock()
		defer func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		}()

		s.log.Info("observer subscribed", zap.Uint64("sub", id), zap.String("remote", r.RemoteAddr))

		// Reader goroutine only watches for close.
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn.SetReadLimit(1024)
			_ = conn.SetReadDeadline(time.Time{})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				return
			case b := <-out:
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					return
				}
			}
		}
	}
}

func isLoopbackRemote(remote string) bool {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		host = remote
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
