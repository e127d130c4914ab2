package main

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"ticketdesk/bridge"
)

// invokeMsg is a command invocation from the frontend.
type invokeMsg struct {
	ID   string          `json:"id"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// replyMsg is the response to a single invokeMsg, correlated by ID.
type replyMsg struct {
	ID     string          `json:"id"`
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ipcServer serves the embedded frontend over loopback HTTP and exposes
// the command surface to it over a websocket. The upgrade is gated by a
// one-time token so only windows this process opened can invoke commands.
type ipcServer struct {
	invoker  bridge.Invoker
	log      *zap.Logger
	token    string
	upgrader websocket.Upgrader

	srv  *http.Server
	ln   net.Listener
	base string
}

func newIPCServer(invoker bridge.Invoker, log *zap.Logger) *ipcServer {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ipcServer{
		invoker: invoker,
		log:     log,
		token:   uuid.NewString(),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

// checkOrigin admits same-host origins and non-browser clients only.
func (s *ipcServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return origin == "http://"+r.Host
}

// Start binds the listener and begins serving. Returns the base URL of
// the frontend origin (http://127.0.0.1:<port>).
func (s *ipcServer) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}
	s.ln = ln
	s.base = "http://" + ln.Addr().String()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ipc", s.handleIPC)

	s.srv = &http.Server{Handler: mux}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("frontend server stopped", zap.Error(err))
		}
	}()

	s.log.Info("frontend server listening", zap.String("addr", s.base))
	return s.base, nil
}

// BaseURL returns the frontend origin. Valid after Start.
func (s *ipcServer) BaseURL() string { return s.base }

// Token returns the one-time IPC token. The main window URL carries it;
// satellite windows read it from localStorage, keeping their URLs clean.
func (s *ipcServer) Token() string { return s.token }

func (s *ipcServer) Close() {
	if s.srv != nil {
		_ = s.srv.Close()
	}
}

func (s *ipcServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(frontendHTML))
}

func (s *ipcServer) handleIPC(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("token") != s.token {
		s.log.Warn("rejected ipc connection with bad token", zap.String("remote", r.RemoteAddr))
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("ipc upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Gorilla allows a single concurrent writer per connection.
	var writeMu sync.Mutex

	for {
		var msg invokeMsg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("ipc connection closed", zap.Error(err))
			}
			return
		}
		// Each invocation runs as its own task; serialization of window
		// operations happens inside the window manager.
		go s.handleInvoke(conn, &writeMu, msg)
	}
}

func (s *ipcServer) handleInvoke(conn *websocket.Conn, writeMu *sync.Mutex, msg invokeMsg) {
	result, err := s.invoker.Invoke(msg.Cmd, msg.Args)

	reply := replyMsg{ID: msg.ID, OK: err == nil, Result: result}
	if err != nil {
		reply.Error = err.Error()
	}

	writeMu.Lock()
	defer writeMu.Unlock()
	if err := conn.WriteJSON(reply); err != nil {
		s.log.Debug("ipc write failed", zap.Error(err))
	}
}
