package bridge

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"sync"
)

// Server listens on a Unix socket and routes Invoke requests to an Invoker.
type Server struct {
	invoker  Invoker
	listener net.Listener
	sockPath string
	wg       sync.WaitGroup
}

// NewServer creates a Server bound to the default socket path.
func NewServer(invoker Invoker) (*Server, error) {
	return NewServerAt(invoker, SocketPath())
}

// NewServerAt creates a Server bound to an explicit socket path.
func NewServerAt(invoker Invoker, sockPath string) (*Server, error) {
	// Remove stale socket file.
	_ = os.Remove(sockPath)

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return nil, err
	}

	return &Server{
		invoker:  invoker,
		listener: listener,
		sockPath: sockPath,
	}, nil
}

// Serve accepts connections and handles them. Blocks until the listener is closed.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Listener was closed.
			return err
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// Close shuts down the server: closes the listener, waits for connections,
// removes the socket.
func (s *Server) Close() {
	_ = s.listener.Close()
	s.wg.Wait()
	_ = os.Remove(s.sockPath)
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		resp := s.handleRequest(scanner.Text())

		data, err := json.Marshal(resp)
		if err != nil {
			data, _ = json.Marshal(Response{
				Type:    "Error",
				Code:    -1,
				Message: err.Error(),
			})
		}
		data = append(data, '\n')

		if _, err := conn.Write(data); err != nil {
			return
		}
	}
}

func (s *Server) handleRequest(line string) Response {
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return Response{
			Type:    "Error",
			Code:    -32700,
			Message: "parse error: " + err.Error(),
		}
	}

	switch req.Type {
	case "Invoke":
		result, err := s.invoker.Invoke(req.Name, req.Arguments)
		if err != nil {
			return Response{
				Type:    "Error",
				Code:    -32603,
				Message: err.Error(),
			}
		}
		return Response{
			Type:   "Result",
			Result: result,
		}

	default:
		return Response{
			Type:    "Error",
			Code:    -32601,
			Message: "unknown request type: " + req.Type,
		}
	}
}
