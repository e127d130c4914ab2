// Package bridge implements the control socket of a running ticketdesk
// instance: a line-delimited JSON protocol over a Unix socket that lets a
// second process invoke the same commands the frontend can, so window
// requests from the shell land in the one live window registry.
package bridge

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Request is the wire format for requests sent over the control socket.
type Request struct {
	Type      string          `json:"type"`                // "Invoke"
	Name      string          `json:"name,omitempty"`      // command name
	Arguments json.RawMessage `json:"arguments,omitempty"` // command arguments
}

// Response is the wire format for responses sent over the control socket.
type Response struct {
	Type    string          `json:"type"`              // "Result", "Error"
	Result  json.RawMessage `json:"result,omitempty"`  // JSON-encoded command result
	Code    int             `json:"code,omitempty"`    // error code
	Message string          `json:"message,omitempty"` // error message
}

// Invoker dispatches a named command. Implemented by the main app.
type Invoker interface {
	Invoke(name string, args json.RawMessage) (json.RawMessage, error)
}

// SocketPath returns the path to the control Unix socket.
// Creates the parent directory if it does not exist.
func SocketPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, _ = os.UserHomeDir()
	}
	dir := filepath.Join(configDir, "ticketdesk")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "control.sock")
}
