package bridge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
)

// Client connects to the control socket of a running ticketdesk instance.
type Client struct {
	sockPath string
}

// NewClient creates a Client for the default socket path.
func NewClient() *Client {
	return &Client{sockPath: SocketPath()}
}

// NewClientAt creates a Client for an explicit socket path.
func NewClientAt(sockPath string) *Client {
	return &Client{sockPath: sockPath}
}

// Invoke sends an Invoke request and returns the raw JSON result.
// Opens a fresh connection per call.
func (c *Client) Invoke(name string, args json.RawMessage) (json.RawMessage, error) {
	resp, err := c.send(Request{
		Type:      "Invoke",
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, fmt.Errorf("control request failed: %w", err)
	}
	if resp.Type == "Error" {
		return nil, fmt.Errorf("%s", resp.Message)
	}
	return resp.Result, nil
}

// send opens a connection, writes the request, reads one response, and closes.
func (c *Client) send(req Request) (*Response, error) {
	conn, err := net.Dial("unix", c.sockPath)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to ticketdesk at %s: %w (is the app running?)", c.sockPath, err)
	}
	defer conn.Close()

	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')

	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read failed: %w", err)
		}
		return nil, fmt.Errorf("control socket closed connection")
	}

	var resp Response
	if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}
	return &resp, nil
}
