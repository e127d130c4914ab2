package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

// echoInvoker answers every command with its own name; "fail" errors.
type echoInvoker struct{}

func (echoInvoker) Invoke(name string, args json.RawMessage) (json.RawMessage, error) {
	if name == "fail" {
		return nil, errors.New("nope")
	}
	return json.Marshal(name)
}

func startTestIPC(t *testing.T) *ipcServer {
	t.Helper()
	s := newIPCServer(echoInvoker{}, nil)
	if _, err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("start ipc server: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func wsURL(s *ipcServer, token string) string {
	u := "ws" + strings.TrimPrefix(s.BaseURL(), "http") + "/ipc"
	if token != "" {
		u += "?token=" + token
	}
	return u
}

func TestIPCInvokeRoundTrip(t *testing.T) {
	s := startTestIPC(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(s, s.Token()), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(invokeMsg{ID: "1", Cmd: "greet"}); err != nil {
		t.Fatal(err)
	}
	var reply replyMsg
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.ID != "1" || !reply.OK {
		t.Fatalf("reply = %+v, want ok with id 1", reply)
	}
	if string(reply.Result) != `"greet"` {
		t.Errorf("result = %s, want %q", reply.Result, `"greet"`)
	}
}

func TestIPCInvokeErrorReply(t *testing.T) {
	s := startTestIPC(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(s, s.Token()), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(invokeMsg{ID: "2", Cmd: "fail"}); err != nil {
		t.Fatal(err)
	}
	var reply replyMsg
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.OK {
		t.Fatal("expected error reply")
	}
	if reply.Error != "nope" {
		t.Errorf("error = %q, want %q", reply.Error, "nope")
	}
}

func TestIPCRejectsBadToken(t *testing.T) {
	s := startTestIPC(t)

	for _, token := range []string{"", "wrong"} {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(s, token), nil)
		if err == nil {
			t.Fatalf("token %q: expected handshake failure", token)
		}
		if resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Errorf("token %q: status = %v, want 403", token, resp)
		}
	}
}

func TestIPCConcurrentInvokes(t *testing.T) {
	s := startTestIPC(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(s, s.Token()), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	const n = 8
	for i := 0; i < n; i++ {
		if err := conn.WriteJSON(invokeMsg{ID: fmt.Sprint(i), Cmd: "ping"}); err != nil {
			t.Fatal(err)
		}
	}

	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		var reply replyMsg
		if err := conn.ReadJSON(&reply); err != nil {
			t.Fatal(err)
		}
		if !reply.OK {
			t.Fatalf("reply %s not ok: %s", reply.ID, reply.Error)
		}
		seen[reply.ID] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct replies, want %d", len(seen), n)
	}
}

func TestIndexServesFrontend(t *testing.T) {
	s := startTestIPC(t)

	resp, err := http.Get(s.BaseURL() + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "<!DOCTYPE html>") {
		t.Error("index did not serve the embedded frontend")
	}

	resp, err = http.Get(s.BaseURL() + "/missing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status for unknown path = %d, want 404", resp.StatusCode)
	}
}
