package main

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"ticketdesk/window"
)

// handler is a command callable from the frontend IPC channel or the
// control socket. Arguments arrive as raw JSON; the result is marshaled
// back to the caller.
type handler func(args json.RawMessage) (any, error)

// commandRouter maps command names to handlers. It implements
// bridge.Invoker, so both invocation channels share one dispatch table.
type commandRouter struct {
	log *zap.Logger

	mu       sync.RWMutex
	handlers map[string]handler
}

func newCommandRouter(log *zap.Logger) *commandRouter {
	if log == nil {
		log = zap.NewNop()
	}
	return &commandRouter{
		log:      log,
		handlers: make(map[string]handler),
	}
}

func (r *commandRouter) register(name string, h handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Invoke dispatches a named command with JSON arguments.
func (r *commandRouter) Invoke(name string, args json.RawMessage) (json.RawMessage, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	result, err := h(args)
	if err != nil {
		r.log.Debug("command failed", zap.String("command", name), zap.Error(err))
		return nil, err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal result of %s: %w", name, err)
	}
	return data, nil
}

// Greet formats the greeting returned by the greet command. Pure and
// stateless; the format slots are part of the frontend contract.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// registerAppCommands wires the callable surface exposed to the frontend.
func registerAppCommands(r *commandRouter, windows *window.Manager) {
	r.register("greet", func(args json.RawMessage) (any, error) {
		var p struct {
			Name string `json:"name"`
		}
		if len(args) > 0 {
			if err := json.Unmarshal(args, &p); err != nil {
				return nil, fmt.Errorf("invalid greet arguments: %w", err)
			}
		}
		return Greet(p.Name), nil
	})

	r.register("open_ticket_window", func(args json.RawMessage) (any, error) {
		var p struct {
			TicketID uint32 `json:"ticket_id"`
		}
		if len(args) > 0 {
			if err := json.Unmarshal(args, &p); err != nil {
				return nil, fmt.Errorf("invalid open_ticket_window arguments: %w", err)
			}
		}
		return nil, windows.OpenOrFocusTicket(p.TicketID)
	})
}
