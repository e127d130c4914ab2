package window

import (
	"errors"

	"go.uber.org/zap"
)

// ErrClosed is returned by Manager operations after Close.
var ErrClosed = errors.New("window manager closed")

// Manager routes all window-affecting host calls through a single dispatch
// goroutine. The existence check and the subsequent create are therefore
// atomic with respect to other requests: two concurrent opens for the same
// ticket cannot both observe "no window" and both create one.
//
// Host failures are returned to the caller unmodified; there is no retry.
type Manager struct {
	host Host
	base string
	log  *zap.Logger

	reqs chan request
	quit chan struct{}
}

type request struct {
	fn    func() error
	reply chan error
}

// NewManager creates a Manager dispatching to the given host. baseURL is
// the frontend origin ticket URLs are resolved against. A nil logger
// disables logging.
func NewManager(host Host, baseURL string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		host: host,
		base: baseURL,
		log:  log,
		reqs: make(chan request),
		quit: make(chan struct{}),
	}
	go m.loop()
	return m
}

func (m *Manager) loop() {
	for {
		select {
		case req := <-m.reqs:
			req.reply <- req.fn()
		case <-m.quit:
			return
		}
	}
}

// dispatch runs fn on the dispatch goroutine and waits for its result.
func (m *Manager) dispatch(fn func() error) error {
	reply := make(chan error, 1)
	select {
	case m.reqs <- request{fn: fn, reply: reply}:
		return <-reply
	case <-m.quit:
		return ErrClosed
	}
}

// Close stops the dispatch loop. Pending and later calls return ErrClosed.
func (m *Manager) Close() {
	select {
	case <-m.quit:
	default:
		close(m.quit)
	}
}

// OpenOrFocusTicket ensures exactly one visible window presents the ticket
// detail view for id: it focuses the existing window with the derived
// label, or creates one on first request. The new window's handle is not
// retained; later requests re-find it by label.
func (m *Manager) OpenOrFocusTicket(id uint32) error {
	return m.Show(TicketOptions(id, m.base))
}

// Show ensures a window with opts.Label exists and is frontmost. Existing
// windows are focused, not recreated.
func (m *Manager) Show(opts Options) error {
	return m.dispatch(func() error {
		if m.host.Find(opts.Label) {
			m.log.Debug("focusing window", zap.String("label", opts.Label))
			return m.host.Focus(opts.Label)
		}
		m.log.Info("creating window",
			zap.String("label", opts.Label),
			zap.String("title", opts.Title),
			zap.String("url", opts.URL))
		return m.host.Create(opts)
	})
}
