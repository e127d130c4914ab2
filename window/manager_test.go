package window

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

// fakeHost is an in-memory window host. It tracks live windows by label
// and records every create and focus call.
type fakeHost struct {
	mu        sync.Mutex
	windows   map[string]Options
	creates   []string
	focuses   []string
	focusErr  error
	createErr error
}

func newFakeHost() *fakeHost {
	return &fakeHost{windows: make(map[string]Options)}
}

func (h *fakeHost) Find(label string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.windows[label]
	return ok
}

func (h *fakeHost) Create(opts Options) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.createErr != nil {
		return h.createErr
	}
	if _, ok := h.windows[opts.Label]; ok {
		return fmt.Errorf("duplicate window label %q", opts.Label)
	}
	h.windows[opts.Label] = opts
	h.creates = append(h.creates, opts.Label)
	return nil
}

func (h *fakeHost) Focus(label string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.focusErr != nil {
		return h.focusErr
	}
	if _, ok := h.windows[label]; !ok {
		return fmt.Errorf("no window with label %q", label)
	}
	h.focuses = append(h.focuses, label)
	return nil
}

// destroy simulates the user closing a window, outside the manager's control.
func (h *fakeHost) destroy(label string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.windows, label)
}

func (h *fakeHost) counts() (creates, focuses int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.creates), len(h.focuses)
}

func TestFirstCallCreatesWindow(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	defer m.Close()

	if err := m.OpenOrFocusTicket(42); err != nil {
		t.Fatalf("OpenOrFocusTicket(42) error: %v", err)
	}

	creates, focuses := host.counts()
	if creates != 1 || focuses != 0 {
		t.Fatalf("creates = %d, focuses = %d, want 1, 0", creates, focuses)
	}

	opts := host.windows["ticket-42"]
	if opts.Title != "Ticket #42" {
		t.Errorf("Title = %q, want %q", opts.Title, "Ticket #42")
	}
	if opts.Width != 1000 || opts.Height != 800 || opts.MinWidth != 600 || opts.MinHeight != 400 {
		t.Errorf("geometry = %+v, want 1000x800 min 600x400", opts)
	}
	if !opts.Center {
		t.Error("window not centered")
	}
}

func TestRepeatCallsFocusExistingWindow(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	defer m.Close()

	for i := 0; i < 5; i++ {
		if err := m.OpenOrFocusTicket(7); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	creates, focuses := host.counts()
	if creates != 1 {
		t.Errorf("creates = %d, want 1 (window must not be recreated)", creates)
	}
	if focuses != 4 {
		t.Errorf("focuses = %d, want 4", focuses)
	}
}

func TestDistinctTicketsGetDistinctWindows(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	defer m.Close()

	for _, id := range []uint32{1, 2, 3} {
		if err := m.OpenOrFocusTicket(id); err != nil {
			t.Fatalf("OpenOrFocusTicket(%d): %v", id, err)
		}
	}
	if len(host.windows) != 3 {
		t.Errorf("live windows = %d, want 3", len(host.windows))
	}
}

func TestRecreateAfterUserClose(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	defer m.Close()

	if err := m.OpenOrFocusTicket(3); err != nil {
		t.Fatal(err)
	}
	host.destroy("ticket-3")
	if err := m.OpenOrFocusTicket(3); err != nil {
		t.Fatal(err)
	}

	creates, _ := host.counts()
	if creates != 2 {
		t.Errorf("creates = %d, want 2 (window recreated after close)", creates)
	}
}

func TestFocusErrorSurfacesHostDiagnostic(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	defer m.Close()

	if err := m.OpenOrFocusTicket(1); err != nil {
		t.Fatal(err)
	}
	host.focusErr = errors.New("E")

	err := m.OpenOrFocusTicket(1)
	if err == nil {
		t.Fatal("expected focus error, got nil")
	}
	if err.Error() != "E" {
		t.Errorf("error = %q, want host diagnostic %q unmodified", err.Error(), "E")
	}
}

func TestCreateErrorSurfacesHostDiagnostic(t *testing.T) {
	host := newFakeHost()
	host.createErr = errors.New("display unavailable")
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	defer m.Close()

	err := m.OpenOrFocusTicket(1)
	if err == nil {
		t.Fatal("expected create error, got nil")
	}
	if err.Error() != "display unavailable" {
		t.Errorf("error = %q, want %q", err.Error(), "display unavailable")
	}
}

func TestConcurrentRequestsForSameTicket(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	defer m.Close()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.OpenOrFocusTicket(99)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("request %d failed: %v", i, err)
		}
	}
	creates, focuses := host.counts()
	if creates != 1 {
		t.Errorf("creates = %d, want exactly 1 despite concurrent requests", creates)
	}
	if focuses != n-1 {
		t.Errorf("focuses = %d, want %d", focuses, n-1)
	}
}

func TestClosedManagerRejectsRequests(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, "http://127.0.0.1:9000", nil)
	m.Close()

	if err := m.OpenOrFocusTicket(1); !errors.Is(err, ErrClosed) {
		t.Errorf("error after Close = %v, want ErrClosed", err)
	}
	// Close is idempotent.
	m.Close()
}
