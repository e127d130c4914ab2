package window

import (
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		id   uint32
		want string
	}{
		{0, "ticket-0"},
		{1, "ticket-1"},
		{42, "ticket-42"},
		{1000000, "ticket-1000000"},
		{4294967295, "ticket-4294967295"},
	}
	for _, tt := range tests {
		if got := Label(tt.id); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestLabelDeterministic(t *testing.T) {
	for _, id := range []uint32{0, 7, 42, 99999} {
		if Label(id) != Label(id) {
			t.Errorf("Label(%d) not stable across calls", id)
		}
	}
}

func TestLabelInjective(t *testing.T) {
	ids := []uint32{0, 1, 2, 10, 12, 21, 42, 100, 420, 4294967295}
	seen := make(map[string]uint32, len(ids))
	for _, id := range ids {
		label := Label(id)
		if prev, ok := seen[label]; ok {
			t.Errorf("Label collision: ids %d and %d both map to %q", prev, id, label)
		}
		seen[label] = id
	}
}

func TestTicketPath(t *testing.T) {
	if got, want := TicketPath(42), "/?ticketWindow=true#/ticket/42"; got != want {
		t.Errorf("TicketPath(42) = %q, want %q", got, want)
	}
	if got, want := TicketPath(0), "/?ticketWindow=true#/ticket/0"; got != want {
		t.Errorf("TicketPath(0) = %q, want %q", got, want)
	}
}

func TestTicketOptions(t *testing.T) {
	opts := TicketOptions(42, "http://127.0.0.1:4242")

	if opts.Label != "ticket-42" {
		t.Errorf("Label = %q, want %q", opts.Label, "ticket-42")
	}
	if opts.Title != "Ticket #42" {
		t.Errorf("Title = %q, want %q", opts.Title, "Ticket #42")
	}
	if want := "http://127.0.0.1:4242/?ticketWindow=true#/ticket/42"; opts.URL != want {
		t.Errorf("URL = %q, want %q", opts.URL, want)
	}
	if opts.Width != 1000 || opts.Height != 800 {
		t.Errorf("size = %gx%g, want 1000x800", opts.Width, opts.Height)
	}
	if opts.MinWidth != 600 || opts.MinHeight != 400 {
		t.Errorf("min size = %gx%g, want 600x400", opts.MinWidth, opts.MinHeight)
	}
	if !opts.Center {
		t.Error("Center = false, want true")
	}
}

func TestTicketOptionsTrailingSlashBase(t *testing.T) {
	opts := TicketOptions(7, "http://127.0.0.1:4242/")
	if want := "http://127.0.0.1:4242/?ticketWindow=true#/ticket/7"; opts.URL != want {
		t.Errorf("URL = %q, want %q", opts.URL, want)
	}
}
