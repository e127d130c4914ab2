// Package window implements the ticket window registry: deterministic
// labeling, URL construction, and the open-or-focus singleton policy for
// per-ticket satellite windows.
package window

import (
	"fmt"
	"strconv"
	"strings"
)

// Default geometry for ticket detail windows, in logical units.
const (
	TicketWidth     = 1000
	TicketHeight    = 800
	TicketMinWidth  = 600
	TicketMinHeight = 400
)

// Label derives the host window label for a ticket id. The mapping is pure
// and injective: the label is the sole key used to address the window.
func Label(id uint32) string {
	return "ticket-" + strconv.FormatUint(uint64(id), 10)
}

// TicketPath returns the path, query, and fragment the frontend router
// consumes for a ticket detail view. The ticketWindow flag marks the page
// as a satellite window so the router skips the main-view chrome.
func TicketPath(id uint32) string {
	return fmt.Sprintf("/?ticketWindow=true#/ticket/%d", id)
}

// Options describes a window to be built by the host.
type Options struct {
	Label     string
	URL       string
	Title     string
	Width     float64
	Height    float64
	MinWidth  float64
	MinHeight float64
	Center    bool
}

// TicketOptions builds the window options for a ticket detail window,
// resolving the ticket path against the frontend base URL.
func TicketOptions(id uint32, baseURL string) Options {
	return Options{
		Label:     Label(id),
		URL:       strings.TrimSuffix(baseURL, "/") + TicketPath(id),
		Title:     fmt.Sprintf("Ticket #%d", id),
		Width:     TicketWidth,
		Height:    TicketHeight,
		MinWidth:  TicketMinWidth,
		MinHeight: TicketMinHeight,
		Center:    true,
	}
}
