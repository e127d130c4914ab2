package main

import "ticketdesk/window"

// Platform abstracts OS-specific UI operations: the run loop and the
// webview window host. Window-affecting calls are only made from the
// window manager's dispatch goroutine.
type Platform interface {
	Init()
	Run()
	Quit()
	SetAppIcon(rgba []byte, w, h int)
	OpenWindow(opts window.Options) error
	FindWindow(label string) bool
	FocusWindow(label string) error
	DispatchToMain(fn func())
	OpenURL(url string)
}

// platformHost adapts a Platform to the window.Host capability.
type platformHost struct {
	p Platform
}

func (h platformHost) Find(label string) bool        { return h.p.FindWindow(label) }
func (h platformHost) Create(o window.Options) error { return h.p.OpenWindow(o) }
func (h platformHost) Focus(label string) error      { return h.p.FocusWindow(label) }
