//go:build !darwin && !windows

package main

import (
	"fmt"
	"os/exec"

	"ticketdesk/window"
)

// HeadlessPlatform keeps the app buildable on platforms without a webview
// host. The command surface and control socket still work; window
// operations fail with a host error.
type HeadlessPlatform struct {
	quit chan struct{}
}

func NewPlatform() Platform {
	return &HeadlessPlatform{quit: make(chan struct{})}
}

func (p *HeadlessPlatform) Init() {}

func (p *HeadlessPlatform) Run() { <-p.quit }

func (p *HeadlessPlatform) Quit() {
	select {
	case <-p.quit:
	default:
		close(p.quit)
	}
}

func (p *HeadlessPlatform) SetAppIcon(rgba []byte, w, h int) {}

func (p *HeadlessPlatform) OpenWindow(opts window.Options) error {
	return fmt.Errorf("no window host on this platform")
}

func (p *HeadlessPlatform) FindWindow(label string) bool { return false }

func (p *HeadlessPlatform) FocusWindow(label string) error {
	return fmt.Errorf("no window host on this platform")
}

func (p *HeadlessPlatform) DispatchToMain(fn func()) { fn() }

func (p *HeadlessPlatform) OpenURL(url string) {
	_ = exec.Command("xdg-open", url).Start()
}
