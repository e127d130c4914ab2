//go:build windows

package main

import "ticketdesk/window"

// WindowsPlatform is a stub for future Windows support (WebView2).
type WindowsPlatform struct{}

func NewPlatform() Platform { return &WindowsPlatform{} }

func (p *WindowsPlatform) Init()                                { panic("not implemented") }
func (p *WindowsPlatform) Run()                                 { panic("not implemented") }
func (p *WindowsPlatform) Quit()                                { panic("not implemented") }
func (p *WindowsPlatform) SetAppIcon(rgba []byte, w, h int)     { panic("not implemented") }
func (p *WindowsPlatform) OpenWindow(opts window.Options) error { panic("not implemented") }
func (p *WindowsPlatform) FindWindow(label string) bool         { panic("not implemented") }
func (p *WindowsPlatform) FocusWindow(label string) error       { panic("not implemented") }
func (p *WindowsPlatform) DispatchToMain(fn func())             { panic("not implemented") }
func (p *WindowsPlatform) OpenURL(url string)                   { panic("not implemented") }
