package main

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework WebKit
#include "cocoa_darwin.h"
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"ticketdesk/window"
)

// ---------------------------------------------------------------------------
// Callback registry for dispatchToMain
// ---------------------------------------------------------------------------

var (
	cbMu   sync.Mutex
	cbMap  = make(map[uintptr]func())
	cbNext uintptr
)

func storeCallback(fn func()) uintptr {
	cbMu.Lock()
	defer cbMu.Unlock()
	cbNext++
	id := cbNext
	cbMap[id] = fn
	return id
}

func loadCallback(id uintptr) func() {
	cbMu.Lock()
	defer cbMu.Unlock()
	fn := cbMap[id]
	delete(cbMap, id)
	return fn
}

// ---------------------------------------------------------------------------
// Go wrappers for C functions
// ---------------------------------------------------------------------------

func cocoaInitApp() {
	C.cocoa_init_app()
}

func cocoaRunApp() {
	C.cocoa_run_app()
}

func cocoaQuitApp() {
	C.cocoa_quit_app()
}

func cocoaSetAppIcon(rgba []byte, w, h int) {
	C.cocoa_set_app_icon((*C.uchar)(&rgba[0]), C.int(w), C.int(h))
}

func cocoaOpenWindow(opts window.Options) error {
	clabel := C.CString(opts.Label)
	curl := C.CString(opts.URL)
	ctitle := C.CString(opts.Title)
	defer C.free(unsafe.Pointer(clabel))
	defer C.free(unsafe.Pointer(curl))
	defer C.free(unsafe.Pointer(ctitle))

	center := C.int(0)
	if opts.Center {
		center = 1
	}

	switch C.cocoa_open_window(clabel, curl, ctitle,
		C.double(opts.Width), C.double(opts.Height),
		C.double(opts.MinWidth), C.double(opts.MinHeight), center) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("invalid window URL %q", opts.URL)
	default:
		return fmt.Errorf("window construction failed for label %q", opts.Label)
	}
}

func cocoaFindWindow(label string) bool {
	cs := C.CString(label)
	defer C.free(unsafe.Pointer(cs))
	return C.cocoa_find_window(cs) != 0
}

func cocoaFocusWindow(label string) error {
	cs := C.CString(label)
	defer C.free(unsafe.Pointer(cs))
	if C.cocoa_focus_window(cs) != 0 {
		return fmt.Errorf("no window with label %q", label)
	}
	return nil
}

func cocoaOpenURL(url string) {
	cs := C.CString(url)
	defer C.free(unsafe.Pointer(cs))
	C.cocoa_open_url(cs)
}

// dispatchToMain schedules a Go function to run on the main (UI) thread.
func dispatchToMain(fn func()) {
	id := storeCallback(fn)
	C.cocoa_dispatch_main_callback(unsafe.Pointer(id))
}

// ---------------------------------------------------------------------------
// DarwinPlatform implements Platform using Cocoa/WKWebView via cgo.
// ---------------------------------------------------------------------------

type DarwinPlatform struct{}

func NewPlatform() Platform { return &DarwinPlatform{} }

func (p *DarwinPlatform) Init()                            { cocoaInitApp() }
func (p *DarwinPlatform) Run()                             { appRunning.Store(true); cocoaRunApp() }
func (p *DarwinPlatform) Quit()                            { cocoaQuitApp() }
func (p *DarwinPlatform) SetAppIcon(rgba []byte, w, h int) { cocoaSetAppIcon(rgba, w, h) }
func (p *DarwinPlatform) OpenWindow(opts window.Options) error {
	return cocoaOpenWindow(opts)
}
func (p *DarwinPlatform) FindWindow(label string) bool   { return cocoaFindWindow(label) }
func (p *DarwinPlatform) FocusWindow(label string) error { return cocoaFocusWindow(label) }
func (p *DarwinPlatform) DispatchToMain(fn func())       { dispatchToMain(fn) }
func (p *DarwinPlatform) OpenURL(url string)             { cocoaOpenURL(url) }

// ---------------------------------------------------------------------------
// appRunning tracks whether the Cocoa app is still alive (for cleanup)
// ---------------------------------------------------------------------------

var appRunning atomic.Bool
