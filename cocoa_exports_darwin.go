package main

// Exported callbacks invoked from Objective-C. They live in their own
// file because cgo only allows declarations in the preamble of a file
// that exports Go functions.

import "C"

import "unsafe"

//export goOnAppTerminate
func goOnAppTerminate() {
	appRunning.Store(false)
	if appInstance != nil {
		appInstance.cleanup()
	}
}

//export goDispatchCallback
func goDispatchCallback(ctx unsafe.Pointer) {
	fn := loadCallback(uintptr(ctx))
	if fn != nil {
		fn()
	}
}
