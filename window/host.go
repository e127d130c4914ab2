package window

// Host is the windowing capability supplied by the platform layer. The
// host owns the live window set; this package holds no window handles and
// re-queries existence by label on every request.
type Host interface {
	// Find reports whether a live window with the given label exists.
	Find(label string) bool

	// Create builds and shows a new window. The returned error carries the
	// host's diagnostic verbatim.
	Create(opts Options) error

	// Focus brings the labeled window to the foreground.
	Focus(label string) error
}
