package window

// WindowBuilderOption is a functional option for configuring a window before it opens.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the initial title bar text.
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the requested window size. Non-positive values keep the default.
// The actual framebuffer size is read back after creation and may differ on high-DPI displays.
//
// Parameters:
//   - width: requested width in screen coordinates
//   - height: requested height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithSizeLimits bounds user resizing.
//
// Parameters:
//   - minWidth, minHeight: smallest allowed size
//   - maxWidth, maxHeight: largest allowed size
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth, w.minHeight = minWidth, minHeight
		w.maxWidth, w.maxHeight = maxWidth, maxHeight
	}
}

// WithCloseKey sets the key that closes the window. 0 disables closing from the keyboard.
func WithCloseKey(keyCode uint32) WindowBuilderOption {
	return func(w *engineWindow) {
		w.closeKey = keyCode
	}
}
