package paint

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default transparent surface
//	dc := paint.NewContext(800, 600)
//
//	// Draw onto an existing layer pixmap
//	dc := paint.NewContext(800, 600, paint.WithPixmap(layer))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap *Pixmap
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		pixmap: nil, // Will be created if nil
	}
}

// WithPixmap sets the target pixmap for the Context. The external layer
// container uses this to paint strokes directly into a layer's surface.
// The pixmap dimensions should match the Context dimensions.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}
