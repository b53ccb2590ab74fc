package linker

// ViewRef represents a view, specifically the host view defined by a
// component.
type ViewRef interface {
	// Destroy destroys the view and all of the data structures associated
	// with it.
	Destroy()

	// Destroyed reports whether the view has been destroyed.
	Destroyed() bool

	// OnDestroy registers a callback to run when the view is destroyed.
	OnDestroy(callback func())
}
