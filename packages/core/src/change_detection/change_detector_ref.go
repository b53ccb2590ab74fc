package change_detection

// ChangeDetectorRef is the base for view change detection. It acts as a
// change detector for its component and its children.
type ChangeDetectorRef interface {
	// MarkForCheck marks the view and all of its ancestors dirty, so that
	// they are checked in the next change detection run even if the view
	// uses the OnPush strategy.
	MarkForCheck()

	// Detach detaches this view from the change-detection tree. A detached
	// view is not checked until it is reattached. Combine with local change
	// detection to implement custom change-detection checking strategies.
	Detach()

	// DetectChanges checks this view and its children.
	DetectChanges()

	// CheckNoChanges checks the change detector and its children, and
	// panics if any changes are detected. Used in development mode to verify
	// that running change detection does not introduce further changes.
	CheckNoChanges()

	// Reattach re-attaches the previously detached view to the change
	// detection tree, so the view is checked during normal runs again.
	Reattach()
}
