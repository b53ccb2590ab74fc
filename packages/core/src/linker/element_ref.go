package linker

// ElementRef is a wrapper around a native element inside of a view.
//
// Use this when direct access to the underlying element is needed. Permitting
// direct access to the DOM makes an application more vulnerable to XSS
// attacks; prefer templating and data binding where possible.
type ElementRef struct {
	// NativeElement is the underlying native element, or nil if direct
	// access to native elements is not supported (e.g. when the application
	// runs in a web worker).
	NativeElement interface{}
}
