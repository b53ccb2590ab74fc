package metadata

// ViewEncapsulation defines the CSS styles encapsulation policies for the
// component's styling.
type ViewEncapsulation int

const (
	// ViewEncapsulationEmulated emulates native scoping of styles by adding
	// an attribute containing a surrogate id to the host element and applying
	// the same attribute to all selectors in the provided styles.
	ViewEncapsulationEmulated ViewEncapsulation = iota
	// Historically the 1 value was for Native encapsulation which has been removed as of v11.
	_ // Reserved for historical Native
	// ViewEncapsulationNone applies the styles without any encapsulation:
	// they are globally applied.
	ViewEncapsulationNone
	// ViewEncapsulationShadowDom uses the browser's native Shadow DOM to
	// encapsulate styles.
	ViewEncapsulationShadowDom
)
