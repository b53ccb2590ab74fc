package metadata

import (
	"ngcore-go/packages/core/src/change_detection"
	"ngcore-go/packages/core/src/compiler"
	"ngcore-go/packages/core/src/di"
	"ngcore-go/packages/core/src/render3"
	"ngcore-go/packages/core/src/types"
	"ngcore-go/packages/core/src/util"
)

// Directive marks a class as a directive and collects the configuration
// metadata that determines how the directive should be processed, instantiated
// and used at runtime.
//
// Directive classes, like component classes, can implement lifecycle hooks to
// influence their configuration and behavior.
type Directive struct {
	// Selector is the CSS selector that identifies this directive in a
	// template and triggers instantiation of the directive.
	//
	// Declare as one of the following:
	//   - `element-name`: Select by element name.
	//   - `.class`: Select by class name.
	//   - `[attribute]`: Select by attribute name.
	//   - `[attribute=value]`: Select by attribute name and value.
	//   - `:not(sub_selector)`: Select only if the element does not match the
	//     `sub_selector`.
	//   - `selector1, selector2`: Select if either `selector1` or `selector2`
	//     matches.
	Selector string

	// Inputs enumerates the data-bound input properties of the directive.
	//
	// Each entry has the syntax `directiveProperty: bindingProperty`, where
	// `directiveProperty` specifies the component property where the value is
	// written and `bindingProperty` specifies the DOM property where the
	// value is read from. When `bindingProperty` is omitted it defaults to
	// `directiveProperty`.
	Inputs []string

	// Outputs enumerates the event-bound output properties of the directive.
	//
	// When an output property emits an event, an event handler attached to
	// that event in the template is invoked. Each entry has the syntax
	// `directiveProperty: bindingProperty` as for Inputs.
	Outputs []string

	// Providers configures the injector of this directive with tokens.
	Providers []di.Provider

	// ExportAs defines the name that can be used in the template to assign
	// this directive to a variable.
	ExportAs string

	// Queries configures the queries that will be injected into the
	// directive, keyed by the property the query result is assigned to.
	// Content queries are set before the ngAfterContentInit callback is
	// called. View queries are set before the ngAfterViewInit callback is
	// called.
	Queries map[string]Query

	// Host maps class properties to host element bindings for properties,
	// attributes and events, using a set of key-value pairs.
	//
	// To bind a host property or attribute the key is the property or
	// attribute name and the value is the quoted expression; to listen to a
	// host event the key is the event name in parentheses and the value is
	// the handler statement.
	Host map[string]string

	// Jit, when true, leaves this directive for the JIT compiler instead of
	// an ahead-of-time build. Techniques like partial evaluation do not
	// apply to JIT-compiled metadata.
	Jit bool
}

// ApplyToType requests compilation of the annotated class as a directive.
func (dir *Directive) ApplyToType(t *types.Type) {
	compiler.EnqueueCompilation(t, compiler.FactoryTargetDirective, dir)
}

// InputMap expands the colon syntax of Inputs into a property-name to
// binding-name map.
func (dir *Directive) InputMap() map[string]string {
	return parseInputOutputs(dir.Inputs)
}

// OutputMap expands the colon syntax of Outputs into a property-name to
// binding-name map.
func (dir *Directive) OutputMap() map[string]string {
	return parseInputOutputs(dir.Outputs)
}

func parseInputOutputs(values []string) map[string]string {
	result := map[string]string{}
	for _, value := range values {
		parts := util.SplitAtColon(value, []string{value, value})
		result[parts[0]] = parts[1]
	}
	return result
}

// Component marks a class as a component and provides the configuration
// metadata that determines how the component should be processed,
// instantiated, and used at runtime.
//
// A component controls a patch of screen called a view. Components are the
// most basic UI building block of an application, and an application contains
// a tree of components.
//
// A component must belong to a module before it can be used by another
// component or application; it is declared by a module's Declarations field.
type Component struct {
	Directive

	// ChangeDetection is the change-detection strategy to use for this
	// component. When a component is instantiated, a change detector is
	// created and the strategy is set to ChangeDetectionStrategyDefault
	// unless set otherwise here.
	ChangeDetection *change_detection.ChangeDetectionStrategy

	// ViewProviders defines the set of injectable objects that are visible
	// to this component's view DOM children.
	ViewProviders []di.Provider

	// ModuleID is the module ID of the module that contains the component,
	// used to resolve relative template and style URLs. In CommonJS this can
	// be set to `module.id`.
	ModuleID string

	// TemplateURL is the relative path or absolute URL of a template file
	// for the component's view. If provided, do not supply an inline
	// template using Template.
	TemplateURL string

	// Template is an inline template for the component's view. If provided,
	// do not supply a template file using TemplateURL.
	Template string

	// StyleURLs holds one or more relative paths or absolute URLs for files
	// containing the CSS stylesheets to use in this component.
	StyleURLs []string

	// Styles holds one or more inline CSS stylesheets to use in this
	// component.
	Styles []string

	// Animations is one or more animation trigger calls, containing
	// state and transition definitions.
	Animations []interface{}

	// Encapsulation is the style encapsulation policy for the template and
	// styles. Defaults to ViewEncapsulationEmulated, which emulates native
	// scoping of styles by adding an attribute to the host element and
	// applying the same attribute to all selectors in the style rules.
	Encapsulation *ViewEncapsulation

	// Interpolation overrides the default start and end interpolation
	// delimiters, `{{` and `}}`.
	Interpolation *[2]string

	// EntryComponents lists the components that should be compiled along
	// with this component. For each listed component the runtime creates a
	// ComponentFactory and stores it in the ComponentFactoryResolver.
	EntryComponents []*types.Type

	// PreserveWhitespaces, when true, keeps potentially superfluous
	// whitespace characters from the compiled template. Whitespace removal
	// is the default.
	PreserveWhitespaces *bool
}

// ApplyToType requests compilation of the annotated class as a component.
func (cmp *Component) ApplyToType(t *types.Type) {
	compiler.EnqueueCompilation(t, compiler.FactoryTargetComponent, cmp)
}

// Pipe marks a class as a pipe and supplies configuration metadata.
//
// A pipe class must implement a `Transform` method that is invoked with the
// value of a template binding expression and any parameters. The pipe is
// applied with the pipe operator (`|`) within a template expression.
type Pipe struct {
	// Name is the pipe name to use in template bindings.
	Name string

	// Pure reports whether the pipe is pure, meaning that Transform is
	// invoked only when its input arguments change. Pipes are pure by
	// default (nil means pure).
	Pure *bool
}

// IsPure resolves the Pure default.
func (pipe *Pipe) IsPure() bool {
	return pipe.Pure == nil || *pipe.Pure
}

// ApplyToType requests compilation of the annotated class as a pipe.
func (pipe *Pipe) ApplyToType(t *types.Type) {
	compiler.EnqueueCompilation(t, compiler.FactoryTargetPipe, pipe)
}

// Query is the configuration of a content or view query assigned to a class
// property through the Queries table of a directive.
type Query struct {
	// Selector is the directive type or the name used for querying.
	Selector interface{}

	// Descendants includes all descendants in the query results, not only
	// direct children.
	Descendants bool

	// First makes the query read only the first match.
	First bool

	// Read reads a different token from the queried elements, if set.
	Read interface{}

	// IsViewQuery distinguishes view queries from content queries.
	IsViewQuery bool

	// Static is true to resolve the query results before change detection
	// runs, false to resolve after.
	Static bool
}

// Input declares a data-bound input property of a class, which the runtime
// updates automatically during change detection.
//
// The input property is bound to a DOM property in the template. During
// change detection the runtime automatically updates the data property with
// the DOM property's value.
type Input struct {
	// BindingPropertyName is the name of the DOM property to which the input
	// property is bound, when it differs from the class property name.
	BindingPropertyName *string
}

// ApplyToProperty records the input binding on the class's base definition.
func (in *Input) ApplyToProperty(t *types.Type, propName string) {
	render3.AddInput(t, propName, stringOrEmpty(in.BindingPropertyName))
}

// Output declares a data-bound output property of a class, which the runtime
// updates automatically during change detection. The DOM property bound to
// the output property is automatically updated during change detection.
type Output struct {
	// BindingPropertyName is the name of the DOM property to which the
	// output property is bound, when it differs from the class property
	// name.
	BindingPropertyName *string
}

// ApplyToProperty records the output binding on the class's base definition.
func (out *Output) ApplyToProperty(t *types.Type, propName string) {
	render3.AddOutput(t, propName, stringOrEmpty(out.BindingPropertyName))
}

// HostBinding declares a host-element binding: during change detection the
// runtime checks the bound property of the annotated class and updates the
// host element accordingly.
type HostBinding struct {
	// HostPropertyName is the DOM property that is bound to the annotated
	// class property, when it differs from the property name.
	HostPropertyName *string
}

// ApplyToProperty records nothing on the base definition; host bindings are
// read from the property annotation table at compile time.
func (hb *HostBinding) ApplyToProperty(t *types.Type, propName string) {}

// HostListener declares a DOM event to listen for on the host element, with
// the annotated method as the handler to invoke when the event occurs.
type HostListener struct {
	// EventName is the DOM event to listen for.
	EventName *string

	// Args is the set of arguments to pass to the handler method when the
	// event occurs.
	Args []string
}

// ApplyToProperty records nothing on the base definition; host listeners are
// read from the property annotation table at compile time.
func (hl *HostListener) ApplyToProperty(t *types.Type, propName string) {}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
