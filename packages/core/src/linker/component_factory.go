package linker

import (
	"ngcore-go/packages/core/src/change_detection"
	"ngcore-go/packages/core/src/di"
	"ngcore-go/packages/core/src/types"
)

// PropBinding describes one bound property of a component as exposed by its
// factory: the class property name and the template-facing name it is bound
// under.
type PropBinding struct {
	PropName     string
	TemplateName string
}

// ComponentRef represents a component created by a ComponentFactory.
// Provides access to the component instance and related objects, and provides
// the means of destroying the instance.
type ComponentRef interface {
	// Location is the host element created for this component.
	Location() ElementRef

	// Injector is the dependency injector for this component instance.
	Injector() di.Injector

	// Instance is the component instance itself.
	Instance() interface{}

	// HostView is the host view defined by the template for this component
	// instance.
	HostView() ViewRef

	// ChangeDetectorRef is the change detector for this component instance.
	ChangeDetectorRef() change_detection.ChangeDetectorRef

	// ComponentType is the type of this component, as created by the
	// factory.
	ComponentType() *types.Type

	// Destroy destroys the component instance and all of the data structures
	// associated with it.
	Destroy()

	// OnDestroy registers a lifecycle hook that runs when the component is
	// destroyed.
	OnDestroy(callback func())
}

// ComponentFactory creates instances of the component type it is bound to.
// Factories are produced by the compiler and retrieved through a
// ComponentFactoryResolver.
type ComponentFactory interface {
	// Selector is the component's HTML selector.
	Selector() string

	// ComponentType is the type of component the factory creates.
	ComponentType() *types.Type

	// NgContentSelectors is the selectors of the component's projectable
	// content (`<ng-content>`).
	NgContentSelectors() []string

	// Inputs is the component's inputs, one entry per bound input property.
	Inputs() []PropBinding

	// Outputs is the component's outputs, one entry per bound output
	// property.
	Outputs() []PropBinding

	// Create creates a new component instance.
	//
	// injector provides the component's dependencies; projectableNodes holds
	// the nodes to project into the component's `<ng-content>` slots, one
	// slice per content selector; rootSelectorOrNode identifies the root
	// element to render into; ngModule is the module ref whose injector and
	// resolver the component should use.
	Create(injector di.Injector, projectableNodes [][]interface{}, rootSelectorOrNode interface{}, ngModule NgModuleRef) ComponentRef
}
