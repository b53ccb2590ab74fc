package linker

import (
	"fmt"

	"ngcore-go/packages/core/src/types"
)

// ComponentFactoryResolver resolves the ComponentFactory the compiler
// generated for a given component type. Factories exist only for components
// that were compiled as entry components of some module.
type ComponentFactoryResolver interface {
	// ResolveComponentFactory retrieves the factory object that creates
	// components of the given type.
	ResolveComponentFactory(component *types.Type) (ComponentFactory, error)
}

// NoComponentFactoryError reports a component type for which no factory was
// found. The usual cause is a dynamically created component that was not
// added to EntryComponents of its module.
func NoComponentFactoryError(component *types.Type) error {
	return fmt.Errorf("no component factory found for %s. Did you add it to EntryComponents?", component)
}

// NullComponentFactoryResolver resolves nothing. It terminates resolver
// delegation chains.
type NullComponentFactoryResolver struct{}

func (NullComponentFactoryResolver) ResolveComponentFactory(component *types.Type) (ComponentFactory, error) {
	return nil, NoComponentFactoryError(component)
}
