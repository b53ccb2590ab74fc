package linker

import (
	"ngcore-go/packages/core/src/di"
	"ngcore-go/packages/core/src/types"
)

// NgModuleRef represents an instance of an NgModule created by an
// NgModuleFactory. Provides access to the module instance and related
// objects.
type NgModuleRef interface {
	// Injector is the injector that contains all of the providers of the
	// module instance.
	Injector() di.Injector

	// ComponentFactoryResolver resolves factories for the components the
	// module compiled as entry components.
	ComponentFactoryResolver() ComponentFactoryResolver

	// Instance is the module instance itself.
	Instance() interface{}

	// Destroy destroys the module instance and all of the data structures
	// associated with it.
	Destroy()

	// OnDestroy registers a callback to run when the module is destroyed.
	OnDestroy(callback func())
}

// NgModuleFactory creates instances of the module type it is bound to.
type NgModuleFactory interface {
	// ModuleType is the module type the factory instantiates.
	ModuleType() *types.Type

	// Create creates a new module instance whose injector delegates to
	// parentInjector for tokens the module does not provide itself.
	Create(parentInjector di.Injector) NgModuleRef
}
