package metadata

import (
	"ngcore-go/packages/core/src/compiler"
	"ngcore-go/packages/core/src/di"
	"ngcore-go/packages/core/src/types"
)

// ModuleWithProviders wraps an NgModule type together with an additional set
// of providers, as returned by module configuration helpers such as
// `forRoot()` style constructors.
type ModuleWithProviders struct {
	NgModule  *types.Type
	Providers []di.Provider
}

// NgModule marks a class as an NgModule and supplies configuration metadata
// describing how the compiler and runtime should process the module's own
// declarations and how they should be used together with other modules.
//
// The most common way to organize an application is to split it into modules
// that group declarables (components, directives and pipes) around a feature
// area. A declarable must belong to exactly one module; the compiler emits an
// error if you try to declare the same class in more than one module.
type NgModule struct {
	// Providers is the set of injectable objects that are available in the
	// injector of this module.
	//
	// Dependencies whose providers are listed here become available for
	// injection into any component, directive, pipe or service that is a
	// child of this injector.
	Providers []di.Provider

	// Declarations is the set of components, directives, and pipes
	// (declarables) that belong to this module.
	//
	// The set of selectors that are available to a template includes those
	// declared here, and those exported by the modules listed in Imports.
	// Declarables must belong to exactly one module.
	Declarations []*types.Type

	// Imports is the set of NgModules, with or without providers, whose
	// exported declarables are available to templates in this module.
	//
	// A template can use exported declarables from any imported module,
	// including those from modules that are imported indirectly and
	// re-exported.
	Imports []interface{} // *types.Type | ModuleWithProviders

	// Exports is the set of declarables, and modules whose exports are
	// re-exported, that can be used within the template of any component
	// that is part of a module that imports this module.
	//
	// A declaration belongs to the module's private API unless it is
	// exported here.
	Exports []interface{} // *types.Type

	// EntryComponents is the set of components to compile when this module
	// is defined, so that they can be dynamically loaded into the view.
	//
	// For each listed component the runtime creates a ComponentFactory and
	// stores it in the ComponentFactoryResolver. Bootstrapped components and
	// routed components are entry components automatically.
	EntryComponents []*types.Type

	// Bootstrap is the set of components that are bootstrapped when this
	// module is bootstrapped. The listed components are automatically added
	// to EntryComponents.
	Bootstrap []*types.Type

	// Schemas is the set of schemas that declare the elements allowed in the
	// module's templates. Allowing arbitrary elements and properties
	// disables the compiler's element and property checks.
	Schemas []SchemaMetadata

	// ID is a name or path that uniquely identifies this module in
	// `getModuleFactory`. If left empty, the module does not register
	// itself with the module factory registry.
	ID string

	// Jit, when true, leaves this module for the JIT compiler instead of an
	// ahead-of-time build.
	Jit bool
}

// ApplyToType requests compilation of the annotated class as an NgModule.
func (mod *NgModule) ApplyToType(t *types.Type) {
	compiler.EnqueueCompilation(t, compiler.FactoryTargetNgModule, mod)
}
