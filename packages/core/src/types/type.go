package types

// Type represents a declarable class (a component, directive, pipe or a plain
// base class) as seen by the annotation layer and the runtime.
//
// In the TypeScript implementation a class is identified by its constructor
// function, its superclass is reached through the prototype chain, and the
// runtime monkey-patches definition fields (`ngBaseDef`, `__annotations__`,
// `__prop__metadata__`) directly onto the constructor. Go has none of those
// mechanisms, so the same information is carried explicitly: one *Type value
// exists per declared class, the superclass is an explicit reference, and the
// definition slots are ordinary fields written through the registration API.
//
// Identity is pointer identity. Two classes with the same name in different
// compilation units are distinct types.
type Type struct {
	// Name of the class, used for diagnostics only.
	Name string

	// Super is the direct superclass, or nil if the class extends nothing.
	Super *Type

	// BaseDef is the accumulated input/output metadata slot (`ngBaseDef`).
	// Owned directly by this type; never shared with Super. Written only by
	// the render3 package.
	BaseDef interface{}

	// Def is the compiled definition produced by the compiler facade, if JIT
	// compilation has run for this type.
	Def interface{}

	// Annotations holds the class-level annotations in application order
	// (`__annotations__`).
	Annotations []interface{}

	// PropMetadata maps property names to their annotations in application
	// order (`__prop__metadata__`).
	PropMetadata map[string][]interface{}
}

// NewType creates the handle for a declared class. super is nil for root
// classes.
func NewType(name string, super *Type) *Type {
	return &Type{Name: name, Super: super}
}

// String returns the class name.
func (t *Type) String() string {
	return t.Name
}
