package render3

import (
	"ngcore-go/packages/core/src/types"
	"ngcore-go/packages/core/src/util"
)

// BaseDef is the accumulated input/output metadata of a class, read by the
// compiler when it wires template bindings to class properties. It is built
// up one property annotation at a time and merged across the class hierarchy.
type BaseDef struct {
	// Inputs maps class property names to their template-facing binding
	// names.
	Inputs map[string]string

	// Outputs maps class property names to the event names their
	// subscriptions are exposed under.
	Outputs map[string]string

	// DeclaredInputs maps template-facing binding names back to the class
	// property names they were declared on. Used to look up inputs that are
	// declared but not necessarily bound.
	DeclaredInputs map[string]string
}

// GetBaseDef returns the base definition owned directly by t, or nil if t
// does not own one. A definition owned by a superclass is not visible through
// this accessor; inheritance is resolved once, when the definition is
// created.
func GetBaseDef(t *types.Type) *BaseDef {
	if def, ok := t.BaseDef.(*BaseDef); ok {
		return def
	}
	return nil
}

// EnsureBaseDef returns the base definition owned directly by t, creating it
// on first use. A newly created definition is seeded with a copy of the
// nearest ancestor's definition, so later changes to the ancestor do not leak
// into t and entries t records itself shadow the inherited ones.
func EnsureBaseDef(t *types.Type) *BaseDef {
	if def := GetBaseDef(t); def != nil {
		return def
	}
	def := &BaseDef{
		Inputs:         map[string]string{},
		Outputs:        map[string]string{},
		DeclaredInputs: map[string]string{},
	}
	if inherited := lookupInheritedBaseDef(t.Super); inherited != nil {
		util.FillProperties(def.Inputs, inherited.Inputs)
		util.FillProperties(def.Outputs, inherited.Outputs)
		util.FillProperties(def.DeclaredInputs, inherited.DeclaredInputs)
	}
	t.BaseDef = def
	return def
}

func lookupInheritedBaseDef(t *types.Type) *BaseDef {
	for ; t != nil; t = t.Super {
		if def := GetBaseDef(t); def != nil {
			return def
		}
	}
	return nil
}

// AddInput records an input binding for the given class property. An empty
// bindingPropertyName means the binding uses the property's own name. A later
// call for the same property wins, including over an inherited entry.
func AddInput(t *types.Type, propName string, bindingPropertyName string) {
	updateBaseDef(t, propName, bindingPropertyName, func(def *BaseDef) map[string]string {
		return def.Inputs
	})
}

// AddOutput records an output binding for the given class property, with the
// same defaulting and override behavior as AddInput.
func AddOutput(t *types.Type, propName string, bindingPropertyName string) {
	updateBaseDef(t, propName, bindingPropertyName, func(def *BaseDef) map[string]string {
		return def.Outputs
	})
}

// AddDeclaredInput records the declared-name mapping for an input: from the
// template-facing binding name back to the class property it lives on. An
// empty bindingPropertyName means the input was declared without an alias.
func AddDeclaredInput(t *types.Type, bindingPropertyName string, propName string) {
	def := EnsureBaseDef(t)
	if bindingPropertyName == "" {
		bindingPropertyName = propName
	}
	def.DeclaredInputs[bindingPropertyName] = propName
}

func updateBaseDef(t *types.Type, propName string, bindingPropertyName string, getProp func(*BaseDef) map[string]string) {
	def := EnsureBaseDef(t)
	if bindingPropertyName == "" {
		bindingPropertyName = propName
	}
	getProp(def)[propName] = bindingPropertyName
}
