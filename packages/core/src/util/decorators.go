package util

import (
	"ngcore-go/packages/core/src/types"
)

// TypeAnnotation is implemented by class-level annotations (Directive,
// Component, Pipe, NgModule). ApplyToType is the compile hook the annotation
// runs when it is attached to a class.
type TypeAnnotation interface {
	ApplyToType(t *types.Type)
}

// PropertyAnnotation is implemented by property-level annotations (Input,
// Output, HostBinding, HostListener). ApplyToProperty is the registration
// hook the annotation runs when it is attached to a class property.
type PropertyAnnotation interface {
	ApplyToProperty(t *types.Type, propName string)
}

// ApplyTypeAnnotation attaches a class-level annotation to t: the annotation
// is appended to the class's annotation list and its compile hook is invoked.
//
// This is the registration entry point that replaces the decorator syntax of
// the TypeScript implementation; whatever layer processes source annotations
// calls it once per decorated class.
func ApplyTypeAnnotation(t *types.Type, annotation TypeAnnotation) {
	t.Annotations = append(t.Annotations, annotation)
	annotation.ApplyToType(t)
}

// ApplyPropertyAnnotation attaches a property-level annotation to the named
// property of t: the annotation is appended to the property's metadata list
// and its registration hook is invoked. Called once per annotated property.
func ApplyPropertyAnnotation(t *types.Type, propName string, annotation PropertyAnnotation) {
	if t.PropMetadata == nil {
		t.PropMetadata = map[string][]interface{}{}
	}
	t.PropMetadata[propName] = append(t.PropMetadata[propName], annotation)
	annotation.ApplyToProperty(t, propName)
}

// Annotations returns the class-level annotations of t in application order.
func Annotations(t *types.Type) []interface{} {
	return t.Annotations
}

// PropMetadata returns the per-property annotation table of t. The returned
// map is the live table, not a copy.
func PropMetadata(t *types.Type) map[string][]interface{} {
	if t.PropMetadata == nil {
		return map[string][]interface{}{}
	}
	return t.PropMetadata
}
