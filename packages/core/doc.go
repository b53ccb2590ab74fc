// Package core provides the framework's component-model metadata APIs: the
// annotation types applied to classes and properties, the accumulated
// base-definition registrar, and the abstract linker surfaces the runtime
// implements.
//
// This package is a Go port of @angular/core's metadata layer, maintaining
// 1:1 logic equivalence with the TypeScript implementation. The template
// compiler itself lives in the sibling ngc-go module and is reached through
// the late-bound compiler facade.
//
// Main sub-packages:
//
//   - types: Class identity (Type) with explicit superclass references and
//     definition slots, replacing constructor functions and the prototype
//     chain
//   - metadata: Annotation shapes (Directive, Component, Pipe, NgModule,
//     Input, Output, HostBinding, HostListener) and schema constants
//   - render3: The base-definition registrar (BaseDef, EnsureBaseDef,
//     AddInput/AddOutput/AddDeclaredInput) and factory binding projections
//   - compiler: The CompilerFacade interface and the pending-compilation
//     queue for JIT late binding
//   - linker: ComponentFactory, ComponentRef, ComponentFactoryResolver,
//     NgModuleRef, ElementRef, ViewRef abstract surfaces
//   - change_detection: ChangeDetectionStrategy and ChangeDetectorRef
//   - di: The Injector contract and provider placeholder types
//   - util: Registration entry points (ApplyTypeAnnotation,
//     ApplyPropertyAnnotation) and small shared helpers
//
// Registration model:
//
// The TypeScript implementation applies decorators at class-definition time;
// here the equivalent layer calls ApplyTypeAnnotation once per annotated
// class and ApplyPropertyAnnotation once per annotated property. Input and
// Output annotations record into the class's BaseDef; a subclass's BaseDef is
// seeded with a snapshot of its superclass's the first time one of its own
// properties is annotated.
package core
