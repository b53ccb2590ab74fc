package compiler

// CompilerFacade defines the interface shared between ngcore-go and the
// ngc-go compiler to allow for late binding of the compiler for JIT purposes.
//
// This file mirrors:
//   - packages/core/src/compiler/compiler_facade_interface.ts   (main)
//   - packages/compiler/src/compiler_facade_interface.ts        (replica)

import (
	"ngcore-go/packages/core/src/types"
)

// CompilerFacade is implemented by the compiler side. The metadata arguments
// are the annotation values recorded on the class; each call returns the
// compiled definition for the class, which the core stores on the type.
type CompilerFacade interface {
	CompileDirective(t *types.Type, meta interface{}) interface{}
	CompileComponent(t *types.Type, meta interface{}) interface{}
	CompilePipe(t *types.Type, meta interface{}) interface{}
	CompileNgModule(t *types.Type, meta interface{}) interface{}
}

// FactoryTarget represents the type of target being compiled.
type FactoryTarget int

const (
	FactoryTargetDirective FactoryTarget = iota
	FactoryTargetComponent
	FactoryTargetInjectable
	FactoryTargetPipe
	FactoryTargetNgModule
)

type pendingCompilation struct {
	t      *types.Type
	target FactoryTarget
	meta   interface{}
}

var facade CompilerFacade

// Annotations are applied while classes are being declared, which can be
// before the compiler has been loaded. Compilations requested until then are
// queued and flushed by SetCompilerFacade.
var pending []pendingCompilation

// GetCompilerFacade returns the installed compiler facade. It panics when no
// facade has been set: JIT compilation was requested but the compiler is not
// loaded.
func GetCompilerFacade() CompilerFacade {
	if facade == nil {
		panic("JIT compilation failed: the compiler facade is not loaded")
	}
	return facade
}

// SetCompilerFacade installs the compiler facade and flushes any compilations
// that were requested before it was available. Passing nil uninstalls the
// facade and leaves later requests queued again.
func SetCompilerFacade(f CompilerFacade) {
	facade = f
	if facade == nil {
		return
	}
	queued := pending
	pending = nil
	for _, p := range queued {
		compile(p)
	}
}

// EnqueueCompilation requests compilation of t for the given target. The
// compilation runs immediately when a facade is installed, otherwise it is
// queued until SetCompilerFacade.
func EnqueueCompilation(t *types.Type, target FactoryTarget, meta interface{}) {
	p := pendingCompilation{t: t, target: target, meta: meta}
	if facade == nil {
		pending = append(pending, p)
		return
	}
	compile(p)
}

// HasPendingCompilations reports whether any compilation requests are queued
// waiting for a compiler facade.
func HasPendingCompilations() bool {
	return len(pending) > 0
}

func compile(p pendingCompilation) {
	switch p.target {
	case FactoryTargetComponent:
		p.t.Def = facade.CompileComponent(p.t, p.meta)
	case FactoryTargetDirective:
		p.t.Def = facade.CompileDirective(p.t, p.meta)
	case FactoryTargetPipe:
		p.t.Def = facade.CompilePipe(p.t, p.meta)
	case FactoryTargetNgModule:
		p.t.Def = facade.CompileNgModule(p.t, p.meta)
	}
}
