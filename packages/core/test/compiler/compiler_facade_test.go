package compiler_test

import (
	"testing"

	"ngcore-go/packages/core/src/compiler"
	"ngcore-go/packages/core/src/metadata"
	"ngcore-go/packages/core/src/types"
	"ngcore-go/packages/core/src/util"

	"github.com/google/go-cmp/cmp"
)

// fakeFacade records which classes were compiled as what.
type fakeFacade struct {
	compiled []string
}

func (f *fakeFacade) CompileDirective(t *types.Type, meta interface{}) interface{} {
	f.compiled = append(f.compiled, "directive:"+t.Name)
	return "dirdef:" + t.Name
}

func (f *fakeFacade) CompileComponent(t *types.Type, meta interface{}) interface{} {
	f.compiled = append(f.compiled, "component:"+t.Name)
	return "cmpdef:" + t.Name
}

func (f *fakeFacade) CompilePipe(t *types.Type, meta interface{}) interface{} {
	f.compiled = append(f.compiled, "pipe:"+t.Name)
	return "pipedef:" + t.Name
}

func (f *fakeFacade) CompileNgModule(t *types.Type, meta interface{}) interface{} {
	f.compiled = append(f.compiled, "module:"+t.Name)
	return "moddef:" + t.Name
}

func TestCompilerFacade(t *testing.T) {
	t.Run("should panic when no facade is loaded", func(t *testing.T) {
		compiler.SetCompilerFacade(nil)
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected GetCompilerFacade to panic without a facade")
			}
		}()
		compiler.GetCompilerFacade()
	})

	t.Run("should queue compilations requested before the facade is loaded", func(t *testing.T) {
		compiler.SetCompilerFacade(nil)

		dir := types.NewType("QueuedDir", nil)
		cmp1 := types.NewType("QueuedCmp", nil)
		util.ApplyTypeAnnotation(dir, &metadata.Directive{Selector: "[queued]"})
		util.ApplyTypeAnnotation(cmp1, &metadata.Component{
			Directive: metadata.Directive{Selector: "queued-cmp"},
			Template:  "<span></span>",
		})

		if !compiler.HasPendingCompilations() {
			t.Fatal("Expected compilations to be pending")
		}
		if dir.Def != nil {
			t.Error("Expected no definition before the facade is loaded")
		}

		facade := &fakeFacade{}
		compiler.SetCompilerFacade(facade)

		expected := []string{"directive:QueuedDir", "component:QueuedCmp"}
		if diff := cmp.Diff(expected, facade.compiled); diff != "" {
			t.Errorf("Compiled order mismatch (-want +got):\n%s", diff)
		}
		if compiler.HasPendingCompilations() {
			t.Error("Expected the queue to be drained")
		}
		if dir.Def != "dirdef:QueuedDir" {
			t.Errorf("Expected the directive definition to be stored, got %v", dir.Def)
		}
		if cmp1.Def != "cmpdef:QueuedCmp" {
			t.Errorf("Expected the component definition to be stored, got %v", cmp1.Def)
		}

		compiler.SetCompilerFacade(nil)
	})

	t.Run("should compile immediately once the facade is loaded", func(t *testing.T) {
		facade := &fakeFacade{}
		compiler.SetCompilerFacade(facade)
		defer compiler.SetCompilerFacade(nil)

		pipe := types.NewType("UppercasePipe", nil)
		util.ApplyTypeAnnotation(pipe, &metadata.Pipe{Name: "uppercase"})

		mod := types.NewType("AppModule", nil)
		util.ApplyTypeAnnotation(mod, &metadata.NgModule{Declarations: []*types.Type{pipe}})

		expected := []string{"pipe:UppercasePipe", "module:AppModule"}
		if diff := cmp.Diff(expected, facade.compiled); diff != "" {
			t.Errorf("Compiled order mismatch (-want +got):\n%s", diff)
		}
		if pipe.Def != "pipedef:UppercasePipe" {
			t.Errorf("Expected the pipe definition to be stored, got %v", pipe.Def)
		}
	})

	t.Run("should keep the class annotation available to the facade", func(t *testing.T) {
		compiler.SetCompilerFacade(&fakeFacade{})
		defer compiler.SetCompilerFacade(nil)

		dir := types.NewType("MyDir", nil)
		ann := &metadata.Directive{Selector: "[my-dir]", ExportAs: "myDir"}
		util.ApplyTypeAnnotation(dir, ann)

		annotations := util.Annotations(dir)
		if len(annotations) != 1 {
			t.Fatalf("Expected one annotation, got %d", len(annotations))
		}
		if annotations[0] != ann {
			t.Error("Expected the recorded annotation to be the applied one")
		}
	})
}
