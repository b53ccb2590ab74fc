package util_test

import (
	"testing"

	"ngcore-go/packages/core/src/metadata"
	"ngcore-go/packages/core/src/types"
	"ngcore-go/packages/core/src/util"
)

func TestApplyPropertyAnnotation(t *testing.T) {
	t.Run("should accumulate annotations per property in application order", func(t *testing.T) {
		cls := types.NewType("MyDir", nil)
		first := &metadata.Input{}
		second := &metadata.HostBinding{}
		util.ApplyPropertyAnnotation(cls, "value", first)
		util.ApplyPropertyAnnotation(cls, "value", second)

		props := util.PropMetadata(cls)
		if len(props["value"]) != 2 {
			t.Fatalf("Expected two annotations on 'value', got %d", len(props["value"]))
		}
		if props["value"][0] != first || props["value"][1] != second {
			t.Error("Expected annotations in application order")
		}
	})

	t.Run("should keep properties separate", func(t *testing.T) {
		cls := types.NewType("MyDir", nil)
		util.ApplyPropertyAnnotation(cls, "a", &metadata.Input{})
		util.ApplyPropertyAnnotation(cls, "b", &metadata.Output{})

		props := util.PropMetadata(cls)
		if len(props["a"]) != 1 || len(props["b"]) != 1 {
			t.Errorf("Expected one annotation per property, got %d and %d", len(props["a"]), len(props["b"]))
		}
	})

	t.Run("should return an empty table for an unannotated class", func(t *testing.T) {
		cls := types.NewType("Plain", nil)
		if props := util.PropMetadata(cls); len(props) != 0 {
			t.Errorf("Expected an empty table, got %v", props)
		}
	})
}

func TestFillProperties(t *testing.T) {
	t.Run("should copy entries missing from the target", func(t *testing.T) {
		target := map[string]string{}
		util.FillProperties(target, map[string]string{"a": "a", "b": "b2"})
		if target["a"] != "a" || target["b"] != "b2" {
			t.Errorf("Expected both entries to be copied, got %v", target)
		}
	})

	t.Run("should not overwrite existing entries", func(t *testing.T) {
		target := map[string]string{"a": "own"}
		util.FillProperties(target, map[string]string{"a": "inherited", "b": "b"})
		if target["a"] != "own" {
			t.Errorf("Expected the existing entry to win, got '%s'", target["a"])
		}
		if target["b"] != "b" {
			t.Errorf("Expected the missing entry to be filled, got '%s'", target["b"])
		}
	})
}

func TestSplitAtColon(t *testing.T) {
	t.Run("should split at the first colon and trim", func(t *testing.T) {
		result := util.SplitAtColon(" a : b:c ", nil)
		if len(result) != 2 || result[0] != "a" || result[1] != "b:c" {
			t.Errorf("Unexpected result %v", result)
		}
	})

	t.Run("should fall back to the default values", func(t *testing.T) {
		result := util.SplitAtColon("ab", []string{"ab", "ab"})
		if len(result) != 2 || result[0] != "ab" || result[1] != "ab" {
			t.Errorf("Unexpected result %v", result)
		}
	})
}
