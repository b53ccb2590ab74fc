package render3

import (
	"sort"

	"ngcore-go/packages/core/src/linker"
	"ngcore-go/packages/core/src/types"
)

// InputRefs projects the merged input mappings of t into the binding list a
// ComponentFactory exposes. The result is sorted by property name; the
// underlying mapping carries no ordering.
func InputRefs(t *types.Type) []linker.PropBinding {
	if def := GetBaseDef(t); def != nil {
		return toRefArray(def.Inputs)
	}
	return nil
}

// OutputRefs projects the merged output mappings of t into the binding list a
// ComponentFactory exposes.
func OutputRefs(t *types.Type) []linker.PropBinding {
	if def := GetBaseDef(t); def != nil {
		return toRefArray(def.Outputs)
	}
	return nil
}

func toRefArray(m map[string]string) []linker.PropBinding {
	refs := make([]linker.PropBinding, 0, len(m))
	for propName, templateName := range m {
		refs = append(refs, linker.PropBinding{PropName: propName, TemplateName: templateName})
	}
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].PropName < refs[j].PropName
	})
	return refs
}
