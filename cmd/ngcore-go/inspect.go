package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"ngcore-go/packages/core/src/metadata"
	"ngcore-go/packages/core/src/render3"
	"ngcore-go/packages/core/src/types"
	"ngcore-go/packages/core/src/util"
)

// propertyDecl is one @Input/@Output declaration found on a class property.
type propertyDecl struct {
	propName string
	alias    string
	isOutput bool
}

// classDecl is one class found in a scanned source file, with the property
// declarations that appeared in its body.
type classDecl struct {
	filePath  string
	className string
	superName string
	props     []propertyDecl

	registeredType *types.Type
}

var (
	classRe  = regexp.MustCompile(`(?m)^\s*(?:export\s+)?(?:abstract\s+)?class\s+(\w+)(?:\s+extends\s+(\w+))?`)
	inputRe  = regexp.MustCompile(`@Input\s*\(\s*(?:['"]([^'"]*)['"])?\s*\)\s*(?:public\s+|protected\s+|private\s+|readonly\s+)*(?:set\s+)?(\w+)`)
	outputRe = regexp.MustCompile(`@Output\s*\(\s*(?:['"]([^'"]*)['"])?\s*\)\s*(?:public\s+|protected\s+|private\s+|readonly\s+)*(\w+)`)
)

// inspect scans rootPath for TypeScript classes with @Input/@Output property
// decorators, replays them through the registration API and prints each
// class's merged base definition.
func inspect(rootPath string) error {
	fmt.Printf("Scanning %s for decorated classes...\n", rootPath)

	decls, err := findClasses(rootPath)
	if err != nil {
		return fmt.Errorf("error scanning sources: %v", err)
	}
	if len(decls) == 0 {
		fmt.Println("No decorated classes found")
		return nil
	}
	fmt.Printf("Found %d class(es)\n\n", len(decls))

	for _, decl := range registerClasses(decls) {
		printBaseDef(decl)
	}
	return nil
}

// findClasses walks the tree and collects class declarations in source order.
func findClasses(rootPath string) ([]*classDecl, error) {
	var decls []*classDecl

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if info.Name() == "node_modules" || info.Name() == "dist" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".ts") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		decls = append(decls, parseClasses(path, string(data))...)
		return nil
	})

	return decls, err
}

// parseClasses extracts the classes of one file. A class's body is taken to
// end where the next class declaration begins.
func parseClasses(path string, content string) []*classDecl {
	matches := classRe.FindAllStringSubmatchIndex(content, -1)
	var decls []*classDecl
	for i, m := range matches {
		bodyEnd := len(content)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		decl := &classDecl{
			filePath:  path,
			className: content[m[2]:m[3]],
		}
		if m[4] != -1 {
			decl.superName = content[m[4]:m[5]]
		}
		body := content[m[1]:bodyEnd]
		for _, im := range inputRe.FindAllStringSubmatch(body, -1) {
			decl.props = append(decl.props, propertyDecl{propName: im[2], alias: im[1]})
		}
		for _, om := range outputRe.FindAllStringSubmatch(body, -1) {
			decl.props = append(decl.props, propertyDecl{propName: om[2], alias: om[1], isOutput: true})
		}
		decls = append(decls, decl)
	}
	return decls
}

// registerClasses creates a Type per class and replays the property
// decorators through the registration API, superclasses before subclasses so
// each subclass snapshots a fully annotated parent, the way class-definition
// order evaluates decorators in the original.
func registerClasses(decls []*classDecl) []*classDecl {
	byName := map[string]*classDecl{}
	for _, decl := range decls {
		byName[decl.className] = decl
	}

	registered := map[string]*types.Type{}
	var ordered []*classDecl
	var register func(decl *classDecl) *types.Type
	register = func(decl *classDecl) *types.Type {
		if t, ok := registered[decl.className]; ok {
			return t
		}
		var super *types.Type
		if decl.superName != "" {
			if superDecl, ok := byName[decl.superName]; ok {
				super = register(superDecl)
			}
		}
		t := types.NewType(decl.className, super)
		registered[decl.className] = t
		for _, prop := range decl.props {
			util.ApplyPropertyAnnotation(t, prop.propName, propertyAnnotation(prop))
		}
		ordered = append(ordered, decl)
		return t
	}
	for _, decl := range decls {
		register(decl)
	}

	for _, decl := range ordered {
		decl.registeredType = registered[decl.className]
	}
	return ordered
}

func propertyAnnotation(prop propertyDecl) util.PropertyAnnotation {
	var alias *string
	if prop.alias != "" {
		alias = &prop.alias
	}
	if prop.isOutput {
		return &metadata.Output{BindingPropertyName: alias}
	}
	return &metadata.Input{BindingPropertyName: alias}
}

func printBaseDef(decl *classDecl) {
	t := decl.registeredType
	header := decl.className
	if decl.superName != "" {
		header += " extends " + decl.superName
	}
	fmt.Printf("%s (%s)\n", header, decl.filePath)

	def := render3.GetBaseDef(t)
	if def == nil {
		fmt.Println("   no bound properties")
		fmt.Println("")
		return
	}
	for _, ref := range render3.InputRefs(t) {
		fmt.Printf("   input  %s -> %s\n", ref.PropName, ref.TemplateName)
	}
	for _, ref := range render3.OutputRefs(t) {
		fmt.Printf("   output %s -> %s\n", ref.PropName, ref.TemplateName)
	}
	fmt.Println("")
}
