package metadata

// SchemaMetadata is a schema definition associated with a module, used by the
// compiler to validate elements and properties found in templates.
type SchemaMetadata struct {
	Name string
}

var (
	// CUSTOM_ELEMENTS_SCHEMA defines a schema that allows an NgModule to
	// contain non-framework elements named with a dash (custom elements).
	CUSTOM_ELEMENTS_SCHEMA = SchemaMetadata{Name: "custom-elements"}

	// NO_ERRORS_SCHEMA defines a schema that allows an NgModule to contain
	// any element or property.
	NO_ERRORS_SCHEMA = SchemaMetadata{Name: "no-errors-schema"}
)
