package util

// FillProperties copies every entry of source into target that target does
// not already have. Existing entries in target are never overwritten.
func FillProperties(target map[string]string, source map[string]string) {
	for key, value := range source {
		if _, ok := target[key]; !ok {
			target[key] = value
		}
	}
}
