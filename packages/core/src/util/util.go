package util

import "strings"

// SplitAtColon splits a "name: alias" style metadata entry at the first
// colon, trimming both parts. If no colon is present the defaultValues are
// returned.
func SplitAtColon(input string, defaultValues []string) []string {
	index := strings.IndexRune(input, ':')
	if index == -1 {
		return defaultValues
	}
	return []string{
		strings.TrimSpace(input[:index]),
		strings.TrimSpace(input[index+1:]),
	}
}
