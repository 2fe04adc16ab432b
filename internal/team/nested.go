package team

import "strings"

// Nested traverses a map-of-maps by a dot-separated path, returning def the
// moment any segment is missing or the current value is not itself a map.
// It performs no store interaction.
func Nested(data map[string]any, path string, def any) any {
	var current any = data
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = m[key]
		if !ok {
			return def
		}
	}
	return current
}
