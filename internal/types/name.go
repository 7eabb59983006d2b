package types

import "strings"

// LocalName strips any namespace wrapper from an element or attribute name.
// Both the "{uri}local" form and the "prefix:local" form reduce to "local".
func LocalName(name string) string {
	if strings.HasPrefix(name, "{") {
		if end := strings.IndexByte(name, '}'); end >= 0 {
			name = name[end+1:]
		}
	}
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
