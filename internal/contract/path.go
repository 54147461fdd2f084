package contract

import "strings"

// JoinPath builds the dotted address of a field.
func JoinPath(model, field string) string {
	return model + "." + field
}

// SplitPath splits "model.field" into its parts. Field names may not contain
// dots, so the split happens at the last separator.
func SplitPath(path string) (model, field string, ok bool) {
	idx := strings.LastIndexByte(path, '.')
	if idx <= 0 || idx == len(path)-1 {
		return "", "", false
	}

	return path[:idx], path[idx+1:], true
}

// LastSegment returns the part of path after the final dot, or path itself.
func LastSegment(path string) string {
	if idx := strings.LastIndexByte(path, '.'); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
