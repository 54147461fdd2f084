package common

import "strings"

// UnknownStr is the String() value for out-of-range enum values.
const UnknownStr = "unknown"

// NoneStr is the transformation hint for a pair that needs no conversion.
const NoneStr = "None"

// FirstNonEmpty returns the first argument that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
