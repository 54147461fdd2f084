package contract

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=FieldType -linecomment -output=fieldtype_string.go

// FieldType is the logical kind of a contract field.
type FieldType int

const (
	TypeUnknown   FieldType = iota // unknown
	TypeString                     // string
	TypeInteger                    // integer
	TypeNumber                     // number
	TypeDecimal                    // decimal
	TypeBoolean                    // boolean
	TypeTimestamp                  // timestamp
	TypeDate                       // date
	TypeArray                      // array
	TypeObject                     // object

	// typeTotal is the number of declared kinds including TypeUnknown.
	typeTotal = int(iota)
)

// FieldTypes returns every valid field type in declaration order.
func FieldTypes() []FieldType {
	out := make([]FieldType, 0, typeTotal-1)
	for t := TypeString; int(t) < typeTotal; t++ {
		out = append(out, t)
	}

	return out
}

// ParseFieldType parses a type name case-insensitively.
func ParseFieldType(s string) (FieldType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range FieldTypes() {
		if t.String() == name {
			return t, nil
		}
	}

	return TypeUnknown, fmt.Errorf("unknown field type %q", s)
}

// IsValid reports whether t is one of the enumerated kinds.
func (t FieldType) IsValid() bool {
	return t > TypeUnknown && int(t) < typeTotal
}

// MarshalText implements encoding.TextMarshaler.
func (t FieldType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid field type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FieldType) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
