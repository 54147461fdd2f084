package match

import (
	"slices"

	"contract-mapper/internal/contract"
)

// TypeCompatibility is the level of compatibility between a source and a target type.
type TypeCompatibility int

const (
	// TypeIncompatible means the pair is not in the compatibility table.
	// It still scores above zero since a transformation may bridge it.
	TypeIncompatible TypeCompatibility = iota
	// TypeCompatible means the source type is listed as mappable to the target.
	TypeCompatible
	// TypeIdentical means the types are the same.
	TypeIdentical
)

const (
	VerdictIdentical    = "identical"
	VerdictCompatible   = "compatible"
	VerdictIncompatible = "incompatible"
)

// Type signal values for each compatibility level.
const (
	IdenticalTypeScore    = 1.0
	CompatibleTypeScore   = 0.8
	IncompatibleTypeScore = 0.2
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeCompatible:
		return VerdictCompatible
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// Score returns the type signal in [0,1] for the level.
func (c TypeCompatibility) Score() float64 {
	switch c {
	case TypeIdentical:
		return IdenticalTypeScore
	case TypeCompatible:
		return CompatibleTypeScore
	default:
		return IncompatibleTypeScore
	}
}

// compatibleTypes lists, per source type, the target types it can map into.
// The table is directional: integer -> number holds, number -> integer is a
// separate entry.
var compatibleTypes = map[contract.FieldType][]contract.FieldType{
	contract.TypeString:    {contract.TypeString},
	contract.TypeInteger:   {contract.TypeInteger, contract.TypeNumber},
	contract.TypeNumber:    {contract.TypeNumber, contract.TypeInteger, contract.TypeDecimal},
	contract.TypeDecimal:   {contract.TypeDecimal, contract.TypeNumber},
	contract.TypeBoolean:   {contract.TypeBoolean},
	contract.TypeTimestamp: {contract.TypeTimestamp, contract.TypeDate},
	contract.TypeDate:      {contract.TypeDate, contract.TypeTimestamp},
	contract.TypeArray:     {contract.TypeArray},
	contract.TypeObject:    {contract.TypeObject},
}

// TypeCompatibilityResult explains a compatibility decision.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string
	SourceType    contract.FieldType
	TargetType    contract.FieldType
}

// Score returns the type signal of the result.
func (r TypeCompatibilityResult) Score() float64 {
	return r.Compatibility.Score()
}

// ScoreTypeCompatibility looks up source -> target in the compatibility table.
func ScoreTypeCompatibility(source, target contract.FieldType) TypeCompatibilityResult {
	result := TypeCompatibilityResult{SourceType: source, TargetType: target}

	switch {
	case source.IsValid() && source == target:
		result.Compatibility = TypeIdentical
		result.Reason = "types are identical"
	case slices.Contains(compatibleTypes[source], target):
		result.Compatibility = TypeCompatible
		result.Reason = source.String() + " maps into " + target.String()
	default:
		result.Compatibility = TypeIncompatible
		result.Reason = source.String() + " does not map into " + target.String() + " without a transformation"
	}

	return result
}

// TypeScore is shorthand for ScoreTypeCompatibility(source, target).Score().
func TypeScore(source, target contract.FieldType) float64 {
	return ScoreTypeCompatibility(source, target).Score()
}
