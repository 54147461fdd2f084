package mapping

import (
	"strconv"

	"contract-mapper/internal/common"
	"contract-mapper/internal/contract"
)

// transformRule is one step of the hint cascade.
type transformRule struct {
	applies func(source, target contract.Field) bool
	hint    func(source, target contract.Field) string
}

func fixedHint(s string) func(source, target contract.Field) string {
	return func(contract.Field, contract.Field) string { return s }
}

func typeChange(from, to contract.FieldType) func(source, target contract.Field) bool {
	return func(source, target contract.Field) bool {
		return source.Type == from && target.Type == to
	}
}

// transformCascade is checked in order; the first rule that applies wins.
var transformCascade = []transformRule{
	{
		applies: typeChange(contract.TypeString, contract.TypeInteger),
		hint:    fixedHint("Convert string to integer"),
	},
	{
		applies: typeChange(contract.TypeString, contract.TypeTimestamp),
		hint:    fixedHint("Parse date string to timestamp"),
	},
	{
		applies: typeChange(contract.TypeInteger, contract.TypeString),
		hint:    fixedHint("Convert integer to string"),
	},
	{
		applies: func(source, target contract.Field) bool {
			return target.Format == "email" && source.Format != "email"
		},
		hint: fixedHint("Validate email format"),
	},
	{
		applies: func(source, target contract.Field) bool {
			return target.Pattern != "" && source.Pattern == ""
		},
		hint: func(_, target contract.Field) string {
			return "Apply pattern: " + target.Pattern
		},
	},
	{
		applies: func(source, target contract.Field) bool {
			return target.MaxLength != nil && source.MaxLength == nil
		},
		hint: func(_, target contract.Field) string {
			return "Truncate to " + strconv.Itoa(*target.MaxLength) + " characters"
		},
	},
}

// SuggestTransformation returns a human-readable hint for moving a value from
// source into target, or "None" when no conversion is needed. The hint is
// advisory and never executed.
func SuggestTransformation(source, target contract.Field) string {
	for _, r := range transformCascade {
		if r.applies(source, target) {
			return r.hint(source, target)
		}
	}

	return common.NoneStr
}
