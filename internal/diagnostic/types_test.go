package diagnostic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())

	_, err := ParseSeverity("fatal")
	assert.Error(t, err)
}

func TestFinding_JSONShape(t *testing.T) {
	f := NewError("r1", "customers.ssn", CodePIIViolation, "pii field mapped into non-pii field").
		WithSuggestion("flag the target field as pii")

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "r1", raw["ruleId"])
	assert.Equal(t, "customers.ssn", raw["fieldPath"])
	assert.Equal(t, false, raw["isValid"])
	assert.Equal(t, "error", raw["severity"])
	assert.Equal(t, "PII_VIOLATION", raw["code"])
	assert.Equal(t, "flag the target field as pii", raw["suggestion"])

	var back Finding
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, f, back)
}

func TestFindings_Helpers(t *testing.T) {
	fs := Findings{
		NewError("r1", "a.x", CodeFieldNotFound, "missing"),
		NewWarning("r1", "a.y", CodeTypeMismatch, "types differ"),
		NewWarning("r1", "a.y", CodeRequiredFieldMismatch, "optional into required"),
	}

	assert.True(t, fs.HasErrors())
	assert.Len(t, fs.Errors(), 1)
	assert.Len(t, fs.Warnings(), 2)
	assert.Contains(t, fs.String(), "error a.x: [FIELD_NOT_FOUND] missing")

	var none Findings
	assert.False(t, none.HasErrors())
	assert.Empty(t, none.String())
}

func TestReport(t *testing.T) {
	var r Report

	assert.True(t, r.IsValid())
	assert.NoError(t, r.Error())

	r.Add(
		NewWarning("r1", "a.b", CodeTypeMismatch, "types differ"),
		Finding{RuleID: "r2", Severity: SeverityInfo, Code: CodeRuleSkipped, Message: "rejected"},
	)
	r.Checked = 1

	assert.True(t, r.IsValid())
	assert.Len(t, r.Infos, 1)
	assert.Len(t, r.Findings(), 1)

	r.Add(NewError("r3", "a.c", CodePIIViolation, "leak"))
	r.Checked++

	assert.False(t, r.IsValid())
	assert.True(t, r.HasErrors())
	assert.EqualError(t, r.Error(), "error a.c: [PII_VIOLATION] leak")
	assert.Equal(t, "2 rules checked: 1 errors, 1 warnings", r.Summary())
}
