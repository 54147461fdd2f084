package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/diagnostic"
)

func rule(id, source, target string) Rule {
	return Rule{ID: id, SourceField: source, TargetField: target, Status: StatusSuggested}
}

func TestValidate_CleanRuleHasNoFindings(t *testing.T) {
	source, target := loadContracts(t)

	findings := Validate(rule("r1", "customers.customer_id", "dim_customer.id"), source, target)
	assert.Empty(t, findings)

	findings = Validate(rule("r2", "customers.email", "dim_customer.email"), source, target)
	assert.Empty(t, findings)
}

func TestValidate_MissingSourceField(t *testing.T) {
	source, target := loadContracts(t)

	findings := Validate(rule("r1", "customers.missing", "dim_customer.email"), source, target)

	require.Len(t, findings, 1)
	assert.Equal(t, diagnostic.CodeFieldNotFound, findings[0].Code)
	assert.Equal(t, diagnostic.SeverityError, findings[0].Severity)
	assert.False(t, findings[0].IsValid)
	assert.Equal(t, "customers.missing", findings[0].FieldPath)
	assert.Contains(t, findings[0].Message, "CRM Customers")
}

func TestValidate_BothFieldsMissing(t *testing.T) {
	source, target := loadContracts(t)

	findings := Validate(rule("r1", "nope.a", "nope.b"), source, target)

	require.Len(t, findings, 2)
	assert.Len(t, withCode(findings, diagnostic.CodeFieldNotFound), 2)
	assert.Contains(t, findings[1].Message, "Warehouse Customers")
}

// A missing source must not produce PII findings even though the target exists.
func TestValidate_MissingFieldSkipsOtherChecks(t *testing.T) {
	source, target := loadContracts(t)

	findings := Validate(rule("r1", "customers.missing", "dim_customer.signup_date"), source, target)

	require.Len(t, findings, 1)
	assert.False(t, hasCode(findings, diagnostic.CodeTypeMismatch))
	assert.False(t, hasCode(findings, diagnostic.CodeRequiredFieldMismatch))
	assert.False(t, hasCode(findings, diagnostic.CodePIIViolation))
}

func TestValidate_PIIViolation(t *testing.T) {
	source, target := loadContracts(t)

	findings := Validate(rule("r1", "customers.email", "dim_customer.contact_info"), source, target)

	pii := withCode(findings, diagnostic.CodePIIViolation)
	require.Len(t, pii, 1)
	assert.Equal(t, diagnostic.SeverityError, pii[0].Severity)
	assert.True(t, findings.HasErrors())
	assert.NotEmpty(t, pii[0].Suggestion)
}

func TestValidate_PIIInvariantHoldsForEveryNonPIITarget(t *testing.T) {
	source, target := loadContracts(t)

	for _, tf := range target.Flatten() {
		if tf.Field.PII {
			continue
		}

		findings := Validate(rule("r", "customers.email", tf.Path), source, target)
		assert.True(t, hasCode(findings, diagnostic.CodePIIViolation), "target %s", tf.Path)
		assert.True(t, findings.HasErrors(), "target %s", tf.Path)
	}
}

func TestValidate_TypeMismatchAndRequired(t *testing.T) {
	source, target := loadContracts(t)

	// string -> timestamp, optional -> required
	findings := Validate(rule("r1", "customers.signup_date", "dim_customer.signup_date"), source, target)

	require.Len(t, findings, 2)
	assert.False(t, findings.HasErrors())

	mismatch := withCode(findings, diagnostic.CodeTypeMismatch)
	require.Len(t, mismatch, 1)
	assert.Equal(t, diagnostic.SeverityWarning, mismatch[0].Severity)
	assert.True(t, mismatch[0].IsValid)
	assert.Equal(t, "Add a transformation: Parse date string to timestamp", mismatch[0].Suggestion)

	assert.True(t, hasCode(findings, diagnostic.CodeRequiredFieldMismatch))
}

// Required source into optional target is allowed.
func TestValidate_RequiredSourceIntoOptionalTarget(t *testing.T) {
	source, target := loadContracts(t)

	findings := Validate(rule("r1", "customers.name", "dim_customer.full_name"), source, target)
	assert.False(t, hasCode(findings, diagnostic.CodeRequiredFieldMismatch))
	assert.Empty(t, findings)
}

func TestValidate_CompatibleTypesDoNotWarn(t *testing.T) {
	source := &contract.Contract{ID: "s", Models: []contract.Model{{
		Name:   "m",
		Fields: []contract.Field{{Name: "amount", Type: contract.TypeInteger}},
	}}}
	target := &contract.Contract{ID: "t", Models: []contract.Model{{
		Name:   "m",
		Fields: []contract.Field{{Name: "amount", Type: contract.TypeNumber}},
	}}}

	assert.Empty(t, Validate(rule("r1", "m.amount", "m.amount"), source, target))
}

func TestValidateSet(t *testing.T) {
	source, target := loadContracts(t)

	rejected := rule("r3", "customers.email", "dim_customer.contact_info")
	rejected.Reject()

	set := NewSet(source.ID, target.ID, []Rule{
		rule("r1", "customers.customer_id", "dim_customer.id"),
		rule("r2", "customers.missing", "dim_customer.email"),
		rejected,
		rule("r4", "customers.signup_date", "dim_customer.signup_date"),
	})

	report := ValidateSet(set, source, target)

	assert.Equal(t, 3, report.Checked)
	assert.False(t, report.IsValid())
	assert.Len(t, report.Errors, 1)
	assert.Len(t, report.Warnings, 2)
	require.Len(t, report.Infos, 1)
	assert.Equal(t, "r3", report.Infos[0].RuleID)
	for _, f := range report.Findings() {
		assert.NotEqual(t, "r3", f.RuleID)
	}
	assert.Error(t, report.Error())
}

func TestValidateSet_Nil(t *testing.T) {
	report := ValidateSet(nil, nil, nil)
	assert.True(t, report.IsValid())
	assert.Zero(t, report.Checked)
}
