package mapping

import (
	"fmt"

	"contract-mapper/internal/common"
	"contract-mapper/internal/contract"
	"contract-mapper/internal/diagnostic"
	"contract-mapper/internal/match"
)

// minTypeScore is the type signal below which a pair needs a transformation.
const minTypeScore = 0.5

// Validate checks one rule against its contracts. An empty result means no
// issues were found. Missing fields are reported, and the remaining checks
// are skipped because they need both field definitions.
func Validate(rule Rule, source, target *contract.Contract) diagnostic.Findings {
	var findings diagnostic.Findings

	src, srcOK := source.Lookup(rule.SourceField)
	if !srcOK {
		findings = append(findings, fieldNotFound(rule.ID, rule.SourceField, source))
	}

	tgt, tgtOK := target.Lookup(rule.TargetField)
	if !tgtOK {
		findings = append(findings, fieldNotFound(rule.ID, rule.TargetField, target))
	}

	if !srcOK || !tgtOK {
		return findings
	}

	if match.TypeScore(src.Type, tgt.Type) < minTypeScore {
		findings = append(findings, diagnostic.NewWarning(rule.ID, rule.TargetField, diagnostic.CodeTypeMismatch,
			fmt.Sprintf("Source type %s is not compatible with target type %s", src.Type, tgt.Type)).
			WithSuggestion(typeMismatchSuggestion(src, tgt)))
	}

	if tgt.Required && !src.Required {
		findings = append(findings, diagnostic.NewWarning(rule.ID, rule.TargetField, diagnostic.CodeRequiredFieldMismatch,
			fmt.Sprintf("Target field %s is required but source field %s is optional", rule.TargetField, rule.SourceField)).
			WithSuggestion("Provide a default value or validate that the source is always present"))
	}

	if src.PII && !tgt.PII {
		findings = append(findings, diagnostic.NewError(rule.ID, rule.TargetField, diagnostic.CodePIIViolation,
			fmt.Sprintf("PII field %s cannot be mapped to non-PII field %s", rule.SourceField, rule.TargetField)).
			WithSuggestion("Mark the target field as PII or remove this mapping"))
	}

	return findings
}

// ValidateSet validates every applicable rule of s and gathers all findings.
// Rejected rules are recorded as info and not checked.
func ValidateSet(s *Set, source, target *contract.Contract) *diagnostic.Report {
	report := &diagnostic.Report{}
	if s == nil {
		return report
	}

	for _, rule := range s.Applicable() {
		report.Add(Validate(rule, source, target)...)
		report.Checked++
	}

	rejected := common.Filter(s.Rules, func(r Rule) bool { return !r.Status.Applies() })
	for _, rule := range rejected {
		report.Add(diagnostic.Finding{
			RuleID:    rule.ID,
			FieldPath: rule.SourceField,
			IsValid:   true,
			Severity:  diagnostic.SeverityInfo,
			Code:      diagnostic.CodeRuleSkipped,
			Message:   fmt.Sprintf("Rule %s is rejected and will not be applied", rule.ID),
		})
	}

	return report
}

func fieldNotFound(ruleID, path string, c *contract.Contract) diagnostic.Finding {
	return diagnostic.NewError(ruleID, path, diagnostic.CodeFieldNotFound,
		fmt.Sprintf("Field %s not found in contract %s", path, c.DisplayName()))
}

func typeMismatchSuggestion(src, tgt contract.Field) string {
	if hint := SuggestTransformation(src, tgt); hint != common.NoneStr {
		return "Add a transformation: " + hint
	}

	return fmt.Sprintf("Add a transformation from %s to %s", src.Type, tgt.Type)
}
