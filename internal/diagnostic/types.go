package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"contract-mapper/internal/common"
)

// Code identifies the kind of problem a finding reports.
type Code string

const (
	CodeFieldNotFound         Code = "FIELD_NOT_FOUND"
	CodeTypeMismatch          Code = "TYPE_MISMATCH"
	CodeRequiredFieldMismatch Code = "REQUIRED_FIELD_MISMATCH"
	CodePIIViolation          Code = "PII_VIOLATION"
	// CodeRuleSkipped marks a rule left out of validation, e.g. a rejected one.
	CodeRuleSkipped Code = "RULE_SKIPPED"
)

// Severity represents the severity level of a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// ParseSeverity is the inverse of Severity.String.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// Finding is a single validation result for one mapping rule.
type Finding struct {
	RuleID     string   `json:"ruleId"                  yaml:"ruleId"`
	FieldPath  string   `json:"fieldPath"               yaml:"fieldPath"`
	IsValid    bool     `json:"isValid"                 yaml:"isValid"`
	Severity   Severity `json:"severity"                yaml:"severity"`
	Message    string   `json:"message"                 yaml:"message"`
	Code       Code     `json:"code"                    yaml:"code"`
	Suggestion string   `json:"suggestion,omitempty"    yaml:"suggestion,omitempty"`
}

// NewError builds an error finding. Error findings are never valid.
func NewError(ruleID, fieldPath string, code Code, message string) Finding {
	return Finding{
		RuleID:    ruleID,
		FieldPath: fieldPath,
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
	}
}

// NewWarning builds a warning finding. The rule stays applicable.
func NewWarning(ruleID, fieldPath string, code Code, message string) Finding {
	return Finding{
		RuleID:    ruleID,
		FieldPath: fieldPath,
		IsValid:   true,
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
	}
}

// WithSuggestion returns a copy of f carrying a suggested fix.
func (f Finding) WithSuggestion(s string) Finding {
	f.Suggestion = s

	return f
}

// String returns a formatted finding string.
func (f Finding) String() string {
	msg := f.Message
	if f.Code != "" {
		msg = fmt.Sprintf("[%s] %s", f.Code, msg)
	}

	if f.FieldPath != "" {
		msg = f.FieldPath + ": " + msg
	}

	if f.Suggestion != "" {
		msg += " (" + f.Suggestion + ")"
	}

	return f.Severity.String() + " " + msg
}

// Findings is the result of validating one rule. Empty means no issues.
type Findings []Finding

// HasErrors returns true if any finding has error severity.
func (fs Findings) HasErrors() bool {
	for _, f := range fs {
		if f.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Errors returns the error findings.
func (fs Findings) Errors() Findings {
	return fs.bySeverity(SeverityError)
}

// Warnings returns the warning findings.
func (fs Findings) Warnings() Findings {
	return fs.bySeverity(SeverityWarning)
}

func (fs Findings) bySeverity(s Severity) Findings {
	return common.Filter(fs, func(f Finding) bool { return f.Severity == s })
}

// String joins all findings, one per line.
func (fs Findings) String() string {
	return strings.Join(common.Map(fs, Finding.String), "\n")
}

// Report holds findings for a whole set of rules, split by severity.
type Report struct {
	Errors   Findings
	Warnings Findings
	Infos    Findings
	// Checked counts the rules that were validated.
	Checked int
}

// Add routes findings into the report by severity.
func (r *Report) Add(findings ...Finding) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			r.Errors = append(r.Errors, f)
		case SeverityWarning:
			r.Warnings = append(r.Warnings, f)
		default:
			r.Infos = append(r.Infos, f)
		}
	}
}

// Findings returns errors followed by warnings. Infos are left out.
func (r *Report) Findings() Findings {
	out := make(Findings, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)

	return append(out, r.Warnings...)
}

// HasErrors returns true if there are any error findings.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// IsValid returns true if there are no errors.
func (r *Report) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined error from all error findings, or nil if valid.
func (r *Report) Error() error {
	if r.IsValid() {
		return nil
	}

	parts := common.Map(r.Errors, Finding.String)

	return errors.New(strings.Join(parts, "; "))
}

// Summary is a one-line count of the report.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d rules checked: %d errors, %d warnings", r.Checked, len(r.Errors), len(r.Warnings))
}
