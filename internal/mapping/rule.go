package mapping

import (
	"fmt"
	"math"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Status is the review state of a rule.
type Status string

const (
	StatusSuggested Status = "suggested"
	StatusConfirmed Status = "confirmed"
	StatusModified  Status = "modified"
	StatusRejected  Status = "rejected"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusSuggested, StatusConfirmed, StatusModified, StatusRejected:
		return true
	default:
		return false
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value is
// kept empty so that Normalize can default it.
func (s *Status) UnmarshalText(text []byte) error {
	parsed := Status(strings.ToLower(strings.TrimSpace(string(text))))
	if parsed != "" && !parsed.IsValid() {
		return fmt.Errorf("unknown rule status %q", string(text))
	}

	*s = parsed

	return nil
}

// Applies reports whether a rule in this status will be applied downstream.
func (s Status) Applies() bool {
	return s != StatusRejected
}

// Rule is a proposed or reviewed correspondence between one source field and
// one target field. Confidence is in [0,1].
type Rule struct {
	ID               string  `json:"id"                         yaml:"id"`
	SourceContractID string  `json:"sourceContractId,omitempty" yaml:"-"`
	TargetContractID string  `json:"targetContractId,omitempty" yaml:"-"`
	SourceField      string  `json:"sourceField"                yaml:"source"`
	TargetField      string  `json:"targetField"                yaml:"target"`
	Transformation   string  `json:"transformation"             yaml:"transformation"`
	Confidence       float64 `json:"confidence"                 yaml:"confidence"`
	Status           Status  `json:"status"                     yaml:"status"`
}

// ConfidencePercent returns the confidence on a 0..100 display scale.
func (r Rule) ConfidencePercent() int {
	return int(math.Round(r.Confidence * 100))
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s (%d%%, %s)", r.SourceField, r.TargetField, r.ConfidencePercent(), r.Status)
}

// Action is a reviewer decision on a rule.
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionReject  Action = "reject"
	ActionModify  Action = "modify"
)

// ParseAction parses a reviewer action name.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionConfirm, ActionReject, ActionModify:
		return a, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown review action %q", s))
	}
}

// Confirm accepts the rule as is.
func (r *Rule) Confirm() {
	r.Status = StatusConfirmed
}

// Reject marks the rule as not to be applied.
func (r *Rule) Reject() {
	r.Status = StatusRejected
}

// Modify repoints the rule and marks it modified. An empty transformation
// keeps the current hint.
func (r *Rule) Modify(targetField, transformation string) error {
	if strings.TrimSpace(targetField) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("rule %s: modified target field must be set", r.ID))
	}

	r.TargetField = targetField
	if transformation != "" {
		r.Transformation = transformation
	}

	r.Status = StatusModified

	return nil
}

// Apply performs a reviewer action.
func (r *Rule) Apply(action Action, targetField, transformation string) error {
	switch action {
	case ActionConfirm:
		r.Confirm()
	case ActionReject:
		r.Reject()
	case ActionModify:
		return r.Modify(targetField, transformation)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown review action %q", action))
	}

	return nil
}
