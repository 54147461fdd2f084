package mapping

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"

	"contract-mapper/internal/common"
)

// CurrentVersion is the mapping file version written by this module.
const CurrentVersion = "1"

// Set is the mapping file: every rule between one source and one target contract.
type Set struct {
	Version string `json:"version"          yaml:"version"`
	Source  string `json:"source"           yaml:"source"`
	Target  string `json:"target"           yaml:"target"`
	// OneToOne pins source paths to target paths.
	OneToOne map[string]string `json:"121,omitempty"    yaml:"121,omitempty"`
	// Ignore lists source paths that are intentionally left unmapped.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Rules  []Rule   `json:"rules"            yaml:"rules"`
}

// NewSet wraps resolver output for the two contracts.
func NewSet(sourceID, targetID string, rules []Rule) *Set {
	return &Set{
		Version: CurrentVersion,
		Source:  sourceID,
		Target:  targetID,
		Rules:   rules,
	}
}

// Rule returns the rule with the given id.
func (s *Set) Rule(id string) (*Rule, bool) {
	for i := range s.Rules {
		if s.Rules[i].ID == id {
			return &s.Rules[i], true
		}
	}

	return nil, false
}

// Applicable returns the rules that are not rejected.
func (s *Set) Applicable() []Rule {
	return common.Filter(s.Rules, func(r Rule) bool { return r.Status.Applies() })
}

// IsIgnored reports whether sourcePath is on the ignore list.
func (s *Set) IsIgnored(sourcePath string) bool {
	return slices.Contains(s.Ignore, sourcePath)
}

// CountByStatus tallies rules per status.
func (s *Set) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, r := range s.Rules {
		counts[r.Status]++
	}

	return counts
}

// Normalize fills defaults and expands the 121 shorthand into confirmed
// rules placed ahead of the explicit ones. Sources already covered by an
// explicit rule are not expanded.
func (s *Set) Normalize() {
	if s.Version == "" {
		s.Version = CurrentVersion
	}

	if len(s.OneToOne) > 0 {
		covered := make(map[string]struct{}, len(s.Rules))
		for _, r := range s.Rules {
			covered[r.SourceField] = struct{}{}
		}

		var pinned []Rule

		for _, src := range slices.Sorted(maps.Keys(s.OneToOne)) {
			if _, ok := covered[src]; ok {
				continue
			}

			pinned = append(pinned, Rule{
				SourceField:    src,
				TargetField:    s.OneToOne[src],
				Transformation: common.NoneStr,
				Confidence:     1,
				Status:         StatusConfirmed,
			})
		}

		s.Rules = append(pinned, s.Rules...)
		s.OneToOne = nil
	}

	for i := range s.Rules {
		r := &s.Rules[i]
		if r.ID == "" {
			r.ID = uuid.NewString()
		}

		if r.Status == "" {
			r.Status = StatusSuggested
		}

		if r.Transformation == "" {
			r.Transformation = common.NoneStr
		}

		r.SourceContractID = s.Source
		r.TargetContractID = s.Target
	}
}

// Check verifies the structure of a normalized set. It does not look at the
// contracts; that is Validate's job.
func (s *Set) Check() error {
	if s.Source == "" || s.Target == "" {
		return invalidSet("mapping file must name both source and target contracts")
	}

	seen := make(map[string]struct{}, len(s.Rules))

	for i, r := range s.Rules {
		switch {
		case r.SourceField == "" || r.TargetField == "":
			return invalidSet(fmt.Sprintf("rule %d: source and target fields must be set", i))
		case !r.Status.IsValid():
			return invalidSet(fmt.Sprintf("rule %s: unknown status %q", r.ID, r.Status))
		case r.Confidence < 0 || r.Confidence > 1:
			return invalidSet(fmt.Sprintf("rule %s: confidence %v outside [0,1]", r.ID, r.Confidence))
		}

		if _, dup := seen[r.ID]; dup {
			return invalidSet(fmt.Sprintf("duplicate rule id %q", r.ID))
		}

		seen[r.ID] = struct{}{}
	}

	return nil
}

func invalidSet(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
