package plan

import (
	"contract-mapper/internal/mapping"
)

// Merge folds fresh suggestions into an existing mapping file.
//
// Priority, highest first:
//  1. reviewed rules already in the file (confirmed, modified, rejected)
//  2. the file's ignore list
//  3. fresh suggestions
//
// Suggested rules still in the file are replaced by the fresh ones, so
// rerunning after a contract change refreshes confidences and hints.
func Merge(existing *mapping.Set, p *Plan) *mapping.Set {
	if existing == nil {
		return p.Set()
	}

	merged := &mapping.Set{
		Version: existing.Version,
		Source:  existing.Source,
		Target:  existing.Target,
		Ignore:  existing.Ignore,
	}

	if merged.Version == "" {
		merged.Version = mapping.CurrentVersion
	}

	if merged.Source == "" {
		merged.Source = p.SourceID
	}

	if merged.Target == "" {
		merged.Target = p.TargetID
	}

	reviewed := make(map[string]struct{}, len(existing.Rules))

	for _, rule := range existing.Rules {
		if rule.Status == mapping.StatusSuggested {
			continue
		}

		reviewed[rule.SourceField] = struct{}{}
		merged.Rules = append(merged.Rules, rule)
	}

	for _, rule := range p.Rules {
		if _, ok := reviewed[rule.SourceField]; ok {
			continue
		}

		if existing.IsIgnored(rule.SourceField) {
			continue
		}

		merged.Rules = append(merged.Rules, rule)
	}

	return merged
}
