package plan

import (
	"slices"

	"github.com/google/uuid"

	"contract-mapper/internal/mapping"
	"contract-mapper/internal/match"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// Threshold is the score a best match must exceed to become a rule.
	Threshold float64
	// AmbiguityThreshold marks a source field as ambiguous when its two best
	// candidates are closer than this.
	AmbiguityThreshold float64
	// MaxCandidates bounds Candidates when no limit is given.
	MaxCandidates int
	// NewID generates rule ids.
	NewID func() string
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		Threshold:          match.DefaultAcceptThreshold,
		AmbiguityThreshold: match.DefaultAmbiguityThreshold,
		MaxCandidates:      5,
		NewID:              uuid.NewString,
	}
}

// Plan is the full output of one resolution.
type Plan struct {
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
	// Rules are the suggestions, highest confidence first.
	Rules []mapping.Rule `json:"rules"`
	// Unmatched lists source fields whose best score did not pass the threshold.
	Unmatched []UnmatchedField `json:"unmatched,omitempty"`
	// Ambiguous lists accepted source fields whose runner-up was too close.
	Ambiguous []AmbiguousField `json:"ambiguous,omitempty"`
}

// UnmatchedField is a source field that received no suggestion.
type UnmatchedField struct {
	SourcePath string `json:"sourcePath"`
	// BestTarget is empty when the target contract has no fields.
	BestTarget string  `json:"bestTarget,omitempty"`
	BestScore  float64 `json:"bestScore"`
}

// AmbiguousField records the runner-up of an accepted suggestion.
type AmbiguousField struct {
	SourcePath  string  `json:"sourcePath"`
	Chosen      string  `json:"chosen"`
	RunnerUp    string  `json:"runnerUp"`
	ChosenScore float64 `json:"chosenScore"`
	RunnerScore float64 `json:"runnerScore"`
}

// Set wraps the plan's rules in a mapping file.
func (p *Plan) Set() *mapping.Set {
	return mapping.NewSet(p.SourceID, p.TargetID, p.Rules)
}

// Clone returns a copy of p that shares no slices with it.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}

	out := *p
	out.Rules = slices.Clone(p.Rules)
	out.Unmatched = slices.Clone(p.Unmatched)
	out.Ambiguous = slices.Clone(p.Ambiguous)

	return &out
}
