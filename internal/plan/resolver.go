package plan

import (
	"fmt"
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/match"
)

// Resolver performs the resolution pipeline.
type Resolver struct {
	config ResolutionConfig
}

// NewResolver creates a new Resolver. Zero config values fall back to defaults.
func NewResolver(config ResolutionConfig) *Resolver {
	defaults := DefaultConfig()

	if config.Threshold <= 0 {
		config.Threshold = defaults.Threshold
	}

	if config.AmbiguityThreshold <= 0 {
		config.AmbiguityThreshold = defaults.AmbiguityThreshold
	}

	if config.MaxCandidates <= 0 {
		config.MaxCandidates = defaults.MaxCandidates
	}

	if config.NewID == nil {
		config.NewID = defaults.NewID
	}

	return &Resolver{config: config}
}

// Config returns the effective configuration.
func (r *Resolver) Config() ResolutionConfig {
	return r.config
}

// Resolve suggests at most one rule per source field.
func (r *Resolver) Resolve(source, target *contract.Contract) []mapping.Rule {
	return r.Plan(source, target).Rules
}

// Plan runs the resolution and also reports unmatched and ambiguous fields.
func (r *Resolver) Plan(source, target *contract.Contract) *Plan {
	p := &Plan{
		SourceID: contractID(source),
		TargetID: contractID(target),
		Rules:    []mapping.Rule{},
	}

	targets := target.Flatten()

	for _, sf := range source.Flatten() {
		candidates := match.RankCandidates(sf.Path, sf.Field, targets)

		best := candidates.Best()
		if best == nil || best.Score() <= r.config.Threshold {
			p.Unmatched = append(p.Unmatched, unmatched(sf.Path, best))

			continue
		}

		if candidates.IsAmbiguous(r.config.AmbiguityThreshold) {
			p.Ambiguous = append(p.Ambiguous, AmbiguousField{
				SourcePath:  sf.Path,
				Chosen:      best.TargetPath,
				RunnerUp:    candidates[1].TargetPath,
				ChosenScore: best.Score(),
				RunnerScore: candidates[1].Score(),
			})
		}

		p.Rules = append(p.Rules, r.newRule(p, best))
	}

	slices.SortStableFunc(p.Rules, func(a, b mapping.Rule) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})

	return p
}

// Candidates ranks every target field for one source field. n <= 0 uses
// the configured MaxCandidates.
func (r *Resolver) Candidates(
	source, target *contract.Contract,
	sourcePath string,
	n int,
) (match.CandidateList, error) {
	field, ok := source.Lookup(sourcePath)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("field %s not found in contract %s", sourcePath, source.DisplayName()))
	}

	if n <= 0 {
		n = r.config.MaxCandidates
	}

	return match.RankCandidates(sourcePath, field, target.Flatten()).Top(n), nil
}

func (r *Resolver) newRule(p *Plan, c *match.Candidate) mapping.Rule {
	return mapping.Rule{
		ID:               r.config.NewID(),
		SourceContractID: p.SourceID,
		TargetContractID: p.TargetID,
		SourceField:      c.SourcePath,
		TargetField:      c.TargetPath,
		Transformation:   mapping.SuggestTransformation(c.Source, c.Target),
		Confidence:       c.Score(),
		Status:           mapping.StatusSuggested,
	}
}

func unmatched(path string, best *match.Candidate) UnmatchedField {
	u := UnmatchedField{SourcePath: path}
	if best != nil {
		u.BestTarget = best.TargetPath
		u.BestScore = best.Score()
	}

	return u
}

func contractID(c *contract.Contract) string {
	if c == nil {
		return ""
	}

	return c.ID
}
