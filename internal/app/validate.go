package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"contract-mapper/internal/mapping"
)

// Validate checks rules against the pair's contracts. Findings are data:
// the error return is reserved for failures to load inputs.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	source, target, err := s.loadPair(ctx, req.SourceID, req.TargetID)
	if err != nil {
		return ValidateResult{}, err
	}

	rules := req.Rules
	if req.Stored {
		if s.Mappings == nil {
			return ValidateResult{}, missingCollaborator("mapping repository")
		}

		rules, err = s.Mappings.ListRules(ctx, source.ID, target.ID)
		if err != nil {
			return ValidateResult{}, err
		}
	}

	set := mapping.NewSet(source.ID, target.ID, rules)
	report := mapping.ValidateSet(set, source, target)
	s.Metrics.ObserveReport(report)

	log.Ctx(ctx).Debug().
		Str("source", source.ID).
		Str("target", target.ID).
		Int("errors", len(report.Errors)).
		Int("warnings", len(report.Warnings)).
		Msg("mapping validated")

	return ValidateResult{Source: source, Target: target, Report: report}, nil
}
