package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/mapping"
)

// Review applies a reviewer decision to a stored rule and re-validates it
// against its contracts.
func (s Service) Review(ctx context.Context, req ReviewRequest) (ReviewResult, error) {
	if s.Mappings == nil {
		return ReviewResult{}, missingCollaborator("mapping repository")
	}

	if strings.TrimSpace(req.RuleID) == "" {
		return ReviewResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("rule id is required")
	}

	action, err := mapping.ParseAction(string(req.Action))
	if err != nil {
		return ReviewResult{}, err
	}

	rule, err := s.Mappings.GetRule(ctx, req.RuleID)
	if err != nil {
		return ReviewResult{}, err
	}

	if err := rule.Apply(action, req.TargetField, req.Transformation); err != nil {
		return ReviewResult{}, err
	}

	if err := s.Mappings.UpdateRule(ctx, rule); err != nil {
		return ReviewResult{}, err
	}

	s.Metrics.IncrementReviewDecision(string(action))
	log.Ctx(ctx).Debug().
		Str("rule", rule.ID).
		Str("action", string(action)).
		Str("status", string(rule.Status)).
		Msg("rule reviewed")

	result := ReviewResult{Rule: rule}
	if !rule.Status.Applies() {
		return result, nil
	}

	source, target, err := s.loadPair(ctx, rule.SourceContractID, rule.TargetContractID)
	if err != nil {
		return ReviewResult{}, err
	}

	result.Findings = mapping.Validate(rule, source, target)

	return result, nil
}
