package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Explain ranks target candidates for one source field with their score breakdowns.
func (s Service) Explain(ctx context.Context, req ExplainRequest) (ExplainResult, error) {
	if strings.TrimSpace(req.SourceField) == "" {
		return ExplainResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source field is required")
	}

	source, target, err := s.loadPair(ctx, req.SourceID, req.TargetID)
	if err != nil {
		return ExplainResult{}, err
	}

	candidates, err := s.Resolver.Candidates(source, target, req.SourceField, req.Limit)
	if err != nil {
		return ExplainResult{}, err
	}

	return ExplainResult{
		SourceField: req.SourceField,
		Candidates:  candidates,
		Ambiguous:   candidates.IsAmbiguous(s.Resolver.Config().AmbiguityThreshold),
	}, nil
}
