package ports

//go:generate mockgen -source=mappings.go -destination=mocks/mappings.go -package=mocks

import (
	"context"
	"time"

	"contract-mapper/internal/mapping"
	"contract-mapper/internal/plan"
)

// MappingRepository persists mapping rules and reviewer decisions.
type MappingRepository interface {
	// ReplaceRules makes rules the complete rule set of a contract pair.
	// Stored rules of the pair missing from rules are removed.
	ReplaceRules(ctx context.Context, sourceID, targetID string, rules []mapping.Rule) error
	ListRules(ctx context.Context, sourceID, targetID string) ([]mapping.Rule, error)
	GetRule(ctx context.Context, id string) (mapping.Rule, error)
	UpdateRule(ctx context.Context, rule mapping.Rule) error
}

// SuggestionCache memoizes resolver output keyed by contract content.
// A miss returns ok == false and a nil error.
type SuggestionCache interface {
	Get(ctx context.Context, key string) (p *plan.Plan, ok bool, err error)
	Put(ctx context.Context, key string, p *plan.Plan, ttl time.Duration) error
}
