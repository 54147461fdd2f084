package app

import (
	"time"

	"contract-mapper/internal/adapters"
	"contract-mapper/internal/metrics"
	"contract-mapper/internal/plan"
	"contract-mapper/internal/ports"
)

// DefaultCacheTTL is how long suggestions stay cached.
const DefaultCacheTTL = 15 * time.Minute

// Service wires the matching engine to its collaborators. Mappings, Cache
// and Generator are optional; operations that need a missing one fail with
// CodeFailedPrecondition.
type Service struct {
	Contracts ports.ContractRepository
	Mappings  ports.MappingRepository
	Cache     ports.SuggestionCache
	Generator ports.ContractGenerator
	Resolver  *plan.Resolver
	Metrics   *metrics.Metrics
	CacheTTL  time.Duration
	Clock     func() time.Time
}

// NewService builds a service over the given repositories with an
// in-memory cache, CSV inference and the default resolver.
func NewService(contracts ports.ContractRepository, mappings ports.MappingRepository) Service {
	return Service{
		Contracts: contracts,
		Mappings:  mappings,
		Cache:     adapters.NewMemorySuggestionCache(),
		Generator: adapters.NewCSVContractGenerator(),
		Resolver:  plan.NewResolver(plan.DefaultConfig()),
		CacheTTL:  DefaultCacheTTL,
		Clock:     time.Now,
	}
}
