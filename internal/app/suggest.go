package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/plan"
)

// Suggest resolves the contract pair, consulting the cache first.
func (s Service) Suggest(ctx context.Context, req SuggestRequest) (SuggestResult, error) {
	source, target, err := s.loadPair(ctx, req.SourceID, req.TargetID)
	if err != nil {
		return SuggestResult{}, err
	}

	result := SuggestResult{Source: source, Target: target}

	key, err := s.cacheKey(source, target)
	if err != nil {
		return SuggestResult{}, err
	}

	var p *plan.Plan

	if !req.Refresh {
		if cached, ok := s.cachedPlan(ctx, key); ok {
			p = cached
			result.Cached = true
		}
	}

	if p == nil {
		start := s.now()
		p = s.Resolver.Plan(source, target)
		s.Metrics.ObserveResolveLatency(s.now().Sub(start))

		if s.Cache != nil {
			if err := s.Cache.Put(ctx, key, p, s.CacheTTL); err != nil {
				log.Ctx(ctx).Debug().Err(err).Msg("suggestion cache put failed")
			}
		}
	}

	result.Rules = p.Rules
	result.Unmatched = p.Unmatched
	result.Ambiguous = p.Ambiguous

	for _, rule := range result.Rules {
		assert.NotEmpty(ctx, rule.ID, "suggested rules must carry an id")
	}

	if req.Persist {
		if err := s.persist(ctx, source.ID, target.ID, result.Rules); err != nil {
			return SuggestResult{}, err
		}
	}

	s.Metrics.AddSuggestions(len(result.Rules))
	log.Ctx(ctx).Debug().
		Str("source", source.ID).
		Str("target", target.ID).
		Int("rules", len(result.Rules)).
		Bool("cached", result.Cached).
		Msg("suggestions computed")

	return result, nil
}

func (s Service) cachedPlan(ctx context.Context, key string) (*plan.Plan, bool) {
	if s.Cache == nil {
		return nil, false
	}

	p, ok, err := s.Cache.Get(ctx, key)

	switch {
	case err != nil:
		s.Metrics.IncrementCacheLookup("error")
		log.Ctx(ctx).Debug().Err(err).Msg("suggestion cache get failed")

		return nil, false
	case !ok || p == nil:
		s.Metrics.IncrementCacheLookup("miss")

		return nil, false
	default:
		s.Metrics.IncrementCacheLookup("hit")

		return p, true
	}
}

// persist folds rules into what is stored for the pair and replaces the
// pair's stored set with the result. Reviewed rules survive; stored
// suggestions do not, though one for the same source field lends its id.
func (s Service) persist(ctx context.Context, sourceID, targetID string, rules []mapping.Rule) error {
	if s.Mappings == nil {
		return missingCollaborator("mapping repository")
	}

	stored, err := s.Mappings.ListRules(ctx, sourceID, targetID)
	if err != nil {
		return err
	}

	existing := mapping.NewSet(sourceID, targetID, stored)

	staleIDs := make(map[string]string)

	for _, r := range stored {
		if r.Status == mapping.StatusSuggested {
			staleIDs[r.SourceField] = r.ID
		}
	}

	fresh := make([]mapping.Rule, len(rules))
	for i, r := range rules {
		if id, ok := staleIDs[r.SourceField]; ok {
			r.ID = id
		}

		fresh[i] = r
	}

	merged := plan.Merge(existing, &plan.Plan{SourceID: sourceID, TargetID: targetID, Rules: fresh})

	if err := s.Mappings.ReplaceRules(ctx, sourceID, targetID, merged.Rules); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeOf(err)).
			WithMsg("failed to persist suggestions").
			WithCause(err)
	}

	return nil
}

// cacheKey hashes both contracts and the threshold so any change to either
// yields a new key.
func (s Service) cacheKey(source, target *contract.Contract) (string, error) {
	h := sha256.New()

	for _, c := range []*contract.Contract{source, target} {
		doc, err := json.Marshal(c)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode contract for cache key").
				WithCause(err)
		}

		h.Write(doc)
		h.Write([]byte{0})
	}

	h.Write([]byte(strconv.FormatFloat(s.Resolver.Config().Threshold, 'g', -1, 64)))

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}

	return s.Clock()
}
