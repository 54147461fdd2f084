package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/mapping"
	"contract-mapper/internal/ports"
)

const mappingFileSuffix = ".mapping.yaml"

// FileMappingRepository keeps one mapping file per contract pair, named
// <source>__<target>.mapping.yaml.
type FileMappingRepository struct {
	dir string
	mu  sync.Mutex
}

// NewFileMappingRepository constructs a repository rooted at dir.
func NewFileMappingRepository(dir string) *FileMappingRepository {
	return &FileMappingRepository{dir: dir}
}

// MappingFilePath returns where the set for a contract pair is stored.
func (r *FileMappingRepository) MappingFilePath(sourceID, targetID string) string {
	return filepath.Join(r.dir, sourceID+"__"+targetID+mappingFileSuffix)
}

// ReplaceRules rewrites the pair's mapping file with rules. The file's
// version and ignore list are kept.
func (r *FileMappingRepository) ReplaceRules(ctx context.Context, sourceID, targetID string, rules []mapping.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pairRules, err := forPair(sourceID, targetID, rules)
	if err != nil {
		return err
	}

	set, err := r.load(sourceID, targetID)
	if err != nil {
		return err
	}

	set.Rules = pairRules

	if err := r.write(set); err != nil {
		return err
	}

	log.Ctx(ctx).Debug().
		Str("source", sourceID).
		Str("target", targetID).
		Int("rules", len(pairRules)).
		Msg("mapping rules replaced")

	return nil
}

// ListRules returns the rules stored for a contract pair.
func (r *FileMappingRepository) ListRules(_ context.Context, sourceID, targetID string) ([]mapping.Rule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.load(sourceID, targetID)
	if err != nil {
		return nil, err
	}

	return set.Rules, nil
}

// GetRule finds a rule by id across all mapping files.
func (r *FileMappingRepository) GetRule(_ context.Context, id string) (mapping.Rule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.findSet(id)
	if err != nil {
		return mapping.Rule{}, err
	}

	rule, _ := set.Rule(id)

	return *rule, nil
}

// UpdateRule replaces a stored rule.
func (r *FileMappingRepository) UpdateRule(ctx context.Context, rule mapping.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.findSet(rule.ID)
	if err != nil {
		return err
	}

	upsert(set, rule)

	if err := r.write(set); err != nil {
		return err
	}

	log.Ctx(ctx).Debug().Str("rule", rule.ID).Str("status", string(rule.Status)).Msg("mapping rule updated")

	return nil
}

func (r *FileMappingRepository) findSet(ruleID string) (*mapping.Set, error) {
	matches, err := filepath.Glob(filepath.Join(r.dir, "*"+mappingFileSuffix))
	if err != nil {
		return nil, err
	}

	for _, path := range matches {
		set, err := mapping.LoadFile(path)
		if err != nil {
			return nil, err
		}

		if _, ok := set.Rule(ruleID); ok {
			return set, nil
		}
	}

	return nil, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("mapping rule %q not found", ruleID))
}

func (r *FileMappingRepository) load(sourceID, targetID string) (*mapping.Set, error) {
	path := r.MappingFilePath(sourceID, targetID)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return mapping.NewSet(sourceID, targetID, nil), nil
	}

	return mapping.LoadFile(path)
}

func (r *FileMappingRepository) write(set *mapping.Set) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create mappings directory").
			WithCause(err)
	}

	if err := mapping.WriteFile(set, r.MappingFilePath(set.Source, set.Target)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write mapping file").
			WithCause(err)
	}

	return nil
}

// forPair stamps rules without contract ids with the pair's ids and rejects
// rules that belong to another pair.
func forPair(sourceID, targetID string, rules []mapping.Rule) ([]mapping.Rule, error) {
	if sourceID == "" || targetID == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source and target contract ids are required")
	}

	out := make([]mapping.Rule, len(rules))

	for i, rule := range rules {
		if rule.SourceContractID == "" {
			rule.SourceContractID = sourceID
		}

		if rule.TargetContractID == "" {
			rule.TargetContractID = targetID
		}

		if rule.SourceContractID != sourceID || rule.TargetContractID != targetID {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("rule %s belongs to %s -> %s, not %s -> %s",
					rule.ID, rule.SourceContractID, rule.TargetContractID, sourceID, targetID))
		}

		out[i] = rule
	}

	return out, nil
}

func upsert(set *mapping.Set, rule mapping.Rule) {
	if existing, ok := set.Rule(rule.ID); ok {
		*existing = rule

		return
	}

	set.Rules = append(set.Rules, rule)
}

// isMappingFile reports whether name looks like a stored mapping file.
func isMappingFile(name string) bool {
	return strings.HasSuffix(name, mappingFileSuffix)
}

var _ ports.MappingRepository = (*FileMappingRepository)(nil)
