package match

import (
	"math"

	"contract-mapper/internal/contract"
)

// Signal weights. They sum to 1.
const (
	NameWeight        = 0.40
	TypeWeight        = 0.30
	DescriptionWeight = 0.20
	FormatWeight      = 0.10
)

// SynonymNameScore is the name signal for a synonym table hit.
const SynonymNameScore = 0.9

// NameMatch says which rule produced the name signal.
type NameMatch int

const (
	NameFuzzy NameMatch = iota
	NameSynonym
	NameExact
)

func (m NameMatch) String() string {
	switch m {
	case NameExact:
		return "exact"
	case NameSynonym:
		return "synonym"
	default:
		return "levenshtein"
	}
}

// Breakdown holds each raw signal in [0,1] and the weighted total.
// Description and Format are zero when either side lacks the attribute.
type Breakdown struct {
	Name        float64
	NameMatch   NameMatch
	Type        TypeCompatibilityResult
	Description float64
	Format      float64
	Total       float64
}

// Score returns the composite similarity of two fields in [0,1].
func Score(sourcePath string, source contract.Field, targetPath string, target contract.Field) float64 {
	return Explain(sourcePath, source, targetPath, target).Total
}

// Explain computes every signal for a pair of fields.
// A missing description or format leaves its weight unearned; the remaining
// weights are not rescaled.
func Explain(sourcePath string, source contract.Field, targetPath string, target contract.Field) Breakdown {
	var b Breakdown

	b.Name, b.NameMatch = NameScore(NormalizeName(sourcePath), NormalizeName(targetPath))
	b.Type = ScoreTypeCompatibility(source.Type, target.Type)

	if source.Description != "" && target.Description != "" {
		b.Description = Jaccard(DescriptionTokens(source.Description), DescriptionTokens(target.Description))
	}

	if source.Format != "" && target.Format != "" && source.Format == target.Format {
		b.Format = 1.0
	}

	total := b.Name*NameWeight +
		b.Type.Score()*TypeWeight +
		b.Description*DescriptionWeight +
		b.Format*FormatWeight

	b.Total = clampScore(total)

	return b
}

// NameScore scores two normalized names: exact, then synonym, then
// normalized Levenshtein.
func NameScore(a, b string) (float64, NameMatch) {
	switch {
	case a == b:
		return 1.0, NameExact
	case AreSynonyms(a, b), isQualifiedSynonym(a, b):
		return SynonymNameScore, NameSynonym
	default:
		return LevenshteinNormalized(a, b), NameFuzzy
	}
}

// clampScore caps the sum at 1 and drops float noise below 1e-9 so that a
// perfect match is exactly 1.
func clampScore(v float64) float64 {
	v = math.Round(v*1e9) / 1e9

	return math.Min(1.0, math.Max(0, v))
}
