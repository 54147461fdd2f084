package match

import (
	"sort"

	"contract-mapper/internal/contract"
)

// Candidate is one target field scored against a source field.
type Candidate struct {
	SourcePath string
	TargetPath string
	Source     contract.Field
	Target     contract.Field
	Breakdown  Breakdown
}

// Score returns the composite score of the candidate.
func (c Candidate) Score() float64 {
	return c.Breakdown.Total
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores source against every target and orders the result by
// score descending. Equal scores keep target enumeration order, so the first
// candidate is always the first-encountered maximum.
func RankCandidates(sourcePath string, source contract.Field, targets []contract.FlatField) CandidateList {
	candidates := make(CandidateList, 0, len(targets))

	for _, t := range targets {
		candidates = append(candidates, Candidate{
			SourcePath: sourcePath,
			TargetPath: t.Path,
			Source:     source,
			Target:     t.Field,
			Breakdown:  Explain(sourcePath, source, t.Path, t.Field),
		})
	}

	sort.Stable(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface. Only the score is compared; use a stable
// sort to keep enumeration order among ties.
func (c CandidateList) Less(i, j int) bool {
	return c[i].Score() > c[j].Score()
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score()-c[1].Score() < threshold
}
