package httpapi

import (
	"contract-mapper/internal/app"
	"contract-mapper/internal/diagnostic"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/match"
	"contract-mapper/internal/plan"
)

type SuggestRequest struct {
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
	Persist  bool   `json:"persist"`
	Refresh  bool   `json:"refresh"`
}

type SuggestResponse struct {
	Rules     []mapping.Rule   `json:"rules"`
	Unmatched []unmatchedField `json:"unmatched"`
	Ambiguous []ambiguousField `json:"ambiguous"`
	Cached    bool             `json:"cached"`
}

type unmatchedField struct {
	SourceField string  `json:"sourceField"`
	BestTarget  string  `json:"bestTarget,omitempty"`
	BestScore   float64 `json:"bestScore"`
}

type ambiguousField struct {
	SourceField string  `json:"sourceField"`
	Chosen      string  `json:"chosen"`
	ChosenScore float64 `json:"chosenScore"`
	RunnerUp    string  `json:"runnerUp"`
	RunnerScore float64 `json:"runnerScore"`
}

// ValidateRequest checks the posted rules. Omitting rules checks the rules
// stored for the pair.
type ValidateRequest struct {
	SourceID string         `json:"sourceId"`
	TargetID string         `json:"targetId"`
	Rules    []mapping.Rule `json:"rules"`
}

type ValidateResponse struct {
	Findings diagnostic.Findings `json:"findings"`
	Infos    diagnostic.Findings `json:"infos"`
	Valid    bool                `json:"valid"`
	Summary  string              `json:"summary"`
}

type ExplainResponse struct {
	SourceField string          `json:"sourceField"`
	Ambiguous   bool            `json:"ambiguous"`
	Candidates  []candidateView `json:"candidates"`
}

type candidateView struct {
	TargetField string        `json:"targetField"`
	Score       float64       `json:"score"`
	Breakdown   breakdownView `json:"breakdown"`
}

type breakdownView struct {
	Name        float64 `json:"name"`
	NameMatch   string  `json:"nameMatch"`
	Type        float64 `json:"type"`
	TypeVerdict string  `json:"typeVerdict"`
	Description float64 `json:"description"`
	Format      float64 `json:"format"`
}

type ReviewRequest struct {
	Action         string `json:"action"`
	TargetField    string `json:"targetField"`
	Transformation string `json:"transformation"`
}

type ReviewResponse struct {
	Rule     mapping.Rule        `json:"rule"`
	Findings diagnostic.Findings `json:"findings"`
}

func fromSuggestResult(res app.SuggestResult) SuggestResponse {
	out := SuggestResponse{
		Rules:     res.Rules,
		Unmatched: make([]unmatchedField, 0, len(res.Unmatched)),
		Ambiguous: make([]ambiguousField, 0, len(res.Ambiguous)),
		Cached:    res.Cached,
	}

	if out.Rules == nil {
		out.Rules = []mapping.Rule{}
	}

	for _, u := range res.Unmatched {
		out.Unmatched = append(out.Unmatched, fromUnmatched(u))
	}

	for _, a := range res.Ambiguous {
		out.Ambiguous = append(out.Ambiguous, ambiguousField{
			SourceField: a.SourcePath,
			Chosen:      a.Chosen,
			ChosenScore: a.ChosenScore,
			RunnerUp:    a.RunnerUp,
			RunnerScore: a.RunnerScore,
		})
	}

	return out
}

func fromUnmatched(u plan.UnmatchedField) unmatchedField {
	return unmatchedField{SourceField: u.SourcePath, BestTarget: u.BestTarget, BestScore: u.BestScore}
}

func fromReport(r *diagnostic.Report) ValidateResponse {
	findings := r.Findings()
	if findings == nil {
		findings = diagnostic.Findings{}
	}

	infos := r.Infos
	if infos == nil {
		infos = diagnostic.Findings{}
	}

	return ValidateResponse{
		Findings: findings,
		Infos:    infos,
		Valid:    r.IsValid(),
		Summary:  r.Summary(),
	}
}

func fromExplainResult(res app.ExplainResult) ExplainResponse {
	out := ExplainResponse{
		SourceField: res.SourceField,
		Ambiguous:   res.Ambiguous,
		Candidates:  make([]candidateView, 0, len(res.Candidates)),
	}

	for _, c := range res.Candidates {
		out.Candidates = append(out.Candidates, fromCandidate(c))
	}

	return out
}

func fromCandidate(c match.Candidate) candidateView {
	b := c.Breakdown

	return candidateView{
		TargetField: c.TargetPath,
		Score:       c.Score(),
		Breakdown: breakdownView{
			Name:        b.Name,
			NameMatch:   b.NameMatch.String(),
			Type:        b.Type.Compatibility.Score(),
			TypeVerdict: b.Type.Compatibility.String(),
			Description: b.Description,
			Format:      b.Format,
		},
	}
}
