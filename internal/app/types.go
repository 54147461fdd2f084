package app

import (
	"io"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/diagnostic"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/match"
	"contract-mapper/internal/plan"
)

type SuggestRequest struct {
	SourceID string
	TargetID string
	// Persist merges the suggestions into the stored rules for the pair.
	Persist bool
	// Refresh bypasses the suggestion cache.
	Refresh bool
}

type SuggestResult struct {
	Source *contract.Contract
	Target *contract.Contract
	Rules  []mapping.Rule
	Unmatched []plan.UnmatchedField
	Ambiguous []plan.AmbiguousField
	Cached    bool
}

type ValidateRequest struct {
	SourceID string
	TargetID string
	// Rules to check. An empty list checks nothing.
	Rules []mapping.Rule
	// Stored checks the rules stored for the pair instead of Rules.
	Stored bool
}

type ValidateResult struct {
	Source *contract.Contract
	Target *contract.Contract
	Report *diagnostic.Report
}

type ExplainRequest struct {
	SourceID    string
	TargetID    string
	SourceField string
	Limit       int
}

type ExplainResult struct {
	SourceField string
	Candidates  match.CandidateList
	Ambiguous   bool
}

type ReviewRequest struct {
	RuleID         string
	Action         mapping.Action
	TargetField    string
	Transformation string
}

type ReviewResult struct {
	Rule     mapping.Rule
	Findings diagnostic.Findings
}

type InferRequest struct {
	Name   string
	Reader io.Reader
	// Save stores the inferred contract in the contract repository.
	Save bool
}

type ImportRequest struct {
	// Name is the contract id. Empty derives it from the first package.
	Name     string
	Dir      string
	Patterns []string
	Save     bool
}
