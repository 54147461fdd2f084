package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/plan"
)

const ordersYAML = `
id: orders
info:
  title: Orders
  version: 1.0.0
models:
  order:
    fields:
      order_id:
        type: integer
        required: true
      total:
        type: decimal
`

const invoicesYAML = `
id: invoices
info:
  title: Invoices
models:
  invoice:
    fields:
      id:
        type: integer
      amount:
        type: number
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func sampleContract(t *testing.T, body string) *contract.Contract {
	t.Helper()

	c, err := contract.Parse([]byte(body))
	require.NoError(t, err)

	return c
}

func sampleRules() []mapping.Rule {
	return []mapping.Rule{
		{
			ID:               "r-1",
			SourceContractID: "orders",
			TargetContractID: "invoices",
			SourceField:      "order.order_id",
			TargetField:      "invoice.id",
			Transformation:   "None",
			Confidence:       0.66,
			Status:           mapping.StatusSuggested,
		},
		{
			ID:               "r-2",
			SourceContractID: "orders",
			TargetContractID: "invoices",
			SourceField:      "order.total",
			TargetField:      "invoice.amount",
			Transformation:   "CAST(total AS DOUBLE)",
			Confidence:       0.58,
			Status:           mapping.StatusSuggested,
		},
	}
}

func samplePlan() *plan.Plan {
	return &plan.Plan{
		SourceID: "orders",
		TargetID: "invoices",
		Rules:    sampleRules(),
		Unmatched: []plan.UnmatchedField{
			{SourcePath: "order.note", BestTarget: "invoice.id", BestScore: 0.12},
		},
		Ambiguous: []plan.AmbiguousField{
			{SourcePath: "order.total", Chosen: "invoice.amount", RunnerUp: "invoice.id", ChosenScore: 0.58, RunnerScore: 0.55},
		},
	}
}
