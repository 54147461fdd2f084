package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contract-mapper/internal/common"
	"contract-mapper/internal/contract"
	"contract-mapper/internal/diagnostic"
)

const crmYAML = `
id: crm-customers
info:
  title: CRM Customers
  version: 1.0.0
  owner: sales
models:
  customers:
    fields:
      customer_id:
        type: integer
        required: true
      name:
        type: string
        required: true
      email:
        type: string
        pii: true
      signup_date:
        type: string
      notes:
        type: string
`

const warehouseYAML = `
id: warehouse-customers
info:
  title: Warehouse Customers
  version: 2.1.0
models:
  dim_customer:
    fields:
      id:
        type: integer
        required: true
      full_name:
        type: string
      email:
        type: string
        format: email
        pii: true
      contact_info:
        type: string
      signup_date:
        type: timestamp
        required: true
      notes:
        type: string
        maxLength: 255
`

func loadContracts(t *testing.T) (*contract.Contract, *contract.Contract) {
	t.Helper()

	source, err := contract.Parse([]byte(crmYAML))
	require.NoError(t, err)

	target, err := contract.Parse([]byte(warehouseYAML))
	require.NoError(t, err)

	return source, target
}

func withCode(fs diagnostic.Findings, code diagnostic.Code) diagnostic.Findings {
	return common.Filter(fs, func(f diagnostic.Finding) bool { return f.Code == code })
}

func hasCode(fs diagnostic.Findings, code diagnostic.Code) bool {
	return len(withCode(fs, code)) > 0
}
