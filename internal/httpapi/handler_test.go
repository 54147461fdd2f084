package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-mapper/internal/adapters"
	"contract-mapper/internal/app"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/metrics"
)

const crmYAML = `
id: crm-customers
info:
  title: CRM Customers
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
`

const warehouseYAML = `
id: warehouse-customers
info:
  title: Warehouse Customers
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
`

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crm-customers.yaml"), []byte(crmYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "warehouse-customers.yaml"), []byte(warehouseYAML), 0o644))

	reg := prometheus.NewRegistry()
	svc := app.NewService(adapters.NewFileContractRepository(dir), adapters.NewFileMappingRepository(dir))
	svc.Metrics = metrics.New(reg)

	srv := httptest.NewServer(NewRouter(svc, RouterConfig{Logger: zerolog.Nop(), Gatherer: reg}))
	t.Cleanup(srv.Close)

	return srv, dir
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	do(t, http.MethodPost, srv.URL+"/v1/mappings/suggest", SuggestRequest{SourceID: "crm-customers", TargetID: "warehouse-customers"})

	resp = do(t, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body bytes.Buffer
	_, err := body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "contract_mapper_suggestions_emitted_total 3")
}

func TestContracts(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/v1/contracts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[map[string][]map[string]any](t, resp)
	assert.Len(t, list["contracts"], 2)

	resp = do(t, http.MethodGet, srv.URL+"/v1/contracts/crm-customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	one := decode[map[string]any](t, resp)
	assert.Equal(t, "CRM Customers", one["title"])

	resp = do(t, http.MethodGet, srv.URL+"/v1/contracts/ledger", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decode[errorResponse](t, resp)
	assert.Equal(t, "not_found", errBody.Error)
	assert.Contains(t, errBody.ErrorDescription, "ledger")
}

func TestSuggestPersistAndReview(t *testing.T) {
	srv, dir := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/v1/mappings/suggest", SuggestRequest{
		SourceID: "crm-customers",
		TargetID: "warehouse-customers",
		Persist:  true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	suggested := decode[SuggestResponse](t, resp)
	require.Len(t, suggested.Rules, 3)
	assert.Equal(t, "customers.email", suggested.Rules[0].SourceField)
	assert.Equal(t, "dim_customer.email", suggested.Rules[0].TargetField)
	assert.FileExists(t, filepath.Join(dir, "crm-customers__warehouse-customers.mapping.yaml"))

	resp = do(t, http.MethodPatch, srv.URL+"/v1/mappings/rules/"+suggested.Rules[0].ID, ReviewRequest{Action: "confirm"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reviewed := decode[ReviewResponse](t, resp)
	assert.Equal(t, mapping.StatusConfirmed, reviewed.Rule.Status)
	assert.Empty(t, reviewed.Findings)

	resp = do(t, http.MethodPatch, srv.URL+"/v1/mappings/rules/"+suggested.Rules[0].ID, ReviewRequest{Action: "modify"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPatch, srv.URL+"/v1/mappings/rules/unknown", ReviewRequest{Action: "confirm"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidate(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/v1/mappings/validate", ValidateRequest{
		SourceID: "crm-customers",
		TargetID: "warehouse-customers",
		Rules: []mapping.Rule{
			{ID: "r1", SourceField: "customers.email", TargetField: "dim_customer.contact_info"},
			{ID: "r2", SourceField: "customers.name", TargetField: "dim_customer.nickname", Status: mapping.StatusRejected},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ValidateResponse](t, resp)
	assert.False(t, body.Valid)
	require.Len(t, body.Findings, 1)
	assert.Equal(t, "PII_VIOLATION", string(body.Findings[0].Code))
	require.Len(t, body.Infos, 1)
	assert.Equal(t, "r2", body.Infos[0].RuleID)
}

func TestValidateEmptyRulesChecksNothing(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/v1/mappings/suggest", SuggestRequest{
		SourceID: "crm-customers",
		TargetID: "warehouse-customers",
		Persist:  true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/v1/mappings/validate", ValidateRequest{
		SourceID: "crm-customers",
		TargetID: "warehouse-customers",
		Rules:    []mapping.Rule{},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ValidateResponse](t, resp)
	assert.True(t, body.Valid)
	assert.Equal(t, "0 rules checked: 0 errors, 0 warnings", body.Summary)

	resp = do(t, http.MethodPost, srv.URL+"/v1/mappings/validate", ValidateRequest{
		SourceID: "crm-customers",
		TargetID: "warehouse-customers",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored := decode[ValidateResponse](t, resp)
	assert.NotEqual(t, body.Summary, stored.Summary)
}

func TestExplain(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet,
		srv.URL+"/v1/mappings/explain?sourceId=crm-customers&targetId=warehouse-customers&field=customers.name&limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ExplainResponse](t, resp)
	require.Len(t, body.Candidates, 2)
	assert.Equal(t, "dim_customer.full_name", body.Candidates[0].TargetField)
	assert.Equal(t, "synonym", body.Candidates[0].Breakdown.NameMatch)
	assert.Equal(t, "identical", body.Candidates[0].Breakdown.TypeVerdict)

	resp = do(t, http.MethodGet, srv.URL+"/v1/mappings/explain?sourceId=crm-customers&targetId=warehouse-customers&field=customers.name&limit=x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRejectsMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/v1/mappings/suggest", map[string]string{"source": "crm-customers"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "bad_request", decode[errorResponse](t, resp).Error)
}
