package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
source: crm-customers
target: warehouse-customers
121:
  customers.name: dim_customer.full_name
  customers.email: dim_customer.email
ignore:
  - customers.notes
rules:
  - id: r-explicit
    source: customers.email
    target: dim_customer.contact_info
    transformation: None
    confidence: 0.42
    status: rejected
  - source: customers.customer_id
    target: dim_customer.id
    confidence: 0.66
`

	s, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "1", s.Version)
	assert.Nil(t, s.OneToOne, "121 shorthand is expanded")
	require.Len(t, s.Rules, 3)

	// customers.email already has an explicit rule, so only name is pinned.
	pinned := s.Rules[0]
	assert.Equal(t, "customers.name", pinned.SourceField)
	assert.Equal(t, "dim_customer.full_name", pinned.TargetField)
	assert.Equal(t, StatusConfirmed, pinned.Status)
	assert.Equal(t, 1.0, pinned.Confidence)
	assert.NotEmpty(t, pinned.ID)

	assert.Equal(t, "r-explicit", s.Rules[1].ID)
	assert.Equal(t, StatusRejected, s.Rules[1].Status)

	defaulted := s.Rules[2]
	assert.NotEmpty(t, defaulted.ID)
	assert.Equal(t, StatusSuggested, defaulted.Status)
	assert.Equal(t, "None", defaulted.Transformation)

	for _, r := range s.Rules {
		assert.Equal(t, "crm-customers", r.SourceContractID)
		assert.Equal(t, "warehouse-customers", r.TargetContractID)
	}

	assert.True(t, s.IsIgnored("customers.notes"))
	assert.Len(t, s.Applicable(), 2)
	assert.Equal(t, map[Status]int{StatusConfirmed: 1, StatusRejected: 1, StatusSuggested: 1}, s.CountByStatus())

	found, ok := s.Rule("r-explicit")
	require.True(t, ok)
	assert.Equal(t, "dim_customer.contact_info", found.TargetField)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "rules: [\n"},
		{"missing contracts", "rules: []\n"},
		{"unknown status", "source: a\ntarget: b\nrules:\n  - {source: m.a, target: m.b, status: maybe}\n"},
		{"missing target", "source: a\ntarget: b\nrules:\n  - {source: m.a}\n"},
		{"confidence out of range", "source: a\ntarget: b\nrules:\n  - {source: m.a, target: m.b, confidence: 1.5}\n"},
		{"duplicate id", "source: a\ntarget: b\nrules:\n  - {id: x, source: m.a, target: m.b}\n  - {id: x, source: m.c, target: m.d}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestWriteFileAndLoadFile(t *testing.T) {
	s := NewSet("crm-customers", "warehouse-customers", []Rule{
		{ID: "r1", SourceField: "customers.email", TargetField: "dim_customer.email",
			Transformation: "None", Confidence: 0.7, Status: StatusConfirmed},
	})

	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, WriteFile(s, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, loaded.Rules, 1)
	assert.Equal(t, s.Rules[0].ID, loaded.Rules[0].ID)
	assert.Equal(t, StatusConfirmed, loaded.Rules[0].Status)
	assert.Equal(t, "crm-customers", loaded.Rules[0].SourceContractID)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sourceContractId")
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
