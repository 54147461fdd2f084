package adapters

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFileContractRepositoryGetContract(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "orders.yaml", ordersYAML)
	// Stored under a name that does not match its id.
	writeFile(t, dir, "billing.yml", invoicesYAML)
	writeFile(t, dir, "orders__invoices.mapping.yaml", "version: \"1\"\nsource: orders\ntarget: invoices\nrules: []\n")
	writeFile(t, dir, "README.md", "not a contract")

	repo := NewFileContractRepository(dir)
	ctx := context.Background()

	tests := []struct {
		name     string
		id       string
		wantCode errbuilder.ErrCode
		wantErr  bool
	}{
		{name: "direct file", id: "orders"},
		{name: "found by scan", id: "invoices"},
		{name: "missing", id: "ledger", wantErr: true, wantCode: errbuilder.CodeNotFound},
		{name: "empty id", id: " ", wantErr: true, wantCode: errbuilder.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := repo.GetContract(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)

				if diff := cmp.Diff(tt.wantCode, errbuilder.CodeOf(err)); diff != "" {
					t.Fatalf("unexpected error code (-want +got):\n%s", diff)
				}

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.id, c.ID)
		})
	}
}

func TestFileContractRepositoryListContracts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "orders.yaml", ordersYAML)
	writeFile(t, dir, "invoices.yaml", invoicesYAML)

	all, err := NewFileContractRepository(dir).ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "invoices", all[0].ID)
	require.Equal(t, "orders", all[1].ID)
}

func TestFileContractRepositoryListInvalidContract(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "id: broken\nmodels:\n  m:\n    fields:\n      x:\n        type: nope\n")

	_, err := NewFileContractRepository(dir).ListContracts(context.Background())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestFileContractRepositoryMissingDirectory(t *testing.T) {
	repo := NewFileContractRepository(filepath.Join(t.TempDir(), "absent"))

	_, err := repo.ListContracts(context.Background())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestFileContractRepositorySaveContract(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "contracts")
	repo := NewFileContractRepository(dir)
	ctx := context.Background()

	want := sampleContract(t, ordersYAML)
	require.NoError(t, repo.SaveContract(ctx, want))
	require.FileExists(t, filepath.Join(dir, "orders.yaml"))

	got, err := repo.GetContract(ctx, "orders")
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("contract changed after save (-want +got):\n%s", diff)
	}

	want.ID = ""
	err = repo.SaveContract(ctx, want)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
