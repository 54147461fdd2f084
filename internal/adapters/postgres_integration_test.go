//go:build integration

package adapters

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"contract-mapper/internal/mapping"
)

type PostgresStoreSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *sql.DB
	contracts *PostgresContractStore
	mappings  *PostgresMappingStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("contracts"),
		tcpostgres.WithUsername("mapper"),
		tcpostgres.WithPassword("mapper"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = OpenPostgres(ctx, dsn)
	s.Require().NoError(err)
	s.contracts = NewPostgresContractStore(s.db)
	s.mappings = NewPostgresMappingStore(s.db)
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS contracts, mapping_rules`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestMissingSchemaIsPrecondition() {
	_, err := s.contracts.GetContract(context.Background(), "orders")
	s.Require().Error(err)
	s.Equal(errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func (s *PostgresStoreSuite) TestContractRoundTrip() {
	ctx := context.Background()
	s.Require().NoError(Migrate(ctx, s.db))

	want := sampleContract(s.T(), ordersYAML)
	s.Require().NoError(s.contracts.SaveContract(ctx, want))
	s.Require().NoError(s.contracts.SaveContract(ctx, want))
	s.Require().NoError(s.contracts.SaveContract(ctx, sampleContract(s.T(), invoicesYAML)))

	got, err := s.contracts.GetContract(ctx, "orders")
	s.Require().NoError(err)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Fatalf("contract changed in storage (-want +got):\n%s", diff)
	}

	all, err := s.contracts.ListContracts(ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
	s.Equal("invoices", all[0].ID)

	_, err = s.contracts.GetContract(ctx, "ledger")
	s.Equal(errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func (s *PostgresStoreSuite) TestRuleLifecycle() {
	ctx := context.Background()
	s.Require().NoError(Migrate(ctx, s.db))

	rules := sampleRules()
	s.Require().NoError(s.mappings.ReplaceRules(ctx, "orders", "invoices", rules))

	listed, err := s.mappings.ListRules(ctx, "orders", "invoices")
	s.Require().NoError(err)
	if diff := cmp.Diff(rules, listed); diff != "" {
		s.T().Fatalf("rules changed in storage (-want +got):\n%s", diff)
	}

	rule, err := s.mappings.GetRule(ctx, "r-1")
	s.Require().NoError(err)
	rule.Confirm()
	s.Require().NoError(s.mappings.UpdateRule(ctx, rule))

	stored, err := s.mappings.GetRule(ctx, "r-1")
	s.Require().NoError(err)
	s.Equal(mapping.StatusConfirmed, stored.Status)

	_, err = s.mappings.GetRule(ctx, "missing")
	s.Equal(errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	err = s.mappings.UpdateRule(ctx, mapping.Rule{ID: "missing", Status: mapping.StatusRejected})
	s.Equal(errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func (s *PostgresStoreSuite) TestReplaceRulesDropsMissingRows() {
	ctx := context.Background()
	s.Require().NoError(Migrate(ctx, s.db))
	s.Require().NoError(s.mappings.ReplaceRules(ctx, "orders", "invoices", sampleRules()))

	s.Require().NoError(s.mappings.ReplaceRules(ctx, "orders", "invoices", sampleRules()[1:]))

	listed, err := s.mappings.ListRules(ctx, "orders", "invoices")
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal("r-2", listed[0].ID)

	_, err = s.mappings.GetRule(ctx, "r-1")
	s.Equal(errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
