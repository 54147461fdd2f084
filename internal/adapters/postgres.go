package adapters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS contracts (
	id         TEXT PRIMARY KEY,
	version    TEXT NOT NULL DEFAULT '',
	document   JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS mapping_rules (
	id                 TEXT PRIMARY KEY,
	source_contract_id TEXT NOT NULL,
	target_contract_id TEXT NOT NULL,
	source_field       TEXT NOT NULL,
	target_field       TEXT NOT NULL,
	transformation     TEXT NOT NULL,
	confidence         DOUBLE PRECISION NOT NULL,
	status             TEXT NOT NULL,
	position           SERIAL,
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS mapping_rules_pair_idx
	ON mapping_rules (source_contract_id, target_contract_id);
`

const undefinedTable = "42P01"

// OpenPostgres opens and pings a PostgreSQL database through lib/pq.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// Migrate creates the tables used by the Postgres stores.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}

// PostgresContractStore keeps contracts as JSON documents.
type PostgresContractStore struct {
	db *sql.DB
}

// NewPostgresContractStore constructs a PostgreSQL-backed contract store.
func NewPostgresContractStore(db *sql.DB) *PostgresContractStore {
	return &PostgresContractStore{db: db}
}

func (s *PostgresContractStore) GetContract(ctx context.Context, id string) (*contract.Contract, error) {
	var document []byte

	err := s.db.QueryRowContext(ctx, `SELECT document FROM contracts WHERE id = $1`, id).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("contract %q not found", id))
		}

		return nil, storeError("get contract", err)
	}

	c, err := contract.ParseJSON(document)
	if err != nil {
		return nil, fmt.Errorf("decode contract %s: %w", id, err)
	}

	return c, nil
}

func (s *PostgresContractStore) ListContracts(ctx context.Context) ([]*contract.Contract, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document FROM contracts ORDER BY id`)
	if err != nil {
		return nil, storeError("list contracts", err)
	}
	defer rows.Close()

	var out []*contract.Contract

	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}

		c, err := contract.ParseJSON(document)
		if err != nil {
			return nil, fmt.Errorf("decode contract: %w", err)
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	return out, nil
}

func (s *PostgresContractStore) SaveContract(ctx context.Context, c *contract.Contract) error {
	if err := c.Validate(); err != nil {
		return err
	}

	document, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal contract: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO contracts (id, version, document, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET
			version = EXCLUDED.version,
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at
	`, c.ID, c.Version, document)
	if err != nil {
		return storeError("save contract", err)
	}

	log.Ctx(ctx).Debug().Str("contract", c.ID).Msg("contract stored")

	return nil
}

// PostgresMappingStore persists rules one row each.
type PostgresMappingStore struct {
	db *sql.DB
}

// NewPostgresMappingStore constructs a PostgreSQL-backed mapping store.
func NewPostgresMappingStore(db *sql.DB) *PostgresMappingStore {
	return &PostgresMappingStore{db: db}
}

const ruleColumns = `id, source_contract_id, target_contract_id, source_field, target_field,
	transformation, confidence, status`

// ReplaceRules deletes the pair's rows and inserts rules in one transaction.
func (s *PostgresMappingStore) ReplaceRules(ctx context.Context, sourceID, targetID string, rules []mapping.Rule) error {
	pairRules, err := forPair(sourceID, targetID, rules)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace rules: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM mapping_rules
		WHERE source_contract_id = $1 AND target_contract_id = $2
	`, sourceID, targetID); err != nil {
		return storeError("clear rules", err)
	}

	if len(pairRules) > 0 {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO mapping_rules (`+ruleColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`)
		if err != nil {
			return storeError("prepare insert rules", err)
		}
		defer stmt.Close()

		for _, r := range pairRules {
			if _, err := stmt.ExecContext(ctx, r.ID, r.SourceContractID, r.TargetContractID,
				r.SourceField, r.TargetField, r.Transformation, r.Confidence, string(r.Status)); err != nil {
				return storeError("insert rule "+r.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace rules: %w", err)
	}

	log.Ctx(ctx).Debug().
		Str("source", sourceID).
		Str("target", targetID).
		Int("rules", len(pairRules)).
		Msg("mapping rules replaced")

	return nil
}

func (s *PostgresMappingStore) ListRules(ctx context.Context, sourceID, targetID string) ([]mapping.Rule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+ruleColumns+`
		FROM mapping_rules
		WHERE source_contract_id = $1 AND target_contract_id = $2
		ORDER BY position
	`, sourceID, targetID)
	if err != nil {
		return nil, storeError("list rules", err)
	}
	defer rows.Close()

	var out []mapping.Rule

	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	return out, nil
}

func (s *PostgresMappingStore) GetRule(ctx context.Context, id string) (mapping.Rule, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ruleColumns+` FROM mapping_rules WHERE id = $1`, id)

	r, err := scanRule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mapping.Rule{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("mapping rule %q not found", id))
		}

		return mapping.Rule{}, err
	}

	return r, nil
}

func (s *PostgresMappingStore) UpdateRule(ctx context.Context, rule mapping.Rule) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE mapping_rules
		SET target_field = $2, transformation = $3, confidence = $4, status = $5, updated_at = now()
		WHERE id = $1
	`, rule.ID, rule.TargetField, rule.Transformation, rule.Confidence, string(rule.Status))
	if err != nil {
		return storeError("update rule", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rule: %w", err)
	}

	if n == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("mapping rule %q not found", rule.ID))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (mapping.Rule, error) {
	var (
		r      mapping.Rule
		status string
	)

	err := row.Scan(&r.ID, &r.SourceContractID, &r.TargetContractID, &r.SourceField,
		&r.TargetField, &r.Transformation, &r.Confidence, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mapping.Rule{}, err
		}

		return mapping.Rule{}, fmt.Errorf("scan rule: %w", err)
	}

	r.Status = mapping.Status(status)

	return r, nil
}

// storeError flags a missing schema as a precondition failure so callers
// know to run Migrate.
func storeError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(op + ": schema missing, run migrations").
			WithCause(err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

var (
	_ ports.ContractRepository = (*PostgresContractStore)(nil)
	_ ports.MappingRepository  = (*PostgresMappingStore)(nil)
)
