package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/ports"
)

// FileContractRepository reads and writes YAML contracts in one directory.
// A contract with id X is expected in X.yaml, but any *.yaml or *.yml file
// declaring that id is found by a directory scan.
type FileContractRepository struct {
	dir string
}

// NewFileContractRepository constructs a repository rooted at dir.
func NewFileContractRepository(dir string) *FileContractRepository {
	return &FileContractRepository{dir: dir}
}

// GetContract loads the contract with the given id.
func (r *FileContractRepository) GetContract(ctx context.Context, id string) (*contract.Contract, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("contract id is required")
	}

	direct := filepath.Join(r.dir, id+".yaml")
	if c, err := contract.LoadFile(direct); err == nil && c.ID == id {
		return c, nil
	} else if err != nil && errbuilder.CodeOf(err) != errbuilder.CodeNotFound {
		return nil, err
	}

	all, err := r.ListContracts(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(all, func(c *contract.Contract) bool { return c.ID == id })
	if idx < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("contract %q not found in %s", id, r.dir))
	}

	return all[idx], nil
}

// ListContracts loads every contract in the directory, sorted by id.
func (r *FileContractRepository) ListContracts(ctx context.Context) ([]*contract.Contract, error) {
	paths, err := r.contractFiles()
	if err != nil {
		return nil, err
	}

	out := make([]*contract.Contract, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := contract.LoadFile(path)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeOf(err)).
				WithMsg(fmt.Sprintf("failed to load contract %s", path)).
				WithCause(err)
		}

		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b *contract.Contract) int { return strings.Compare(a.ID, b.ID) })
	log.Ctx(ctx).Debug().Str("dir", r.dir).Int("contracts", len(out)).Msg("contracts listed")

	return out, nil
}

// SaveContract validates c and writes it to <id>.yaml.
func (r *FileContractRepository) SaveContract(ctx context.Context, c *contract.Contract) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create contracts directory").
			WithCause(err)
	}

	path := filepath.Join(r.dir, c.ID+".yaml")
	if err := contract.WriteFile(c, path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to save contract " + c.ID).
			WithCause(err)
	}

	log.Ctx(ctx).Debug().Str("contract", c.ID).Str("path", path).Msg("contract saved")

	return nil
}

func (r *FileContractRepository) contractFiles() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		code := errbuilder.CodeInternal
		if errors.Is(err, os.ErrNotExist) {
			code = errbuilder.CodeNotFound
		}

		return nil, errbuilder.New().
			WithCode(code).
			WithMsg("failed to read contracts directory " + r.dir).
			WithCause(err)
	}

	var paths []string

	for _, e := range entries {
		if e.IsDir() || isMappingFile(e.Name()) {
			continue
		}

		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(r.dir, e.Name()))
		}
	}

	return paths, nil
}

var _ ports.ContractRepository = (*FileContractRepository)(nil)
