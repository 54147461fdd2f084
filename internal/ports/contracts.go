package ports

//go:generate mockgen -source=contracts.go -destination=mocks/contracts.go -package=mocks

import (
	"context"
	"io"

	"contract-mapper/internal/contract"
)

// ContractRepository supplies contracts to the engine. Implementations
// validate contracts on the way in; the engine does not re-check them.
type ContractRepository interface {
	GetContract(ctx context.Context, id string) (*contract.Contract, error)
	ListContracts(ctx context.Context) ([]*contract.Contract, error)
	SaveContract(ctx context.Context, c *contract.Contract) error
}

// ContractGenerator infers a contract from a sample of data.
type ContractGenerator interface {
	Generate(ctx context.Context, name string, r io.Reader) (*contract.Contract, error)
}
