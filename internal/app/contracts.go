package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/sync/errgroup"

	"contract-mapper/internal/contract"
)

// Contract returns one contract by id.
func (s Service) Contract(ctx context.Context, id string) (*contract.Contract, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("contract id is required")
	}

	return s.Contracts.GetContract(ctx, id)
}

// ListContracts returns every known contract.
func (s Service) ListContracts(ctx context.Context) ([]*contract.Contract, error) {
	return s.Contracts.ListContracts(ctx)
}

// loadPair fetches the source and target contracts concurrently.
func (s Service) loadPair(ctx context.Context, sourceID, targetID string) (*contract.Contract, *contract.Contract, error) {
	if strings.TrimSpace(sourceID) == "" || strings.TrimSpace(targetID) == "" {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source and target contract ids are required")
	}

	var source, target *contract.Contract

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.Contracts.GetContract(gctx, sourceID)
		if err != nil {
			return err
		}

		source = c

		return nil
	})
	g.Go(func() error {
		c, err := s.Contracts.GetContract(gctx, targetID)
		if err != nil {
			return err
		}

		target = c

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return source, target, nil
}

func missingCollaborator(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(name + " is not configured")
}
