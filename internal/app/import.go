package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/analyze"
	"contract-mapper/internal/contract"
)

// Import derives a contract from the exported structs of Go packages and
// optionally stores it.
func (s Service) Import(ctx context.Context, req ImportRequest) (*contract.Contract, error) {
	if len(req.Patterns) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one go package is required")
	}

	c, err := analyze.Generator{Dir: req.Dir}.Generate(ctx, req.Name, req.Patterns...)
	if err != nil {
		return nil, err
	}

	if req.Save {
		if err := s.Contracts.SaveContract(ctx, c); err != nil {
			return nil, err
		}
	}

	log.Ctx(ctx).Debug().Str("contract", c.ID).Strs("packages", req.Patterns).Int("models", len(c.Models)).Msg("contract imported")

	return c, nil
}
