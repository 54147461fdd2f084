package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/contract"
)

// Infer generates a contract from sample data and optionally stores it.
func (s Service) Infer(ctx context.Context, req InferRequest) (*contract.Contract, error) {
	if s.Generator == nil {
		return nil, missingCollaborator("contract generator")
	}

	if req.Reader == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sample data is required")
	}

	c, err := s.Generator.Generate(ctx, req.Name, req.Reader)
	if err != nil {
		return nil, err
	}

	if req.Save {
		if err := s.Contracts.SaveContract(ctx, c); err != nil {
			return nil, err
		}
	}

	log.Ctx(ctx).Debug().Str("contract", c.ID).Int("fields", c.FieldCount()).Bool("saved", req.Save).Msg("contract inferred")

	return c, nil
}
