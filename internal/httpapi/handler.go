package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"contract-mapper/internal/app"
	"contract-mapper/internal/contract"
	"contract-mapper/internal/diagnostic"
	"contract-mapper/internal/mapping"
)

// Service defines the operations the handler exposes.
type Service interface {
	Contract(ctx context.Context, id string) (*contract.Contract, error)
	ListContracts(ctx context.Context) ([]*contract.Contract, error)
	Suggest(ctx context.Context, req app.SuggestRequest) (app.SuggestResult, error)
	Validate(ctx context.Context, req app.ValidateRequest) (app.ValidateResult, error)
	Explain(ctx context.Context, req app.ExplainRequest) (app.ExplainResult, error)
	Review(ctx context.Context, req app.ReviewRequest) (app.ReviewResult, error)
}

// Handler wires mapping endpoints to the service.
type Handler struct {
	service Service
}

// New constructs a handler.
func New(service Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the v1 endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/contracts", h.HandleListContracts)
	r.Get("/contracts/{id}", h.HandleGetContract)
	r.Post("/mappings/suggest", h.HandleSuggest)
	r.Post("/mappings/validate", h.HandleValidate)
	r.Get("/mappings/explain", h.HandleExplain)
	r.Patch("/mappings/rules/{id}", h.HandleReview)
}

// HandleListContracts handles GET /contracts.
func (h *Handler) HandleListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.service.ListContracts(r.Context())
	if err != nil {
		h.fail(w, r, "list contracts", err)
		return
	}

	if contracts == nil {
		contracts = []*contract.Contract{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"contracts": contracts})
}

// HandleGetContract handles GET /contracts/{id}.
func (h *Handler) HandleGetContract(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Contract(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get contract", err)
		return
	}

	WriteJSON(w, http.StatusOK, c)
}

// HandleSuggest handles POST /mappings/suggest.
func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	start := time.Now()

	res, err := h.service.Suggest(r.Context(), app.SuggestRequest{
		SourceID: req.SourceID,
		TargetID: req.TargetID,
		Persist:  req.Persist,
		Refresh:  req.Refresh,
	})
	if err != nil {
		h.fail(w, r, "suggest", err)
		return
	}

	log.Ctx(r.Context()).Debug().
		Str("source", req.SourceID).
		Str("target", req.TargetID).
		Int("rules", len(res.Rules)).
		Dur("duration", time.Since(start)).
		Msg("suggestions served")

	WriteJSON(w, http.StatusOK, fromSuggestResult(res))
}

// HandleValidate handles POST /mappings/validate.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.service.Validate(r.Context(), app.ValidateRequest{
		SourceID: req.SourceID,
		TargetID: req.TargetID,
		Rules:    normalizeRules(req.Rules),
		Stored:   req.Rules == nil,
	})
	if err != nil {
		h.fail(w, r, "validate", err)
		return
	}

	WriteJSON(w, http.StatusOK, fromReport(res.Report))
}

// HandleExplain handles GET /mappings/explain.
func (h *Handler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("limit must be a non-negative integer"))
			return
		}

		limit = n
	}

	res, err := h.service.Explain(r.Context(), app.ExplainRequest{
		SourceID:    q.Get("sourceId"),
		TargetID:    q.Get("targetId"),
		SourceField: q.Get("field"),
		Limit:       limit,
	})
	if err != nil {
		h.fail(w, r, "explain", err)
		return
	}

	WriteJSON(w, http.StatusOK, fromExplainResult(res))
}

// HandleReview handles PATCH /mappings/rules/{id}.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.service.Review(r.Context(), app.ReviewRequest{
		RuleID:         chi.URLParam(r, "id"),
		Action:         mapping.Action(req.Action),
		TargetField:    req.TargetField,
		Transformation: req.Transformation,
	})
	if err != nil {
		h.fail(w, r, "review", err)
		return
	}

	findings := res.Findings
	if findings == nil {
		findings = diagnostic.Findings{}
	}

	WriteJSON(w, http.StatusOK, ReviewResponse{Rule: res.Rule, Findings: findings})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Ctx(r.Context()).Debug().Err(err).Str("op", op).Msg("request failed")
	WriteError(w, err)
}

// normalizeRules fills what a hand-posted rule may omit.
func normalizeRules(rules []mapping.Rule) []mapping.Rule {
	for i := range rules {
		if rules[i].Status == "" {
			rules[i].Status = mapping.StatusSuggested
		}
	}

	return rules
}
