package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/contactkeval/present-value/internal/check"
	"github.com/contactkeval/present-value/internal/logger"
	"github.com/contactkeval/present-value/internal/pricing"
)

// Handler serves pricing requests and runs the configured scenarios on demand.
type Handler struct {
	scenarios []check.Scenario
	validate  *validator.Validate
}

// NewHandler creates a Handler. With no scenarios the embedded default is used.
func NewHandler(scenarios []check.Scenario) *Handler {
	if len(scenarios) == 0 {
		scenarios = []check.Scenario{check.Default()}
	}
	return &Handler{
		scenarios: scenarios,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// PresentValueRequest is the body of POST /pu. Either AnnualTerm or BusinessDays must be set.
type PresentValueRequest struct {
	FutureValue   *float64 `json:"future_value" validate:"required"`
	AnnualTerm    *float64 `json:"annual_term"`
	BusinessDays  *int     `json:"business_days" validate:"omitempty,gte=0"`
	AnnualRate    *float64 `json:"annual_rate" validate:"required"`
	DecimalPlaces *int     `json:"decimal_places" validate:"omitempty,gte=0,lte=15"`
}

// PresentValueResponse is returned by POST /pu.
type PresentValueResponse struct {
	PresentValue  float64 `json:"present_value"`
	Rounded       float64 `json:"rounded"`
	AnnualTerm    float64 `json:"annual_term"`
	DecimalPlaces int     `json:"decimal_places"`
}

// RoundRequest is the body of POST /round.
type RoundRequest struct {
	Value         *float64 `json:"value" validate:"required"`
	DecimalPlaces *int     `json:"decimal_places" validate:"omitempty,gte=0,lte=15"`
}

// RoundResponse is returned by POST /round.
type RoundResponse struct {
	Rounded   float64 `json:"rounded"`
	Formatted string  `json:"formatted"`
}

// CheckResult is one scenario outcome in a CheckResponse.
type CheckResult struct {
	Name         string  `json:"name"`
	PresentValue float64 `json:"present_value"`
	Rounded      float64 `json:"rounded"`
	Expected     float64 `json:"expected"`
	Passed       bool    `json:"passed"`
	Error        string  `json:"error,omitempty"`
}

// CheckResponse is returned by GET /check.
type CheckResponse struct {
	Passed  bool          `json:"passed"`
	Results []CheckResult `json:"results"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// PresentValue handles POST /pu.
func (h *Handler) PresentValue(w http.ResponseWriter, r *http.Request) {
	var req PresentValueRequest
	if !h.decode(w, r, &req) {
		return
	}

	var term float64
	switch {
	case req.AnnualTerm != nil:
		term = *req.AnnualTerm
	case req.BusinessDays != nil:
		term = pricing.AnnualTerm(*req.BusinessDays)
	default:
		respondError(w, http.StatusBadRequest, "validation failed", "annual_term or business_days is required")
		return
	}
	places := decimalPlaces(req.DecimalPlaces)

	pv, err := pricing.PresentValue(*req.FutureValue, term, *req.AnnualRate)
	if err != nil {
		respondPricingError(w, err)
		return
	}
	rounded, err := pricing.Round(pv, places)
	if err != nil {
		respondPricingError(w, err)
		return
	}

	logger.Debugf("pu fv=%v term=%v rate=%v -> %v", *req.FutureValue, term, *req.AnnualRate, pv)
	respondJSON(w, http.StatusOK, PresentValueResponse{
		PresentValue:  pv,
		Rounded:       rounded,
		AnnualTerm:    term,
		DecimalPlaces: places,
	})
}

// Round handles POST /round.
func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	var req RoundRequest
	if !h.decode(w, r, &req) {
		return
	}
	places := decimalPlaces(req.DecimalPlaces)

	rounded, err := pricing.Round(*req.Value, places)
	if err != nil {
		respondPricingError(w, err)
		return
	}
	formatted, err := pricing.Format(*req.Value, places)
	if err != nil {
		respondPricingError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, RoundResponse{Rounded: rounded, Formatted: formatted})
}

// Check handles GET /check. Responds 409 when any scenario fails.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	results, err := check.Run(h.scenarios)

	resp := CheckResponse{Passed: err == nil, Results: make([]CheckResult, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, CheckResult{
			Name:         res.Scenario.Name,
			PresentValue: res.PresentValue,
			Rounded:      res.Rounded,
			Expected:     res.Scenario.Expected,
			Passed:       res.Passed,
			Error:        res.ErrorMessage(),
		})
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusConflict
	}
	respondJSON(w, status, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return false
	}
	return true
}

func decimalPlaces(p *int) int {
	if p == nil {
		return pricing.DefaultDecimalPlaces
	}
	return *p
}

func respondPricingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pricing.ErrDomain):
		respondError(w, http.StatusUnprocessableEntity, "domain error", err.Error())
	case errors.Is(err, pricing.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "invalid input", err.Error())
	default:
		logger.Errorf("pricing failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
	}
}
