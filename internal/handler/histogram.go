package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/montecarlo"
)

// HistogramResponse is the JSON form of a simulation
type HistogramResponse struct {
	Expression string           `json:"expression"`
	Iterations int              `json:"iterations"`
	Rows       []montecarlo.Row `json:"rows"`
}

// HistogramHandler runs Monte-Carlo simulations on request
type HistogramHandler struct {
	parser        *dice.Parser
	maxIterations int
	workers       int
}

// NewHistogramHandler creates a HistogramHandler. Requests above maxIterations are rejected.
func NewHistogramHandler(parser *dice.Parser, maxIterations, workers int) *HistogramHandler {
	return &HistogramHandler{parser: parser, maxIterations: maxIterations, workers: max(1, workers)}
}

// HandleHistogram simulates ?expression= and returns the frequency table as
// CSV (default) or JSON with ?format=json. ?seed= makes the run reproducible.
// @Summary Simulate a dice expression
// @Description Roll an expression many times and return the frequency of each total
// @Tags dice
// @Produce json
// @Produce text/csv
// @Param expression query string true "Dice expression"
// @Param iterations query int false "Number of simulated rolls"
// @Param workers query int false "Worker goroutines"
// @Param seed query int false "Seed for a reproducible run"
// @Param format query string false "Response format" Enums(csv, json)
// @Success 200 {object} HistogramResponse
// @Failure 400 {object} ErrorResponse "Invalid expression or parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/histogram [get]
func (h *HistogramHandler) HandleHistogram(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	expression, ok := queryParam(w, r, QueryExpression)
	if !ok {
		return
	}
	iterations, ok := intQueryParam(w, r, QueryIterations, min(DefaultHistogramIterations, h.maxIterations))
	if !ok {
		return
	}
	if iterations > h.maxIterations {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgIterationsExceedMax, h.maxIterations))
		return
	}
	workers, ok := intQueryParam(w, r, QueryWorkers, h.workers)
	if !ok {
		return
	}

	opts := montecarlo.Options{Workers: min(workers, h.workers), Parser: h.parser}
	if raw := r.URL.Query().Get(QuerySeed); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QuerySeed))
			return
		}
		opts.Sources = montecarlo.SeededSources(seed)
	}

	hist, err := montecarlo.Run(r.Context(), expression, iterations, opts)
	if err != nil {
		respondServiceError(w, r, LogMsgHistogramFailed, err)
		return
	}

	log.Info(LogMsgHistogramServed, "expression", hist.Expression, "iterations", hist.Iterations, "distinct", len(hist.Counts))

	if r.URL.Query().Get(QueryFormat) == FormatJSON {
		respondJSON(w, http.StatusOK, HistogramResponse{
			Expression: hist.Expression,
			Iterations: hist.Iterations,
			Rows:       hist.Rows(),
		})
		return
	}

	w.Header().Set("Content-Type", ContentTypeCSV)
	w.Header().Set("Content-Disposition", `attachment; filename="histogram.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := hist.WriteCSV(w); err != nil {
		log.Error(LogMsgWriteFailed, "error", err)
	}
}
