package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/usecase/breakdown"
	"github.com/simaogato/investment-tracker/internal/usecase/history"
	"github.com/simaogato/investment-tracker/internal/usecase/scenario"
	"github.com/simaogato/investment-tracker/internal/usecase/valuation"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// mapStatus translates service errors to HTTP status codes
func mapStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvestmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInvestment):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// investmentView decorates a lot with its derived valuation fields.
// GainLossPercent is omitted when the cost basis is not positive.
type investmentView struct {
	domain.Investment
	CurrentValue    decimal.Decimal  `json:"currentValue"`
	GainLoss        decimal.Decimal  `json:"gainLoss"`
	GainLossPercent *decimal.Decimal `json:"gainLossPercent,omitempty"`
}

func newInvestmentView(inv domain.Investment) investmentView {
	view := investmentView{
		Investment:   inv,
		CurrentValue: valuation.CurrentValue(inv),
		GainLoss:     valuation.GainLoss(inv),
	}
	if pct, ok := valuation.GainLossPercent(inv); ok {
		view.GainLossPercent = &pct
	}
	return view
}

func (s *Server) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	investments, err := s.investments.List(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	views := make([]investmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, newInvestmentView(inv))
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateInvestment(w http.ResponseWriter, r *http.Request) {
	var inv domain.Investment
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.investments.Add(r.Context(), inv)
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, newInvestmentView(*created))
}

func (s *Server) handleGetInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid investment id")
		return
	}

	inv, err := s.investments.Get(r.Context(), id)
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, newInvestmentView(*inv))
}

func (s *Server) handleUpdateInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid investment id")
		return
	}

	var inv domain.Investment
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.investments.Update(r.Context(), id, inv)
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, newInvestmentView(*updated))
}

func (s *Server) handleDeleteInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid investment id")
		return
	}

	if err := s.investments.Delete(r.Context(), id); err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.portfolio.Summarize(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

type breakdownResponse struct {
	Groups []domain.BreakdownGroup `json:"groups"`
}

func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	investments, err := s.investments.List(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, breakdownResponse{Groups: breakdown.ByCategory(investments).Groups()})
}

func (s *Server) handleRiskBreakdown(w http.ResponseWriter, r *http.Request) {
	investments, err := s.investments.List(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, breakdownResponse{Groups: breakdown.ByRiskLevel(investments).Groups()})
}

// scenarioView decorates an analysis with its qualitative tier
type scenarioView struct {
	domain.ScenarioAnalysis
	Tier scenario.Tier `json:"tier"`
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	investments, err := s.investments.List(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	analyses := scenario.Analyze(investments)
	views := make([]scenarioView, 0, len(analyses))
	for _, a := range analyses {
		views = append(views, scenarioView{
			ScenarioAnalysis: a,
			Tier:             scenario.Classify(a.StrengthScore),
		})
	}

	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	points, err := s.history.List(r.Context(), history.PortfolioSeries)
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, points)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.refresh.RefreshPrices(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Load(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	// Decode over the stored settings so partial updates keep the rest
	settings, err := s.settings.Load(r.Context())
	if err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if settings.RefreshInterval <= 0 {
		respondError(w, http.StatusBadRequest, "refresh interval must be positive")
		return
	}

	if err := s.settings.Save(r.Context(), settings); err != nil {
		respondError(w, mapStatus(err), err.Error())
		return
	}

	if s.onSettingsChange != nil {
		s.onSettingsChange(settings)
	}

	respondJSON(w, http.StatusOK, settings)
}
