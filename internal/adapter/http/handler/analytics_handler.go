package handler

import (
	"context"
	"net/http"

	"github.com/iho/goexpense/internal/adapter/http/dto"
	"github.com/iho/goexpense/internal/domain"
)

// AnalyticsService computes summaries over filtered expenses.
type AnalyticsService interface {
	Summary(ctx context.Context, criteria domain.FilterCriteria) (*domain.Summary, error)
}

// AnalyticsHandler serves aggregated spending views.
type AnalyticsHandler struct {
	service AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Summary handles GET /analytics/summary.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	criteria, err := dto.ParseFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	summary, err := h.service.Summary(r.Context(), criteria)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}

// Categories handles GET /categories.
func (h *AnalyticsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := make([]string, len(domain.Categories))
	copy(categories, domain.Categories)
	writeJSON(w, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}
