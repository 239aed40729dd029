package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/goexpense/internal/adapter/http/dto"
	"github.com/iho/goexpense/internal/domain"
	"github.com/iho/goexpense/internal/usecase"
)

// ExpenseService is the subset of the expense use case the handler needs.
type ExpenseService interface {
	CreateExpense(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error)
	GetExpense(ctx context.Context, id string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, input usecase.UpdateExpenseInput) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	ListExpenses(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Expense, error)
}

// ExpenseHandler handles expense HTTP requests.
type ExpenseHandler struct {
	service ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(service ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// Create handles POST /expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	expense, err := h.service.CreateExpense(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExpenseFromDomain(expense))
}

// Get handles GET /expenses/{id}.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense id", "")
		return
	}

	expense, err := h.service.GetExpense(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// List handles GET /expenses with optional filter query parameters.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, err := dto.ParseFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	expenses, err := h.service.ListExpenses(r.Context(), criteria)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpensesFromDomain(expenses))
}

// Update handles PUT /expenses/{id}.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense id", "")
		return
	}

	var req dto.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	expense, err := h.service.UpdateExpense(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// Delete handles DELETE /expenses/{id}.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense id", "")
		return
	}

	if err := h.service.DeleteExpense(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
