package expense

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/transport"
)

type ServiceAPI interface {
	CreateExpense(dto CreateExpenseDTO) (*Expense, error)
	GetExpense(id string) (*Expense, error)
	ListExpenses() ([]*Expense, error)
	UpdateExpense(id string, dto UpdateExpenseDTO) (*Expense, error)
	DeleteExpense(id string) error
	SetInstallmentStatus(installmentID string, dto UpdateInstallmentStatusDTO) (*Installment, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.CreateExpense(dto)
	if err != nil {
		h.Logger.Error("CreateExpense: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, exp)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListExpenses()
	if err != nil {
		h.Logger.Error("ListExpenses: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"expenses": expenses,
	})
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	exp, err := h.Service.GetExpense(id)
	if err != nil {
		h.Logger.Error("GetExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	var dto UpdateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.UpdateExpense(id, dto)
	if err != nil {
		h.Logger.Error("UpdateExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	if err := h.Service.DeleteExpense(id); err != nil {
		h.Logger.Error("DeleteExpense: service error", "error", err, "expense_id", id)
		if err == errors.ErrExpenseNotFound {
			h.WriteError(w, http.StatusNotFound, "expense not found")
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// UpdateInstallmentStatus handles PATCH on a single installment.
func (h *Handler) UpdateInstallmentStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid installment ID")
		return
	}

	var dto UpdateInstallmentStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateInstallmentStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inst, err := h.Service.SetInstallmentStatus(id, dto)
	if err != nil {
		h.Logger.Error("UpdateInstallmentStatus: service error", "error", err, "installment_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, inst)
}
