package income

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/transport"
)

type ServiceAPI interface {
	CreateIncome(dto CreateIncomeDTO) (*IncomeEntry, error)
	GetIncome(id string) (*IncomeEntry, error)
	ListIncomes() ([]*IncomeEntry, error)
	UpdateIncome(id string, dto UpdateIncomeDTO) (*IncomeEntry, error)
	DeleteIncome(id string) error
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

func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var dto CreateIncomeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateIncome: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Service.CreateIncome(dto)
	if err != nil {
		h.Logger.Error("CreateIncome: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, entry)
}

func (h *Handler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.ListIncomes()
	if err != nil {
		h.Logger.Error("ListIncomes: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"incomes": entries,
	})
}

func (h *Handler) GetIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid income ID")
		return
	}

	entry, err := h.Service.GetIncome(id)
	if err != nil {
		h.Logger.Error("GetIncome: service error", "error", err, "income_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid income ID")
		return
	}

	var dto UpdateIncomeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateIncome: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Service.UpdateIncome(id, dto)
	if err != nil {
		h.Logger.Error("UpdateIncome: service error", "error", err, "income_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid income ID")
		return
	}

	if err := h.Service.DeleteIncome(id); err != nil {
		h.Logger.Error("DeleteIncome: service error", "error", err, "income_id", id)
		if err == errors.ErrIncomeNotFound {
			h.WriteError(w, http.StatusNotFound, "income entry not found")
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
