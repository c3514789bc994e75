package projection

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/person"
	"github.com/homeledger/homeledger/internal/transport"
)

type ServiceAPI interface {
	GetProjection(months int, filter Filter) (*ProjectionResponse, error)
	GetSummary() (*SummaryResponse, error)
	ListOverrides() ([]*Override, error)
	SaveOverride(year, month int, dto UpsertOverrideDTO) (*Override, error)
	DeleteOverride(year, month int) error
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

// GetProjection handles GET /projection?months=&person=&category=.
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.WriteError(w, http.StatusBadRequest, "months must be a positive integer")
			return
		}
		months = parsed
	}

	var filter Filter
	if raw := r.URL.Query().Get("person"); raw != "" {
		tag, err := person.Parse(raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "unknown person tag")
			return
		}
		filter.Person = tag
	}
	filter.Category = r.URL.Query().Get("category")

	resp, err := h.Service.GetProjection(months, filter)
	if err != nil {
		h.Logger.Error("GetProjection: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.GetSummary()
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) ListOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.Service.ListOverrides()
	if err != nil {
		h.Logger.Error("ListOverrides: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"overrides": overrides,
	})
}

func (h *Handler) SaveOverride(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.monthParams(w, r)
	if !ok {
		return
	}

	var dto UpsertOverrideDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SaveOverride: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	override, err := h.Service.SaveOverride(year, month, dto)
	if err != nil {
		h.Logger.Error("SaveOverride: service error", "error", err, "year", year, "month", month)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, override)
}

func (h *Handler) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.monthParams(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteOverride(year, month); err != nil {
		h.Logger.Error("DeleteOverride: service error", "error", err, "year", year, "month", month)
		if err == errors.ErrOverrideNotFound {
			h.WriteError(w, http.StatusNotFound, "projection override not found")
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) monthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid month")
		return 0, 0, false
	}
	return year, month, true
}
