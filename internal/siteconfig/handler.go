package siteconfig

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/homeledger/homeledger/internal/transport"
)

type ServiceAPI interface {
	ListConfig() ([]*Entry, error)
	GetConfig(key string) (*Entry, error)
	UpdateConfig(dto UpdateConfigDTO) ([]*Entry, error)
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

func (h *Handler) ListConfig(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.ListConfig()
	if err != nil {
		h.Logger.Error("ListConfig: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"config": entries,
	})
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid config key")
		return
	}

	entry, err := h.Service.GetConfig(key)
	if err != nil {
		h.Logger.Error("GetConfig: service error", "error", err, "key", key)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var dto UpdateConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateConfig: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries, err := h.Service.UpdateConfig(dto)
	if err != nil {
		h.Logger.Error("UpdateConfig: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"config": entries,
	})
}
