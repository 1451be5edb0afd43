package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"serviceatlas/internal/domains"
	"serviceatlas/internal/httpx"
	"serviceatlas/internal/service"
	"serviceatlas/internal/storage"
)

type CatalogHandlers struct {
	service CatalogServices
}

type CatalogServices interface {
	Search(ctx context.Context, term string) ([]domains.ServiceRecord, error)
	ServiceFaqs(ctx context.Context, serviceID int64, term string) ([]domains.Faq, error)
	Create(ctx context.Context, payload domains.ServiceCreate) (int64, error)
	Update(ctx context.Context, serviceID int64, payload domains.ServiceUpdate) error
	Delete(ctx context.Context, serviceID int64) error
}

func NewCatalogHandlers(service CatalogServices) *CatalogHandlers {
	return &CatalogHandlers{service: service}
}

func (h *CatalogHandlers) Search(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeError(w, "Search failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, records)
}

func (h *CatalogHandlers) ServiceFaqs(w http.ResponseWriter, r *http.Request) {
	serviceID := httpx.GetId(w, r)
	if serviceID == 0 {
		return
	}

	faqs, err := h.service.ServiceFaqs(r.Context(), serviceID, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, "ServiceFaqs failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, faqs)
}

func (h *CatalogHandlers) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[domains.ServiceCreate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		httpx.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	serviceID, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.writeError(w, "Create failed", err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreatedResponse{ID: serviceID})
}

func (h *CatalogHandlers) Update(w http.ResponseWriter, r *http.Request) {
	serviceID := httpx.GetId(w, r)
	if serviceID == 0 {
		return
	}

	payload, err := httpx.ReadBody[domains.ServiceUpdate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Update(r.Context(), serviceID, payload); err != nil {
		h.writeError(w, "Update failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, AckResponse{Success: true})
}

func (h *CatalogHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	serviceID := httpx.GetId(w, r)
	if serviceID == 0 {
		return
	}

	if err := h.service.Delete(r.Context(), serviceID); err != nil {
		h.writeError(w, "Delete failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, AckResponse{Success: true})
}

// writeError maps service failures to the response taxonomy: 503 when the
// backend is unreachable, 404 for a missing id, 400 for a bad document, and
// an opaque 500 for everything else. Raw error text never reaches clients.
func (h *CatalogHandlers) writeError(w http.ResponseWriter, operation string, err error) {
	switch {
	case storage.Unavailable(err):
		slog.Warn(operation, "err", err)
		httpx.Error(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, storage.ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "Service not found")
	case errors.Is(err, service.ErrDetailsInvalid):
		httpx.Error(w, http.StatusBadRequest, "Invalid details document")
	default:
		slog.Error(operation, "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
