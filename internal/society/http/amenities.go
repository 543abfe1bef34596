package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type AmenitiesHandler struct {
	AmenityService *service.AmenityService
}

func (h *AmenitiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.AmenityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a, err := h.AmenityService.CreateAmenity(r.Context(), req.Name, req.Description, req.Category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAmenityResponse(a))
}

func (h *AmenitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.AmenityService.ListAmenities(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]societysdk.AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, toAmenityResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *AmenitiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.AmenityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a, err := h.AmenityService.UpdateAmenity(r.Context(), domain.Amenity{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAmenityResponse(a))
}

func (h *AmenitiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AmenityService.DeleteAmenity(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
