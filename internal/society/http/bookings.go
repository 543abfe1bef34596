package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type BookingsHandler struct {
	BookingService *service.BookingService
}

func (h *BookingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.BookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	b, err := h.BookingService.CreateBooking(r.Context(), httpx.UserIDFromCtx(r.Context()), req.AmenityID, req.RequestedDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toBookingResponse(b))
}

func (h *BookingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.BookingService.ListMyBookings(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]societysdk.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *BookingsHandler) HandleReschedule(w http.ResponseWriter, r *http.Request) {
	var req societysdk.RescheduleBookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	b, err := h.BookingService.RescheduleBooking(r.Context(), httpx.UserIDFromCtx(r.Context()), r.PathValue("id"), req.RequestedDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBookingResponse(b))
}

func (h *BookingsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.BookingService.CancelBooking(r.Context(), httpx.UserIDFromCtx(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
