package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type ReservationsHandler struct {
	ReservationService *service.ReservationService
}

// HandleReserve allocates one unit to the authenticated member. The 201 body
// carries the ledger entry and the updated pool row. A 409 tells the client
// the pool is exhausted or the count moved under the request; retrying is
// the client's call.
func (h *ReservationsHandler) HandleReserve(w http.ResponseWriter, r *http.Request) {
	var req societysdk.ReserveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.ReservationService.ReserveUnit(r.Context(), req.PoolID, httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, societysdk.ReserveResponse{
		Reservation: toReservationResponse(result.Reservation),
		Pool:        toPoolResponse(result.Pool),
	})
}

func (h *ReservationsHandler) HandleRelease(w http.ResponseWriter, r *http.Request) {
	pool, err := h.ReservationService.ReleaseUnit(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, societysdk.ReleaseResponse{
		Pool: toPoolResponse(pool),
	})
}
