package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type PoolsHandler struct {
	PoolService *service.PoolService
}

func (h *PoolsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.CreatePoolRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pool, err := h.PoolService.CreatePool(r.Context(), req.ServiceType, req.Description, req.Units)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPoolResponse(pool))
}

func (h *PoolsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pools, err := h.PoolService.ListPools(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]societysdk.PoolResponse, 0, len(pools))
	for _, pool := range pools {
		out = append(out, toPoolResponse(pool))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *PoolsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	pool, err := h.PoolService.GetPool(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPoolResponse(pool))
}

func (h *PoolsHandler) HandleListReservations(w http.ResponseWriter, r *http.Request) {
	open, err := h.PoolService.ListOpenReservations(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]societysdk.ReservationResponse, 0, len(open))
	for _, res := range open {
		out = append(out, toReservationResponse(res))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *PoolsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PoolService.DeletePool(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
