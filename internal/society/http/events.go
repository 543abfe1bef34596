package http

import (
	"fmt"
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type EventsHandler struct {
	EventService *service.EventService
	AuthService  *service.AuthService
}

// organizationOf resolves the caller's organization so events stay scoped
// to their own society.
func (h *EventsHandler) organizationOf(r *http.Request) (string, error) {
	prof, err := h.AuthService.Me(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		return "", err
	}
	if prof.OrganizationID == "" {
		return "", fmt.Errorf("%w: profile has no organization", store.ErrNotFound)
	}
	return prof.OrganizationID, nil
}

func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.EventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	orgID, err := h.organizationOf(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	e, err := h.EventService.CreateEvent(r.Context(), orgID, req.Title, req.Description, req.EventDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEventResponse(e))
}

func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orgID, err := h.organizationOf(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	events, err := h.EventService.ListEvents(r.Context(), orgID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]societysdk.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *EventsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.EventService.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
