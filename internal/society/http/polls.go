package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type PollsHandler struct {
	PollService *service.PollService
}

func (h *PollsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.PollRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := h.PollService.CreatePoll(r.Context(), req.Question, req.Options)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPollResponse(p))
}

func (h *PollsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	polls, err := h.PollService.ListPolls(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]societysdk.PollResponse, 0, len(polls))
	for _, p := range polls {
		out = append(out, toPollResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *PollsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.PollRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := h.PollService.UpdatePoll(r.Context(), r.PathValue("id"), req.Question, req.Options)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPollResponse(p))
}

func (h *PollsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PollService.DeletePoll(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
