package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type NoticesHandler struct {
	NoticeService *service.NoticeService
}

func (h *NoticesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.NoticeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	n, err := h.NoticeService.CreateNotice(r.Context(), httpx.UserIDFromCtx(r.Context()), req.Title, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toNoticeResponse(n))
}

func (h *NoticesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	notices, err := h.NoticeService.ListNotices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]societysdk.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, toNoticeResponse(n))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *NoticesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req societysdk.NoticeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	n, err := h.NoticeService.UpdateNotice(r.Context(), r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNoticeResponse(n))
}

func (h *NoticesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.NoticeService.DeleteNotice(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
