package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type ComplaintsHandler struct {
	ComplaintService *service.ComplaintService
}

func (h *ComplaintsHandler) HandleFile(w http.ResponseWriter, r *http.Request) {
	var req societysdk.ComplaintRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.ComplaintService.FileComplaint(r.Context(), httpx.UserIDFromCtx(r.Context()), req.Title, req.Description, req.ImageURL)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toComplaintResponse(c))
}

func (h *ComplaintsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.ComplaintService.ListMyComplaints(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeComplaintList(w, complaints)
}

// HandleListAssigned lists the complaints assigned to the calling staff
// member.
func (h *ComplaintsHandler) HandleListAssigned(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.ComplaintService.ListAssignedComplaints(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeComplaintList(w, complaints)
}

// HandleListAll serves the management view, optionally filtered by status.
func (h *ComplaintsHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.ComplaintService.ListComplaints(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeComplaintList(w, complaints)
}

func (h *ComplaintsHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var req societysdk.AssignComplaintRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.ComplaintService.AssignComplaint(r.Context(), r.PathValue("id"), req.StaffID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toComplaintResponse(c))
}

func (h *ComplaintsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req societysdk.ComplaintStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.ComplaintService.UpdateComplaintStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toComplaintResponse(c))
}

func writeComplaintList(w http.ResponseWriter, complaints []domain.Complaint) {
	out := make([]societysdk.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, toComplaintResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
