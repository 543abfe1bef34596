package http

import (
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

// RegisterHandler exposes the three provisioning flows. Each flow is a saga
// on the service side; the handler just shapes requests and responses.
type RegisterHandler struct {
	ProvisionService *service.ProvisionService
}

func (h *RegisterHandler) HandleOwner(w http.ResponseWriter, r *http.Request) {
	var req societysdk.RegisterOwnerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.ProvisionService.ProvisionOwner(r.Context(), service.OwnerInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Phone:          req.Phone,
		SocietyName:    req.SocietyName,
		SocietyAddress: req.SocietyAddress,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, societysdk.RegisterResponse{
		Profile:  toProfileResponse(result.Profile),
		JoinCode: result.Organization.JoinCode,
	})
}

func (h *RegisterHandler) HandleResident(w http.ResponseWriter, r *http.Request) {
	var req societysdk.RegisterResidentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.ProvisionService.ProvisionResident(r.Context(), service.ResidentInput{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Phone:      req.Phone,
		JoinCode:   req.JoinCode,
		FlatNo:     req.FlatNo,
		MoveInDate: req.MoveInDate,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, societysdk.RegisterResponse{
		Profile: toProfileResponse(result.Profile),
	})
}

func (h *RegisterHandler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	var req societysdk.RegisterStaffRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.ProvisionService.ProvisionStaff(r.Context(), service.StaffInput{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Phone:      req.Phone,
		JoinCode:   req.JoinCode,
		Department: req.Department,
		Title:      req.Title,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, societysdk.RegisterResponse{
		Profile: toProfileResponse(result.Profile),
	})
}
