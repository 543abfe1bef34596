package http

import (
	"net/http"
	"time"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/societysdk"
)

type AuthHandler struct {
	AuthService *service.AuthService

	// SessionTTL bounds the cookie lifetime; it should match the token TTL.
	SessionTTL time.Duration

	// SecureCookies marks the session cookie Secure; disabled for local
	// plain-HTTP development.
	SecureCookies bool
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req societysdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   int(h.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, societysdk.LoginResponse{
		Profile: toProfileResponse(sess.Profile),
	})
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	prof, err := h.AuthService.Me(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(prof))
}
