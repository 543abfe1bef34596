package http

import (
	"log/slog"
	"net/http"

	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/pkg/httpx"
	"github.com/strataworks/societyd/pkg/slogx"
)

// writeServiceError maps a service failure to its HTTP status via the
// service error taxonomy and writes the standard error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	switch service.Classify(err) {
	case service.KindValidation:
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case service.KindNotFound:
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case service.KindConflict:
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case service.KindUnauthenticated:
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())
	case service.KindAnomaly:
		log.Error("request hit a consistency anomaly", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	default:
		log.Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
