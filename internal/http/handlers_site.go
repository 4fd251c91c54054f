package httpx

import (
	"net/http"

	"github.com/wisherr/wisherr-ui/internal/service"
)

// SiteHandlers serves site branding and health.
type SiteHandlers struct {
	Svc *service.SiteService
}

// Info handles GET /api/site-info. Never errors: branding degrades to the
// cached or default values when the backend is unreachable.
func (h *SiteHandlers) Info(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Info(r.Context()))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
