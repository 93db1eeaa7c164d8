package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

func (s *HTTPServer) handleAuditList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.services.Audit.ListByDocument(r.Context(), chi.URLParam(r, "fileId"))
	if err != nil {
		s.logger.Error(r.Context(), "audit list error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to fetch audit logs")
		return
	}

	if entries == nil {
		entries = []*models.AuditEntry{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"logs": entries})
}
