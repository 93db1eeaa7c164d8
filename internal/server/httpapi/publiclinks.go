package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/dmitrijs2005/signkeeper/internal/common"
)

type publicLinkRequest struct {
	DocumentID string `json:"documentId"`
	Email      string `json:"email"`
}

func (r publicLinkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DocumentID, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

func (s *HTTPServer) handlePublicLinkRequest(w http.ResponseWriter, r *http.Request) {
	var req publicLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.services.PublicLinks.Issue(r.Context(), req.DocumentID, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeMessage(w, http.StatusNotFound, "Document not found")
			return
		}
		s.logger.Error(r.Context(), "signature request error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Signature request sent successfully",
		"token":   token,
	})
}

func (s *HTTPServer) handlePublicLinkView(w http.ResponseWriter, r *http.Request) {
	doc, err := s.services.PublicLinks.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeMessage(w, http.StatusNotFound, "Link expired or invalid")
			return
		}
		s.logger.Error(r.Context(), "link view error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"document": doc})
}

func (s *HTTPServer) handlePublicLinkConfirm(w http.ResponseWriter, r *http.Request) {
	err := s.services.PublicLinks.Confirm(r.Context(), chi.URLParam(r, "token"), clientIP(r))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeMessage(w, http.StatusNotFound, "Invalid or expired token")
			return
		}
		s.logger.Error(r.Context(), "signature confirm error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to confirm signature")
		return
	}

	s.writeMessage(w, http.StatusOK, "Audit log saved")
}
