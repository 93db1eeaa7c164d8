package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

type signatureSaveRequest struct {
	DocumentID string  `json:"documentId"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Page       int     `json:"page"`
	SignStatus string  `json:"signStatus"`
}

func (r signatureSaveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DocumentID, validation.Required),
		validation.Field(&r.Page, validation.Min(1)),
	)
}

func (s *HTTPServer) handleSignatureSave(w http.ResponseWriter, r *http.Request) {
	var req signatureSaveRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	sig, err := s.services.Signatures.Save(r.Context(), userIDFrom(r.Context()), req.DocumentID, req.X, req.Y, req.Page, req.SignStatus)
	if err != nil {
		s.logger.Error(r.Context(), "signature save error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to save signature")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Signature saved",
		"signature": sig,
	})
}

func (s *HTTPServer) handleSignatureList(w http.ResponseWriter, r *http.Request) {
	sigs, err := s.services.Signatures.ListByDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.logger.Error(r.Context(), "signature list error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to fetch signatures")
		return
	}

	if sigs == nil {
		sigs = []*models.Signature{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"signatures": sigs})
}
