package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/signkeeper/internal/common"
)

type savedSignatureRequest struct {
	Image string `json:"image"`
}

func (s *HTTPServer) handleSavedSignatureSave(w http.ResponseWriter, r *http.Request) {
	var req savedSignatureRequest
	if err := decodeJSON(r, &req); err != nil || req.Image == "" {
		s.writeMessage(w, http.StatusBadRequest, "No image provided")
		return
	}

	if err := s.services.SavedSignatures.Save(r.Context(), userIDFrom(r.Context()), req.Image); err != nil {
		s.logger.Error(r.Context(), "saved signature error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to save signature")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Signature saved",
		"signatureImage": req.Image,
	})
}

func (s *HTTPServer) handleSavedSignatureGet(w http.ResponseWriter, r *http.Request) {
	images, err := s.services.SavedSignatures.Get(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeMessage(w, http.StatusNotFound, "No saved signatures found")
			return
		}
		s.logger.Error(r.Context(), "saved signature fetch error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to fetch signatures")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"signatureImages": images})
}

func (s *HTTPServer) handleSavedSignatureDelete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeMessage(w, http.StatusNotFound, "Signature not found")
		return
	}

	if err := s.services.SavedSignatures.Delete(r.Context(), userIDFrom(r.Context()), index); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeMessage(w, http.StatusNotFound, "Signature not found")
			return
		}
		s.logger.Error(r.Context(), "saved signature delete error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to delete signature")
		return
	}

	s.writeMessage(w, http.StatusOK, "Signature deleted")
}
