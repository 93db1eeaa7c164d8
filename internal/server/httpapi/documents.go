package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

func isPDF(contentType, filename string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

func (s *HTTPServer) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("pdf")
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isPDF(contentType, header.Filename) {
		s.writeMessage(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	doc, err := s.services.Documents.Upload(r.Context(), userIDFrom(r.Context()), header.Filename, contentType, data)
	if err != nil {
		s.logger.Error(r.Context(), "upload error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "File uploaded successfully",
		"document": doc,
	})
}

func (s *HTTPServer) handleDocumentList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.services.Documents.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), "document list error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}

	if docs == nil {
		docs = []*models.Document{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *HTTPServer) handleDocumentDelete(w http.ResponseWriter, r *http.Request) {
	err := s.services.Documents.Delete(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeMessage(w, http.StatusNotFound, "Document not found")
			return
		}
		s.logger.Error(r.Context(), "document delete error", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	s.writeMessage(w, http.StatusOK, "Document deleted successfully")
}
