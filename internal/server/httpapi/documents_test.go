package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

func multipartPDF(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func doAuthed(t *testing.T, s *HTTPServer, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestDocumentUpload(t *testing.T) {
	docs := &fakeDocuments{uploadDoc: &models.Document{ID: "doc-1", Filename: "contract.pdf"}}
	s := newTestServer(t, Services{Users: authedUsers(), Documents: docs})

	body, contentType := multipartPDF(t, "pdf", "contract.pdf", "application/pdf", []byte("%PDF-1.4"))
	rec := doAuthed(t, s, http.MethodPost, "/api/docs/upload", body, contentType)

	assert.Equal(t, http.StatusCreated, rec.Code)
	respBody := decodeBody(t, rec)
	assert.Equal(t, "File uploaded successfully", respBody["message"])
	assert.Equal(t, "doc-1", respBody["document"].(map[string]any)["id"])

	assert.Equal(t, "user-1", docs.gotOwner)
	assert.Equal(t, "contract.pdf", docs.gotFilename)
	assert.Equal(t, []byte("%PDF-1.4"), docs.gotData)
}

func TestDocumentUploadMissingFile(t *testing.T) {
	s := newTestServer(t, Services{Users: authedUsers(), Documents: &fakeDocuments{}})

	body, contentType := multipartPDF(t, "other", "contract.pdf", "application/pdf", []byte("x"))
	rec := doAuthed(t, s, http.MethodPost, "/api/docs/upload", body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded", decodeBody(t, rec)["message"])
}

func TestDocumentUploadRejectsNonPDF(t *testing.T) {
	s := newTestServer(t, Services{Users: authedUsers(), Documents: &fakeDocuments{}})

	body, contentType := multipartPDF(t, "pdf", "notes.txt", "text/plain", []byte("hello"))
	rec := doAuthed(t, s, http.MethodPost, "/api/docs/upload", body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Only PDF files are allowed", decodeBody(t, rec)["message"])
}

func TestDocumentUploadStorageError(t *testing.T) {
	s := newTestServer(t, Services{Users: authedUsers(), Documents: &fakeDocuments{uploadErr: assert.AnError}})

	body, contentType := multipartPDF(t, "pdf", "contract.pdf", "application/pdf", []byte("x"))
	rec := doAuthed(t, s, http.MethodPost, "/api/docs/upload", body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Upload failed", decodeBody(t, rec)["message"])
}

func TestDocumentList(t *testing.T) {
	docs := &fakeDocuments{listDocs: []*models.Document{
		{ID: "doc-2", Filename: "b.pdf"},
		{ID: "doc-1", Filename: "a.pdf"},
	}}
	s := newTestServer(t, Services{Users: authedUsers(), Documents: docs})

	rec := doAuthed(t, s, http.MethodGet, "/api/docs/", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody(t, rec)["documents"].([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "doc-2", list[0].(map[string]any)["id"])
}

func TestDocumentListEmpty(t *testing.T) {
	s := newTestServer(t, Services{Users: authedUsers(), Documents: &fakeDocuments{}})

	rec := doAuthed(t, s, http.MethodGet, "/api/docs/", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// empty list, not null
	assert.Equal(t, []any{}, decodeBody(t, rec)["documents"])
}

func TestDocumentDelete(t *testing.T) {
	docs := &fakeDocuments{}
	s := newTestServer(t, Services{Users: authedUsers(), Documents: docs})

	rec := doAuthed(t, s, http.MethodDelete, "/api/docs/doc-1", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Document deleted successfully", decodeBody(t, rec)["message"])
	assert.Equal(t, "doc-1", docs.deletedID)
	assert.Equal(t, "user-1", docs.gotOwner)
}

func TestDocumentDeleteNotFound(t *testing.T) {
	s := newTestServer(t, Services{Users: authedUsers(), Documents: &fakeDocuments{deleteErr: common.ErrorNotFound}})

	rec := doAuthed(t, s, http.MethodDelete, "/api/docs/missing", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Document not found", decodeBody(t, rec)["message"])
}
