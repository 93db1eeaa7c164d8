package httpapi

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/logging"
	sc "github.com/dmitrijs2005/signkeeper/internal/server/config"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
)

func newTestServer(t *testing.T, services Services) *HTTPServer {
	t.Helper()

	cfg := &sc.Config{}
	cfg.LoadDefaults()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewHTTPServer(cfg, logger, services)
}

type fakeUsers struct {
	registerErr error

	verifyUser  *models.User
	verifyToken string
	verifyErr   error

	loginUser  *models.User
	loginToken string
	loginErr   error

	authUserID string
	authErr    error

	lastToken string
}

func (f *fakeUsers) RequestRegistration(ctx context.Context, name, email, password string) error {
	return f.registerErr
}

func (f *fakeUsers) VerifyRegistration(ctx context.Context, email, code string) (*models.User, string, error) {
	if f.verifyErr != nil {
		return nil, "", f.verifyErr
	}
	return f.verifyUser, f.verifyToken, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginUser, f.loginToken, nil
}

func (f *fakeUsers) Authenticate(tokenString string) (string, error) {
	f.lastToken = tokenString
	if f.authErr != nil {
		return "", f.authErr
	}
	return f.authUserID, nil
}

func (f *fakeUsers) SessionValidity() time.Duration {
	return 7 * 24 * time.Hour
}

// authedUsers returns a fakeUsers that accepts any token as user-1.
func authedUsers() *fakeUsers {
	return &fakeUsers{authUserID: "user-1"}
}

type fakeDocuments struct {
	uploadDoc *models.Document
	uploadErr error

	listDocs []*models.Document
	listErr  error

	deleteErr error

	gotOwner    string
	gotFilename string
	gotData     []byte
	deletedID   string
}

func (f *fakeDocuments) Upload(ctx context.Context, ownerID, filename, contentType string, data []byte) (*models.Document, error) {
	f.gotOwner, f.gotFilename, f.gotData = ownerID, filename, data
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.uploadDoc, nil
}

func (f *fakeDocuments) List(ctx context.Context, ownerID string) ([]*models.Document, error) {
	f.gotOwner = ownerID
	return f.listDocs, f.listErr
}

func (f *fakeDocuments) Delete(ctx context.Context, ownerID, id string) error {
	f.gotOwner, f.deletedID = ownerID, id
	return f.deleteErr
}

type fakeSignatures struct {
	saved   *models.Signature
	saveErr error

	list    []*models.Signature
	listErr error

	gotDocumentID string
}

func (f *fakeSignatures) Save(ctx context.Context, userID, documentID string, x, y float64, page int, status string) (*models.Signature, error) {
	f.gotDocumentID = documentID
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return f.saved, nil
}

func (f *fakeSignatures) ListByDocument(ctx context.Context, documentID string) ([]*models.Signature, error) {
	f.gotDocumentID = documentID
	return f.list, f.listErr
}

type fakeSavedSignatures struct {
	saveErr error

	images []string
	getErr error

	deleteErr error
	gotIndex  int
	gotImage  string
}

func (f *fakeSavedSignatures) Save(ctx context.Context, userID, image string) error {
	f.gotImage = image
	return f.saveErr
}

func (f *fakeSavedSignatures) Get(ctx context.Context, userID string) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.images, nil
}

func (f *fakeSavedSignatures) Delete(ctx context.Context, userID string, index int) error {
	f.gotIndex = index
	return f.deleteErr
}

type fakePublicLinks struct {
	token    string
	issueErr error

	doc        *models.Document
	resolveErr error

	confirmErr error

	gotToken string
	gotIP    string
}

func (f *fakePublicLinks) Issue(ctx context.Context, documentID, email string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return f.token, nil
}

func (f *fakePublicLinks) Resolve(ctx context.Context, token string) (*models.Document, error) {
	f.gotToken = token
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.doc, nil
}

func (f *fakePublicLinks) Confirm(ctx context.Context, token, clientIP string) error {
	f.gotToken, f.gotIP = token, clientIP
	return f.confirmErr
}

type fakeAudit struct {
	entries []*models.AuditEntry
	listErr error
}

func (f *fakeAudit) ListByDocument(ctx context.Context, documentID string) ([]*models.AuditEntry, error) {
	return f.entries, f.listErr
}

// unauthorizedUsers rejects every token.
func unauthorizedUsers() *fakeUsers {
	return &fakeUsers{authErr: common.ErrorUnauthorized}
}
