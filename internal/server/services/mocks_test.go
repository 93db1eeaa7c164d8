package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/signkeeper/internal/common"
	"github.com/dmitrijs2005/signkeeper/internal/dbx"
	"github.com/dmitrijs2005/signkeeper/internal/server/models"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/audit"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/documents"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/registrations"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/savedsignatures"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/signaturerequests"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/signatures"
	"github.com/dmitrijs2005/signkeeper/internal/server/repositories/users"
)

// fakeRepoManager vends in-memory repositories regardless of the DBTX
// handed in, so services can be tested without SQL.
type fakeRepoManager struct {
	users        *fakeUsersRepo
	registration *fakeRegistrationsRepo
	documents    *fakeDocumentsRepo
	signatures   *fakeSignaturesRepo
	saved        *fakeSavedSignaturesRepo
	requests     *fakeSignatureRequestsRepo
	audit        *fakeAuditRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:        &fakeUsersRepo{byEmail: map[string]*models.User{}},
		registration: &fakeRegistrationsRepo{byEmail: map[string]*models.PendingRegistration{}},
		documents:    &fakeDocumentsRepo{byID: map[string]*models.Document{}},
		signatures:   &fakeSignaturesRepo{},
		saved:        &fakeSavedSignaturesRepo{images: map[string][]string{}},
		requests:     &fakeSignatureRequestsRepo{byToken: map[string]*models.SignatureRequest{}},
		audit:        &fakeAuditRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }
func (m *fakeRepoManager) Registrations(db dbx.DBTX) registrations.Repository {
	return m.registration
}
func (m *fakeRepoManager) Documents(db dbx.DBTX) documents.Repository   { return m.documents }
func (m *fakeRepoManager) Signatures(db dbx.DBTX) signatures.Repository { return m.signatures }
func (m *fakeRepoManager) SavedSignatures(db dbx.DBTX) savedsignatures.Repository {
	return m.saved
}
func (m *fakeRepoManager) SignatureRequests(db dbx.DBTX) signaturerequests.Repository {
	return m.requests
}
func (m *fakeRepoManager) Audit(db dbx.DBTX) audit.Repository { return m.audit }

type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	createErr error
}

func (r *fakeUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *user
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	r.byEmail[created.Email] = &created
	return &created, nil
}

func (r *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

type fakeRegistrationsRepo struct {
	byEmail map[string]*models.PendingRegistration
}

func (r *fakeRegistrationsRepo) Create(ctx context.Context, reg *models.PendingRegistration) error {
	stored := *reg
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.byEmail[stored.Email] = &stored
	return nil
}

func (r *fakeRegistrationsRepo) GetByEmail(ctx context.Context, email string) (*models.PendingRegistration, error) {
	reg, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return reg, nil
}

func (r *fakeRegistrationsRepo) DeleteByEmail(ctx context.Context, email string) error {
	delete(r.byEmail, email)
	return nil
}

type fakeDocumentsRepo struct {
	byID      map[string]*models.Document
	createErr error
}

func (r *fakeDocumentsRepo) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *doc
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *fakeDocumentsRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	doc, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return doc, nil
}

func (r *fakeDocumentsRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Document, error) {
	doc, ok := r.byID[id]
	if !ok || doc.UploadedBy != ownerID {
		return nil, common.ErrorNotFound
	}
	return doc, nil
}

func (r *fakeDocumentsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error) {
	var docs []*models.Document
	for _, doc := range r.byID {
		if doc.UploadedBy == ownerID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (r *fakeDocumentsRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeSignaturesRepo struct {
	sigs []*models.Signature
}

func (r *fakeSignaturesRepo) Create(ctx context.Context, sig *models.Signature) (*models.Signature, error) {
	created := *sig
	created.ID = int64(len(r.sigs) + 1)
	r.sigs = append(r.sigs, &created)
	return &created, nil
}

func (r *fakeSignaturesRepo) ListByDocument(ctx context.Context, documentID string) ([]*models.Signature, error) {
	var sigs []*models.Signature
	for _, sig := range r.sigs {
		if sig.DocumentID == documentID {
			sigs = append(sigs, sig)
		}
	}
	return sigs, nil
}

type fakeSavedSignaturesRepo struct {
	images map[string][]string
}

func (r *fakeSavedSignaturesRepo) GetImages(ctx context.Context, userID string) ([]string, error) {
	images, ok := r.images[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return images, nil
}

func (r *fakeSavedSignaturesRepo) Upsert(ctx context.Context, userID string, images []string) error {
	r.images[userID] = images
	return nil
}

type fakeSignatureRequestsRepo struct {
	byToken   map[string]*models.SignatureRequest
	createErr error
}

func (r *fakeSignatureRequestsRepo) Create(ctx context.Context, req *models.SignatureRequest) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byToken[req.Token] = req
	return nil
}

func (r *fakeSignatureRequestsRepo) GetByToken(ctx context.Context, token string) (*models.SignatureRequest, error) {
	req, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return req, nil
}

type fakeAuditRepo struct {
	entries   []*models.AuditEntry
	createErr error
}

func (r *fakeAuditRepo) Create(ctx context.Context, entry *models.AuditEntry) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) ListByDocument(ctx context.Context, documentID string) ([]*models.AuditEntry, error) {
	var entries []*models.AuditEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].DocumentID == documentID {
			entries = append(entries, r.entries[i])
		}
	}
	return entries, nil
}

// fakeNotifier records outgoing messages instead of dialing SMTP.
type fakeNotifier struct {
	codes map[string]string
	links map[string]string
	err   error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{codes: map[string]string{}, links: map[string]string{}}
}

func (n *fakeNotifier) SendRegistrationCode(ctx context.Context, to, code string) error {
	if n.err != nil {
		return n.err
	}
	n.codes[to] = code
	return nil
}

func (n *fakeNotifier) SendSignatureRequest(ctx context.Context, to, link string) error {
	if n.err != nil {
		return n.err
	}
	n.links[to] = link
	return nil
}

// fakeObjectStore keeps objects in a map.
type fakeObjectStore struct {
	objects map[string][]byte
	putErr  error
	delErr  error
	deleted []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (s *fakeObjectStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStore) Delete(ctx context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeObjectStore) PublicURL(key string) string {
	return "http://127.0.0.1:9000/documents/" + key
}
