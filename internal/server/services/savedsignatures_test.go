package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/signkeeper/internal/common"
)

func newSavedSignatureServiceForTest(t *testing.T) (*SavedSignatureService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSavedSignatureService(db, newFakeRepoManager()), mock
}

func TestSavedSignatureService_SaveAndGet(t *testing.T) {
	s, mock := newSavedSignatureServiceForTest(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, s.Save(ctx, "user-1", "data:image/png;base64,aaa"))

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, s.Save(ctx, "user-1", "data:image/png;base64,bbb"))

	images, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"data:image/png;base64,aaa", "data:image/png;base64,bbb"}, images)
}

func TestSavedSignatureService_GetEmpty(t *testing.T) {
	s, _ := newSavedSignatureServiceForTest(t)

	_, err := s.Get(context.Background(), "user-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSavedSignatureService_Delete(t *testing.T) {
	s, mock := newSavedSignatureServiceForTest(t)
	ctx := context.Background()

	for _, img := range []string{"a", "b", "c"} {
		mock.ExpectBegin()
		mock.ExpectCommit()
		require.NoError(t, s.Save(ctx, "user-1", img))
	}

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, s.Delete(ctx, "user-1", 1))

	images, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, images)
}

func TestSavedSignatureService_DeleteOutOfRange(t *testing.T) {
	s, mock := newSavedSignatureServiceForTest(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, s.Save(ctx, "user-1", "a"))

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := s.Delete(ctx, "user-1", 5)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err = s.Delete(ctx, "user-1", -1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSavedSignatureService_DeleteNoGallery(t *testing.T) {
	s, mock := newSavedSignatureServiceForTest(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := s.Delete(context.Background(), "user-1", 0)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
