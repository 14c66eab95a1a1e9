package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/config"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/service"
	"taxdesk/mocks"
)

func newDocumentService() (service.DocumentService, *mocks.MockDocumentRepo, *mocks.MockClientRepo, *mocks.MockObjectStorage) {
	repo := new(mocks.MockDocumentRepo)
	clients := new(mocks.MockClientRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := &config.S3Config{Bucket: "docs", MaxFileSizeMB: 1, PresignExpiry: 600}
	svc := service.NewDocumentService(repo, clients, storage, &mocks.Transactor{}, cfg, newValidator(), nopLogger())
	return svc, repo, clients, storage
}

func TestStoredName(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
		ext      string
	}{
		{"plain", "Form16.PDF", "Form16_ab12cd34.pdf", "pdf"},
		{"spaces and symbols", "Bank Statement (Mar).xlsx", "Bank_Statement_Mar_ab12cd34.xlsx", "xlsx"},
		{"windows path", `C:\Users\ca\itr v.pdf`, "itr_v_ab12cd34.pdf", "pdf"},
		{"only symbols", "###.png", "document_ab12cd34.png", "png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ext, err := service.StoredName(tt.original, "ab12cd34")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestStoredName_Unsupported(t *testing.T) {
	_, _, err := service.StoredName("payload.exe", "x")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	_, _, err = service.StoredName("README", "x")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestDocumentService_Upload_Success(t *testing.T) {
	svc, repo, clients, storage := newDocumentService()
	clientID := uuid.New()
	clients.On("GetByID", mock.Anything, testTenant, clientID).Return(&domain.Client{ID: clientID}, nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "docs" &&
			strings.HasPrefix(in.Key, "tenants/"+testTenant.String()+"/documents/itr/Form16_") &&
			in.ContentType == "application/pdf"
	})).Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Document")).Return(nil)

	doc, err := svc.Upload(context.Background(), staff, service.DocumentUploadInput{
		ClientID: &clientID,
		Folder:   "ITR",
		FileName: "Form16.pdf",
		Size:     2048,
		Body:     strings.NewReader("%PDF"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Form16.pdf", doc.Title)
	assert.Equal(t, "itr", doc.Folder)
	assert.Equal(t, int64(2048), doc.FileSize)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestDocumentService_Upload_TooLarge(t *testing.T) {
	svc, _, _, storage := newDocumentService()

	_, err := svc.Upload(context.Background(), staff, service.DocumentUploadInput{
		FileName: "scan.png",
		Size:     2 * 1024 * 1024,
		Body:     strings.NewReader(""),
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestDocumentService_Upload_StorageFailure(t *testing.T) {
	svc, repo, _, storage := newDocumentService()
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down"))

	_, err := svc.Upload(context.Background(), staff, service.DocumentUploadInput{
		FileName: "scan.png",
		Size:     10,
		Body:     strings.NewReader("x"),
	})

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentService_Upload_RowFailureRemovesObject(t *testing.T) {
	svc, repo, _, storage := newDocumentService()
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	storage.On("Delete", mock.Anything, "docs", mock.AnythingOfType("string")).Return(nil)

	_, err := svc.Upload(context.Background(), staff, service.DocumentUploadInput{
		FileName: "scan.png",
		Size:     10,
		Body:     strings.NewReader("x"),
	})

	assert.Error(t, err)
	storage.AssertCalled(t, "Delete", mock.Anything, "docs", mock.AnythingOfType("string"))
}

func TestDocumentService_GetDownloadURL(t *testing.T) {
	svc, repo, _, storage := newDocumentService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.Document{ID: id, S3Bucket: "docs", S3Key: "tenants/x/documents/a.pdf"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "docs", "tenants/x/documents/a.pdf", int64(600)).
		Return("https://signed.example/a.pdf", nil)

	url, err := svc.GetDownloadURL(context.Background(), staff, id)

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/a.pdf", url)
}

func TestDocumentService_Delete(t *testing.T) {
	svc, repo, _, storage := newDocumentService()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, testTenant, id).
		Return(&domain.Document{ID: id, S3Bucket: "docs", S3Key: "k"}, nil)
	storage.On("Delete", mock.Anything, "docs", "k").Return(nil)
	repo.On("Delete", mock.Anything, testTenant, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), admin, id))
	assert.ErrorIs(t, svc.Delete(context.Background(), staff, id), domain.ErrForbidden)
}
