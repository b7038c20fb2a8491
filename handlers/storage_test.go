package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStorageService struct {
	uploadedPath   string
	uploadedFolder string
	existedAtCall  bool
	deletedID      string
}

func (s *stubStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	s.uploadedPath = localFilePath
	s.uploadedFolder = destFolder
	if _, err := os.Stat(localFilePath); err == nil {
		s.existedAtCall = true
	}
	return destFolder + "/report-1", nil
}

func (s *stubStorageService) DeleteFile(ctx context.Context, publicID string) error {
	s.deletedID = publicID
	return nil
}

func (s *stubStorageService) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

func storageTestRouter(svc *stubStorageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStorageHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "patient-1") })
	r.POST("/api/reports/upload", h.UploadReportHandler)
	r.GET("/api/reports/url", h.GetReportURLHandler)
	r.DELETE("/api/reports", h.DeleteReportHandler)
	return r
}

func multipartUpload(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("report contents"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadReportHandler(t *testing.T) {
	svc := &stubStorageService{}
	r := storageTestRouter(svc)

	body, contentType := multipartUpload(t, "scan.pdf")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.existedAtCall, "temp file present while uploading")
	assert.Equal(t, "reports/patient-1", svc.uploadedFolder)
	assert.Contains(t, w.Body.String(), "reports/patient-1/report-1")
	assert.NoFileExists(t, svc.uploadedPath, "temp file cleaned up")
}

func TestUploadReportHandlerIgnoresClientPath(t *testing.T) {
	svc := &stubStorageService{}
	r := storageTestRouter(svc)

	body, contentType := multipartUpload(t, "../../outside/owned.txt")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, svc.uploadedPath)
	assert.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(svc.uploadedPath),
		"upload stays inside the temp dir")
	assert.NotContains(t, svc.uploadedPath, "..")
	assert.NotContains(t, filepath.Base(svc.uploadedPath), "owned",
		"client filename does not reach the filesystem")
}

func TestUploadReportHandlerRequiresFile(t *testing.T) {
	r := storageTestRouter(&stubStorageService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/upload", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteReportHandler(t *testing.T) {
	svc := &stubStorageService{}
	r := storageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reports?publicId=reports/patient-1/report-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reports/patient-1/report-1", svc.deletedID)
}

func TestDeleteReportHandlerRequiresPublicID(t *testing.T) {
	r := storageTestRouter(&stubStorageService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reports", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
