package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	portssvc "github.com/desafiodev/cnab_import_app/internal/core/ports/services"
	"github.com/desafiodev/cnab_import_app/internal/dto"
	"github.com/desafiodev/cnab_import_app/internal/handlers"
	"github.com/desafiodev/cnab_import_app/pkg/config"
)

type MockCnabImportService struct {
	mock.Mock
}

func (m *MockCnabImportService) ImportFile(ctx context.Context, file io.Reader, ignoreErrors bool) (*dto.ImportResult, error) {
	args := m.Called(ctx, file, ignoreErrors)
	result, _ := args.Get(0).(*dto.ImportResult)
	return result, args.Error(1)
}

type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) ListStoresWithTransactions(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func setupRouter(importSvc portssvc.CnabImportSvcFacade, storeSvc portssvc.StoreSvcFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{IsProduction: true, ImportRateLimit: 1000}
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{CnabImport: importSvc, Store: storeSvc})
	return r
}

func newImportRequest(t *testing.T, query string, withFile bool) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if withFile {
		part, err := writer.CreateFormFile("file", "cnab.txt")
		require.NoError(t, err)
		_, err = part.Write([]byte("file content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cnab/import"+query, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportFileHandler_Success(t *testing.T) {
	importSvc := new(MockCnabImportService)
	importSvc.On("ImportFile", mock.Anything, mock.Anything, false).
		Return(&dto.ImportResult{TotalLines: 3, ValidLines: 3, Errors: []string{}, IsSuccess: true}, nil).Once()

	router := setupRouter(importSvc, new(MockStoreService))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newImportRequest(t, "", true))

	require.Equal(t, http.StatusOK, recorder.Code)

	var result dto.ImportResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, 3, result.TotalLines)
	assert.Equal(t, 3, result.ValidLines)
	assert.True(t, result.IsSuccess)
	assert.Empty(t, result.Errors)

	importSvc.AssertExpectations(t)
}

func TestImportFileHandler_IgnoreErrorsQueryIsForwarded(t *testing.T) {
	importSvc := new(MockCnabImportService)
	importSvc.On("ImportFile", mock.Anything, mock.Anything, true).
		Return(&dto.ImportResult{TotalLines: 2, ValidLines: 1, InvalidLines: 1, Errors: []string{"Line '2': Failed to create transaction - boom"}, IsSuccess: true}, nil).Once()

	router := setupRouter(importSvc, new(MockStoreService))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newImportRequest(t, "?ignoreErrors=true", true))

	require.Equal(t, http.StatusOK, recorder.Code)
	importSvc.AssertExpectations(t)
}

func TestImportFileHandler_MissingFile(t *testing.T) {
	importSvc := new(MockCnabImportService)

	router := setupRouter(importSvc, new(MockStoreService))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newImportRequest(t, "", false))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "file is required")
	importSvc.AssertNotCalled(t, "ImportFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportFileHandler_ArgumentErrorMapsToBadRequest(t *testing.T) {
	importSvc := new(MockCnabImportService)
	importSvc.On("ImportFile", mock.Anything, mock.Anything, false).
		Return(nil, fmt.Errorf("%w: stream cannot be nil", apperrors.ErrArgument)).Once()

	router := setupRouter(importSvc, new(MockStoreService))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newImportRequest(t, "", true))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestImportFileHandler_UnexpectedErrorMapsToInternal(t *testing.T) {
	importSvc := new(MockCnabImportService)
	importSvc.On("ImportFile", mock.Anything, mock.Anything, false).
		Return(nil, errors.New("connection reset")).Once()

	router := setupRouter(importSvc, new(MockStoreService))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newImportRequest(t, "", true))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestListStoresHandler(t *testing.T) {
	storeSvc := new(MockStoreService)
	storeSvc.On("ListStoresWithTransactions", mock.Anything).
		Return([]domain.Store{{StoreID: "store-1", Name: "BAR DO JOÃO", OwnerName: "JOÃO MACEDO"}}, nil).Once()

	router := setupRouter(new(MockCnabImportService), storeSvc)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/stores", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var stores []dto.StoreResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stores))
	require.Len(t, stores, 1)
	assert.Equal(t, "BAR DO JOÃO", stores[0].Name)
	assert.True(t, stores[0].Total.IsZero())
	storeSvc.AssertExpectations(t)
}

func TestListStoresHandler_ServiceFailure(t *testing.T) {
	storeSvc := new(MockStoreService)
	storeSvc.On("ListStoresWithTransactions", mock.Anything).
		Return(nil, errors.New("timeout")).Once()

	router := setupRouter(new(MockCnabImportService), storeSvc)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/stores", nil))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHealthRoute(t *testing.T) {
	router := setupRouter(new(MockCnabImportService), new(MockStoreService))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}
