package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"licadmin/internal/model"
	repoMocks "licadmin/internal/repository/mocks"
	"licadmin/internal/service"
	serviceMocks "licadmin/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateLicenseHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockLicenseHistoryService)
	app := fiber.New()
	app.Post("/settings/licenseHistory", CreateLicenseHistory(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedData := service.LicenseHistoryData{
			LicenseID:   7,
			UserID:      3,
			Status:      "activated",
			Description: "initial activation",
			ChangeDate:  "2024-03-15",
		}
		created := &model.LicenseHistory{
			ID:          1,
			LicenseID:   7,
			UserID:      3,
			Status:      "activated",
			Description: "initial activation",
			ChangeDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		}
		mockSvc.On("Save", mock.Anything, expectedData).Return(created, nil).Once()

		req := formReq(http.MethodPost, "/settings/licenseHistory", url.Values{
			"licenseId":   {"7"},
			"userId":      {"3"},
			"status":      {"activated"},
			"description": {"initial activation"},
			"changeDate":  {"2024-03-15"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.LicenseHistory
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, "activated", result.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("params via query string", func(t *testing.T) {
		expectedData := service.LicenseHistoryData{
			LicenseID:  7,
			UserID:     3,
			Status:     "revoked",
			ChangeDate: "2024-04-01",
		}
		mockSvc.On("Save", mock.Anything, expectedData).
			Return(&model.LicenseHistory{ID: 2}, nil).Once()

		target := "/settings/licenseHistory?licenseId=7&userId=3&status=revoked&changeDate=2024-04-01"
		req := httptest.NewRequest(http.MethodPost, target, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-numeric license id", func(t *testing.T) {
		req := formReq(http.MethodPost, "/settings/licenseHistory", url.Values{
			"licenseId":  {"seven"},
			"userId":     {"3"},
			"status":     {"activated"},
			"changeDate": {"2024-03-15"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PARAM", decodeError(t, resp).Error.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc.On("Save", mock.Anything, mock.Anything).
			Return(nil, errors.New("insert failed")).Once()

		req := formReq(http.MethodPost, "/settings/licenseHistory", url.Values{
			"licenseId":  {"7"},
			"userId":     {"3"},
			"status":     {"activated"},
			"changeDate": {"2024-03-15"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "SAVE_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Message, "insert failed")
		mockSvc.AssertExpectations(t)
	})
}

// TestCreateLicenseHistoryDateContract drives the handler through the real
// service to pin down the yyyy-MM-dd wire contract.
func TestCreateLicenseHistoryDateContract(t *testing.T) {
	mockRepo := new(repoMocks.MockLicenseHistoryRepository)
	svc := service.NewLicenseHistoryService(mockRepo)

	app := fiber.New()
	app.Post("/settings/licenseHistory", CreateLicenseHistory(svc))

	t.Run("valid date parses and persists", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(h *model.LicenseHistory) bool {
			return h.ChangeDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
		})).Return(&model.LicenseHistory{ID: 1, ChangeDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}, nil).Once()

		req := formReq(http.MethodPost, "/settings/licenseHistory", url.Values{
			"licenseId":  {"7"},
			"userId":     {"3"},
			"status":     {"activated"},
			"changeDate": {"2024-03-15"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed date", func(t *testing.T) {
		// Fresh mock: AssertNotCalled scans the full call history, and the
		// shared mock already has a Create call from the valid-date subtest.
		mockRepo := new(repoMocks.MockLicenseHistoryRepository)
		app := fiber.New()
		app.Post("/settings/licenseHistory", CreateLicenseHistory(service.NewLicenseHistoryService(mockRepo)))

		req := formReq(http.MethodPost, "/settings/licenseHistory", url.Values{
			"licenseId":  {"7"},
			"userId":     {"3"},
			"status":     {"activated"},
			"changeDate": {"15-03-2024"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Contains(t, body.Error.Message, "invalid change date")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListLicenseHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockLicenseHistoryService)
	app := fiber.New()
	app.Get("/settings/licenseHistory", ListLicenseHistory(mockSvc))

	t.Run("returns records in persistence order", func(t *testing.T) {
		records := []model.LicenseHistory{
			{ID: 1, LicenseID: 7, Status: "activated"},
			{ID: 2, LicenseID: 7, Status: "revoked"},
		}
		mockSvc.On("GetAll", mock.Anything).Return(records, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/settings/licenseHistory", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.LicenseHistory
		json.NewDecoder(resp.Body).Decode(&result)
		require.Len(t, result, 2)
		assert.Equal(t, int64(1), result[0].ID)
		assert.Equal(t, int64(2), result[1].ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc.On("GetAll", mock.Anything).Return(nil, errors.New("query failed")).Once()

		req := httptest.NewRequest(http.MethodGet, "/settings/licenseHistory", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateLicenseHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockLicenseHistoryService)
	app := fiber.New()
	app.Put("/settings/licenseHistory", UpdateLicenseHistory(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedData := service.LicenseHistoryData{
			ID:         5,
			LicenseID:  7,
			UserID:     3,
			Status:     "suspended",
			ChangeDate: "2024-05-01",
		}
		updated := &model.LicenseHistory{ID: 5, LicenseID: 7, UserID: 3, Status: "suspended"}
		mockSvc.On("Update", mock.Anything, expectedData).Return(updated, nil).Once()

		req := formReq(http.MethodPut, "/settings/licenseHistory", url.Values{
			"id":            {"5"},
			"licenseId":     {"7"},
			"userId":        {"3"},
			"status":        {"suspended"},
			"changeDateStr": {"2024-05-01"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.LicenseHistory
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "suspended", result.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, mock.Anything).
			Return(nil, service.ErrNotFound).Once()

		req := formReq(http.MethodPut, "/settings/licenseHistory", url.Values{
			"id":            {"999"},
			"licenseId":     {"7"},
			"userId":        {"3"},
			"status":        {"suspended"},
			"changeDateStr": {"2024-05-01"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "UPDATE_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Message, "record not found")
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		req := formReq(http.MethodPut, "/settings/licenseHistory", url.Values{
			"licenseId":     {"7"},
			"userId":        {"3"},
			"status":        {"suspended"},
			"changeDateStr": {"2024-05-01"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestDeleteLicenseHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockLicenseHistoryService)
	app := fiber.New()
	app.Delete("/settings/licenseHistory", DeleteLicenseHistory(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/settings/licenseHistory?id=5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "license history with id 5 deleted", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-existent id", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(999)).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/settings/licenseHistory?id=999", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "DELETE_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Message, "record not found")
		mockSvc.AssertExpectations(t)
	})
}

func TestExportLicenseHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuditExportService)
	app := fiber.New()
	app.Post("/settings/licenseHistory/export", ExportLicenseHistory(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.AuditExportResult{
			ObjectKey: "exports/license-history-abc.csv",
			URL:       "https://minio.local/presigned",
		}
		mockSvc.On("Export", mock.Anything).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/settings/licenseHistory/export", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result service.AuditExportResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.URL, result.URL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("export failure", func(t *testing.T) {
		mockSvc.On("Export", mock.Anything).Return(nil, errors.New("bucket unreachable")).Once()

		req := httptest.NewRequest(http.MethodPost, "/settings/licenseHistory/export", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "EXPORT_FAILED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}
