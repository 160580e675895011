package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	approvalModel "medfleet-tracker/internal/approval/model"
	approvalRepository "medfleet-tracker/internal/approval/repository"
	approvalService "medfleet-tracker/internal/approval/service"
	dashboardRepository "medfleet-tracker/internal/dashboard/repository"
	equipmentRepository "medfleet-tracker/internal/equipment/repository"
	equipmentService "medfleet-tracker/internal/equipment/service"
	"medfleet-tracker/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	router := gin.New()
	api := router.Group("/api")

	NewEquipmentHandler(
		equipmentService.NewService(equipmentRepository.NewRepository(db))).RegisterRoutes(api)
	NewApprovalHandler(
		approvalService.NewService(approvalRepository.NewRepository(db))).RegisterRoutes(api)
	NewDashboardHandler(dashboardRepository.NewRepository(db)).RegisterRoutes(api)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEquipmentCRUD(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/equipment", map[string]interface{}{
		"name":     "Defibrillator AED Pro",
		"category": "device",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Defibrillator AED Pro", created["name"])
	require.Equal(t, "Available", created["status"])
	require.Equal(t, float64(1), created["quantity"])
	require.Equal(t, "unit", created["unit"])
	require.Equal(t, float64(1), created["id"])

	rec = doJSON(t, router, http.MethodGet, "/api/equipment", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodPut, "/api/equipment/1", map[string]interface{}{
		"name":     "Defibrillator AED Pro",
		"category": "device",
		"status":   "In Use",
		"quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "In Use", updated["status"])
	require.Equal(t, float64(2), updated["quantity"])

	rec = doJSON(t, router, http.MethodDelete, "/api/equipment/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message": "Equipment deleted successfully"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/equipment/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "Equipment not found"}`, rec.Body.String())
}

func TestEquipmentValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/equipment", map[string]interface{}{
		"category": "device",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error": "name and category are required"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/equipment", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error": "Invalid request body"}`, rec.Body.String())
}

func TestEquipmentNonNumericIDIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/equipment/abc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "Equipment not found"}`, rec.Body.String())
}

func TestApprovalStatusEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/approvals", map[string]interface{}{
		"request_id": "REQ-200",
		"type":       "Procurement",
		"item_name":  "IV Drip Sets",
		"quantity":   50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created approvalModel.ApprovalRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, approvalModel.StatusPending, created.Status)

	rec = doJSON(t, router, http.MethodPut, "/api/approvals/1/status", map[string]interface{}{
		"status":               "Clinically Approved",
		"clinical_approver_id": 4,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var approved approvalModel.ApprovalRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approved))
	require.Equal(t, approvalModel.StatusClinicallyApproved, approved.Status)
	require.NotNil(t, approved.ClinicallyApprovedAt)
	require.Nil(t, approved.FulfilledAt)

	// Re-approving an already approved request is refused.
	rec = doJSON(t, router, http.MethodPut, "/api/approvals/1/status", map[string]interface{}{
		"status": "Clinically Approved",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	require.Contains(t, errBody["error"], "Cannot transition")
}

func TestDashboardShape(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/equipment", map[string]interface{}{
		"name":     "Pulse Oximeter",
		"category": "device",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	for _, key := range []string{
		"totalEquipment", "activeVehicles", "pendingApprovals",
		"totalStaff", "ongoingAudits", "totalVehicles",
	} {
		require.Contains(t, stats, key)
	}
	require.Equal(t, float64(1), stats["totalEquipment"])
}
