package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"printer-service/internal/config"
	"printer-service/internal/service"
	"printer-service/internal/utils"
)

func apiRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Printer: config.PrinterConfig{
			ScanTimeout:      time.Second,
			OperationTimeout: time.Second,
			LabelDPI:         203,
			ReceiptWidth:     48,
		},
	}
	printService := service.NewPrintService(cfg, zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	NewDeviceHandler(printService, zap.NewNop()).RegisterRoutes(api)
	NewPrintHandler(printService, zap.NewNop()).RegisterRoutes(api)
	return router
}

func TestClassifyDeviceEndpoint(t *testing.T) {
	router := apiRouter(t)

	body := `{"manufacturer": "Zebra Technologies", "product": "ZD420", "vendor_id": 2655, "product_id": 123}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	result, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ZPL", result["protocol"])
	assert.Equal(t, "0a5f:007b", result["device_id"])
}

func TestClassifyDeviceRejectsMalformedBody(t *testing.T) {
	router := apiRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices/classify", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestListTemplatesEndpoint(t *testing.T) {
	router := apiRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	entries, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, entries, 4)
}
