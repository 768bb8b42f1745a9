package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/platform/obs"
	"github.com/SscSPs/erp_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "middleware-test-secret"
	testIssuer = "erp-ledger-test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/probe", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		tenantID, _ := GetTenantIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "tenantID": tenantID})
	})
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware(testSecret, testIssuer))

	valid, _, err := utils.GenerateJWT("operator", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	expired, _, err := utils.GenerateJWT("operator", testSecret, -time.Hour, testIssuer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"valid", "Bearer " + valid, http.StatusOK, `"userID":"operator"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := do(r, req)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
		})
	}
}

func TestTenantMiddleware(t *testing.T) {
	r := newRouter(TenantMiddleware())

	tests := []struct {
		name   string
		tenant string
		status int
	}{
		{"missing", "", http.StatusBadRequest},
		{"malformed", "acme corp;drop", http.StatusBadRequest},
		{"valid", "acme-01", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.tenant != "" {
				req.Header.Set(TenantHeader, tc.tenant)
			}
			rec := do(r, req)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"tenantID":"acme-01"`)
			}
		})
	}
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(StructuredLoggingMiddleware(logger))

	rec := do(r, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "Request completed")
	assert.Contains(t, buf.String(), rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied")
	rec = do(r, req)
	assert.Equal(t, "caller-supplied", rec.Header().Get(RequestIDHeader))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestRateLimit(t *testing.T) {
	lim, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(RateLimit(lim))

	for i := 0; i < 2; i++ {
		rec := do(r, httptest.NewRequest(http.MethodGet, "/probe", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := do(r, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	_, err = NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestMetricsMiddleware(t *testing.T) {
	m := obs.NewMetrics()
	r := newRouter(MetricsMiddleware(m))

	do(r, httptest.NewRequest(http.MethodGet, "/probe", nil))
	do(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	count, err := testutil.GatherAndCount(m.Registry(), "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
