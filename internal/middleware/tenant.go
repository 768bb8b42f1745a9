package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// TenantHeader names the tenant a request operates on.
const TenantHeader = "X-Tenant-ID"

var tenantIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// TenantMiddleware requires a well-formed X-Tenant-ID header and places the
// tenant on the request context for handlers to pass on explicitly.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tenantID := c.GetHeader(TenantHeader)
		if tenantID == "" {
			logger.Warn("Tenant header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": TenantHeader + " header required"})
			return
		}
		if !tenantIDPattern.MatchString(tenantID) {
			logger.Warn("Tenant header malformed")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + TenantHeader + " header"})
			return
		}

		ctx := WithTenantID(c.Request.Context(), tenantID)
		ctx = WithLogger(ctx, logger.With(slog.String("tenant_id", tenantID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
