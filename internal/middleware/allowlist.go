package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EmailAllowlist creates a Gin middleware that checks the advisory
// X-User-Email header against a configured allowlist. The tracker runs on a
// trusted internal network, so the header is identification, not
// authentication. With an empty allowlist every caller passes.
func EmailAllowlist(allowedEmails []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, email := range allowedEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		email := strings.ToLower(strings.TrimSpace(c.GetHeader("X-User-Email")))
		if _, ok := allowed[email]; !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rejected caller not on allowlist", slog.String("email", email))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			return
		}

		c.Set(string(userEmailKey), email)
		c.Next()
	}
}
