package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	ua "github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with latency, status and parsed
// client device information.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		parser := ua.New(c.Request.UserAgent())
		browser, browserVersion := parser.Browser()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"os":         parser.OS(),
			"browser":    browser,
		}
		if browserVersion != "" {
			fields["browser_version"] = browserVersion
		}
		if parser.Bot() {
			fields["bot"] = true
		}
		if email, exists := c.Get(UserContextKey); exists {
			if userCtx, ok := email.(UserContext); ok {
				fields["user"] = userCtx.Email
			}
		}

		entry := logger.WithFields(fields)
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
		} else {
			entry.Info("request completed")
		}
	}
}
