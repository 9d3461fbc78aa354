package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks a response cacheable for maxAge seconds.
// The memo listing is a pure projection of upstream data, so short
// client-side caching is safe and spares the upstream a walk.
func CacheControlMiddleware(maxAge string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+maxAge)
		c.Next()
	}
}
