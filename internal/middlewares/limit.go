package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

// BodyLimit caps request bodies at n bytes. Reads past the limit fail with
// *http.MaxBytesError. A non-positive n disables the limit.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *ginext.Context) {
		if n > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}

		c.Next()
	}
}
