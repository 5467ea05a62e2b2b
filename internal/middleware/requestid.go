package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const HeaderXRequestID = "X-Request-ID"

// RequestID attaches a request id to every request, reusing the client's
// id when one is supplied and echoing it back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set(HeaderXRequestID, requestID)

		c.Next()
	}
}
