package api

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID echoes the caller's request ID or assigns a new one.
func requestID() gin.HandlerFunc {
    return func(c *gin.Context) {
        id := c.GetHeader(requestIDHeader)
        if id == "" {
            id = uuid.NewString()
        }
        c.Set("request_id", id)
        c.Header(requestIDHeader, id)
        c.Next()
    }
}

func limitBody(max int64) gin.HandlerFunc {
    return func(c *gin.Context) {
        if max > 0 && c.Request.Body != nil {
            c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
        }
        c.Next()
    }
}
