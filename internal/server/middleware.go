package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paperbill/paperbill/internal/usercontext"
)

// HeaderUser carries the opaque authenticated user key. The identity
// provider terminates upstream; this service only propagates the key.
const HeaderUser = "X-User-Id"

func (s *Server) OwnerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := strings.TrimSpace(c.GetHeader(HeaderUser))
		if ownerID == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		ctx := usercontext.WithOwnerID(c.Request.Context(), ownerID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
