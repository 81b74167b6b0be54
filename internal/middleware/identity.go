package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/requestdata"
)

// IdentityMiddleware binds the owning account to every request.
// Authentication lives in the gateway in front of this service; until it
// forwards an account header, every request runs as the configured owner.
type IdentityMiddleware struct {
	log     *logger.Logger
	ownerID string
}

func NewIdentityMiddleware(log *logger.Logger, ownerID string) *IdentityMiddleware {
	middlewareLog := log.With("middleware", "IdentityMiddleware")
	if ownerID == "" {
		ownerID = "system-owner"
	}
	return &IdentityMiddleware{log: middlewareLog, ownerID: ownerID}
}

func (im *IdentityMiddleware) BindOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := &requestdata.RequestData{
			RequestID: uuid.New(),
			OwnerID:   im.ownerID,
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), rd)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
