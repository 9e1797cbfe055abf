package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/api/respond"
	"github.com/aliskhannn/corpsite/internal/service/auth"
)

//go:generate mockgen -source=auth.go -destination=../mocks/middlewares/mock.go -package=mocks

type authenticator interface {
	Authenticate(context.Context, string) (int64, error)
}

// AdminIDKey is the context key holding the authenticated admin id.
const AdminIDKey = "admin_id"

// SessionToken reads the session token from the cookie or a Bearer header.
func SessionToken(c *ginext.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}

	return ""
}

// AdminAuth rejects requests without a live admin session.
func AdminAuth(a authenticator, cookieName string) gin.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := a.Authenticate(c.Request.Context(), SessionToken(c, cookieName))
		if err != nil {
			if !errors.Is(err, auth.ErrUnauthorized) {
				zlog.Logger.Error().Err(err).Msg("failed to authenticate admin")
			}

			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		c.Set(AdminIDKey, id)
		c.Next()
	}
}
