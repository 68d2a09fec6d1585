package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phoenixwrites/phoenix/auth"
	"github.com/phoenixwrites/phoenix/utils"
)

const (
	// ContextIdentityKey holds the auth.Identity of the signed-in admin.
	ContextIdentityKey = "admin_identity"
	// ContextTokenKey holds the raw bearer token.
	ContextTokenKey = "admin_token"
)

// TokenVerifier resolves a bearer token to an identity; *auth.Service satisfies it.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (auth.Identity, error)
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
// It returns a non-zero error code when the header is malformed.
func BearerToken(ctx *gin.Context) (string, int, string) {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return "", 40101, "authorization header missing"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", 40102, "invalid authorization header format"
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", 40103, "empty bearer token"
	}
	return token, 0, ""
}

// AdminRequired ensures the request carries a valid, unrevoked admin token.
func AdminRequired(v TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, code, msg := BearerToken(ctx)
		if code != 0 {
			utils.Error(ctx, http.StatusUnauthorized, code, msg)
			ctx.Abort()
			return
		}

		id, err := v.Verify(ctx.Request.Context(), token)
		switch {
		case errors.Is(err, auth.ErrTokenRevoked):
			utils.Error(ctx, http.StatusUnauthorized, 40104, "token revoked")
			ctx.Abort()
			return
		case errors.Is(err, auth.ErrInvalidToken):
			utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
			ctx.Abort()
			return
		case err != nil:
			utils.Sugar.Errorf("verify admin token: %v", err)
			utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to verify session")
			ctx.Abort()
			return
		}

		ctx.Set(ContextIdentityKey, id)
		ctx.Set(ContextTokenKey, token)
		ctx.Next()
	}
}

// IdentityFrom returns the identity stored by AdminRequired.
func IdentityFrom(ctx *gin.Context) (auth.Identity, bool) {
	v, ok := ctx.Get(ContextIdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
