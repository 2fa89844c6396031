package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translation-service/internal/auth"
	"github.com/guttosm/translation-service/internal/domain/dto"
	"github.com/guttosm/translation-service/internal/metrics"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"

	// PrincipalKey is the context key under which the authenticated
	// principal is stored for the duration of one request.
	PrincipalKey ContextKey = "auth_principal"
)

// ErrNoPrincipal is returned by PrincipalFromContext when no authenticated
// principal is present. Hitting it means a handler behind the gate was
// invoked without it, which is a programming error, not a client failure.
var ErrNoPrincipal = errors.New("no authenticated principal in request context")

// APIKeyAuth returns the request gate for protected routes. It extracts the
// X-API-Key header, resolves it to a tenant, and stores the principal in the
// request context. Requests without a key or with an unknown key are
// rejected with the fixed-shape 401 body.
func APIKeyAuth(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			metrics.RecordAuthAttempt("missing_key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAuthError("API key is required"))
			return
		}

		principal, err := authenticator.Authenticate(key)
		if err != nil {
			metrics.RecordAuthAttempt("invalid_key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAuthError("Invalid API key"))
			return
		}

		metrics.RecordAuthAttempt("success")
		c.Set(string(PrincipalKey), principal)
		c.Next()
	}
}

// PrincipalFromContext returns the principal stored by APIKeyAuth. It fails
// with ErrNoPrincipal when called outside an authenticated request.
func PrincipalFromContext(c *gin.Context) (auth.Principal, error) {
	v, exists := c.Get(string(PrincipalKey))
	if !exists {
		return auth.Principal{}, ErrNoPrincipal
	}
	principal, ok := v.(auth.Principal)
	if !ok {
		return auth.Principal{}, ErrNoPrincipal
	}
	return principal, nil
}
