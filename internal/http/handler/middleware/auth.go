package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
	public    map[string]struct{}
}

// NewAuthMiddleware requires a valid bearer token on every path except the public ones.
func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator, publicPaths ...string) *AuthMiddleware {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
		public:    public,
	}
}

func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.public[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		requestId := RequestIDFrom(r.Context())

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			unauthorized(w, "bearer token is required")
			m.logs.Warnw("missing bearer token",
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			unauthorized(w, "invalid token")
			m.logs.Warnw("invalid bearer token",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		m.logs.Debugw("request authenticated",
			"sub", claims["sub"],
			"request_id", requestId)

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   msg,
	})
}
