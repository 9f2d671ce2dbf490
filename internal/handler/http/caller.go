package http

import (
	"net/http"
	"strconv"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// callerFromRequest rebuilds the caller identity from the verified token on
// the request. Services receive this value explicitly.
func callerFromRequest(r *http.Request) (auth.Caller, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	return jwt.CallerFromClaims(claims)
}

func queryInt(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func queryIntPtr(r *http.Request, key string) *int {
	if value, ok := queryInt(r, key); ok {
		return &value
	}
	return nil
}
