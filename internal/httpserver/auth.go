// internal/httpserver/auth.go
//
// Session tokens for the solver API. /session/new hands the client an
// HS256 JWT carrying the session ID; the feedback and candidates routes
// only act on the session named in a valid token. There are no user
// accounts: the token just stops one client from poking another's pool.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookie = "solver_token"

type contextKey string

var sessionCtxKey = contextKey("sessionID")

// signSessionToken issues a JWT bound to one session ID.
func (s *Server) signSessionToken(sessionID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.secret)
}

// requireSession rejects requests without a valid session token and puts
// the token's session ID into the request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return s.secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			sid, _ := claims["sid"].(string)
			if sid == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionCtxKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenMatches reports whether the request's token names sessionID.
func (s *Server) tokenMatches(r *http.Request, sessionID string) bool {
	sid, _ := r.Context().Value(sessionCtxKey).(string)
	return sid != "" && sid == sessionID
}

// bearerOrCookie extracts the token from the Authorization header or the
// session cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}
