// Package session derives the cart-owning session identity from a request.
// The storefront never creates sessions itself: identity arrives either as a
// plain header from the fronting layer or as a signed cookie, and everything
// else shares the literal "anonymous" cart.
package session

import (
	"context"
	"net/http"
	"strings"
)

const (
	// Anonymous is the shared identity for sessionless clients.
	Anonymous = "anonymous"

	// HeaderName carries a pre-resolved session id from a trusted fronting
	// layer.
	HeaderName = "X-Session-Id"

	// CookieName holds the signed session token.
	CookieName = "sabwear_session"
)

type ctxKey string

const sessionKey ctxKey = "session_id"

// FromContext returns the request's session identity, Anonymous when none was
// derived.
func FromContext(ctx context.Context) string {
	if sid, ok := ctx.Value(sessionKey).(string); ok && sid != "" {
		return sid
	}
	return Anonymous
}

// NewContext is for tests and callers outside the HTTP path.
func NewContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

// Middleware resolves session identity once per request. A nil TokenMaker
// disables cookie verification, leaving header-only derivation.
func Middleware(tm *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := resolve(r, tm)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sid)))
		})
	}
}

func resolve(r *http.Request, tm *TokenMaker) string {
	if sid := strings.TrimSpace(r.Header.Get(HeaderName)); sid != "" {
		return sid
	}

	if tm == nil {
		return Anonymous
	}

	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Anonymous
	}

	// A tampered or expired cookie degrades to the anonymous cart rather
	// than failing the request.
	claims, err := tm.Parse(c.Value)
	if err != nil || claims.SessionID == "" {
		return Anonymous
	}
	return claims.SessionID
}
