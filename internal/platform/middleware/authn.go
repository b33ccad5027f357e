// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vantrong/melodia/internal/platform/apperr"
	"github.com/vantrong/melodia/internal/platform/ctxutil"
	"github.com/vantrong/melodia/internal/platform/respond"
	"github.com/vantrong/melodia/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify actor tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the `sec` token
// service implementation, allowing us to easily inject mocks during unit
// testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// RevocationChecker reports whether a token ID was invalidated before its
// natural expiry. Backed by the Redis revocation list in production.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Authenticate extracts and verifies the actor token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous (reads are open to everyone).
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Reject tokens on the revocation list. Revocation-check failures fail
//     closed: a token we cannot check is a token we do not accept.
//  5. Inject the [*sec.Actor] into the request context for downstream use.
func Authenticate(verifier TokenVerifier, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Revocation Check ───────────────────────────────────────────
			if revocations != nil && claims.ID != "" {
				revoked, err := revocations.IsRevoked(request.Context(), claims.ID)
				if err != nil || revoked {
					respond.Error(writer, request, apperr.Unauthorized("Token has been revoked"))
					return
				}
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithActor(request.Context(), claims.Actor())
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
