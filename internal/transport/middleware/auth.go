package middleware

import (
	"net/http"
	"strings"

	"github.com/stallbook/stallbook-backend/internal/auth"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Auth verifies a Bearer token and stores the caller's identity on the
// request context. Requests without a token pass through anonymously;
// services reject them where authentication is required.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := verifier.Verify(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			ctx = ctxutil.WithUserEmail(ctx, identity.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
