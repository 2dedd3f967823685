package http

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/auth"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

var (
	errMissingToken = fmt.Errorf("%w: missing token", domain.ErrUnauthorized)
	errBadToken     = fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
)

func isPublicPath(path string) bool {
	switch path {
	case "/healthz", "/readyz", "/metrics":
		return true
	}
	return strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(authz, "Bearer ")
		if !ok || tokenStr == "" {
			a.rejectUnauthenticated(w, r, errMissingToken)
			return
		}

		principal, err := a.authenticator.Authenticate(r.Context(), tokenStr)
		if err != nil {
			a.logger.Debug("rejected bearer token",
				zap.String("path", r.URL.Path),
				zap.String("request_id", RequestID(r.Context())),
				zap.Error(err),
			)
			a.rejectUnauthenticated(w, r, errBadToken)
			return
		}

		ctx := auth.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) rejectUnauthenticated(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="ipam"`)
	status, body := errorResponse(err)
	a.respond(w, r, status, body)
}
