package middlewares

import (
	"net/http"

	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// SessionOptional resolves the caller from an Authorization bearer
// credential or, failing that, the session cookie. Callers without a
// usable credential continue as anonymous. A cookie whose session is gone
// is expired on the client.
func (m *Middlewares) SessionOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		var principal models.Principal

		if credential := utils.BearerToken(r); credential != "" {
			resolved, err := m.AuthUsecase.ResolveCredential(credential)
			if err != nil {
				m.Log.Debug("bearer credential cannot be decoded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
				)
			} else {
				principal = resolved
			}
		} else if sessionID := utils.SessionCookieValue(r); sessionID != "" {
			resolved, err := m.AuthUsecase.ResolveSession(r.Context(), sessionID)
			if err != nil {
				m.Log.Info("session cookie rejected",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSessionIDSuffixKey, suffix(sessionID)),
					zap.Error(err),
				)
				utils.ClearSessionCookie(w, m.cookieOptions())
			} else {
				principal = resolved
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithPrincipal(r.Context(), principal)))
	})
}

// RequireSession rejects anonymous callers with 401. It must run after
// SessionOptional.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := utils.PrincipalFromContext(r.Context())
		if !principal.Identity.Authenticated {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionMissing(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) cookieOptions() utils.CookieOptions {
	return utils.CookieOptions{
		Secure: m.InternalConfig.Session.CookieSecure,
		Domain: m.InternalConfig.Session.CookieDomain,
	}
}

func suffix(sessionID string) string {
	if len(sessionID) <= 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}
