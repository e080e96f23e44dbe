package middleware

import (
	"errors"
	"net/http"
	"time"

	"campus-connect/eventhub/internal/auth"
	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
)

// AuthMiddleware resolves the session cookie and attaches the student's
// claims to the request context. Requests without a valid session get a
// 401 JSON response.
func AuthMiddleware(sessions common.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			cookie, err := r.Cookie(constants.SessionCookieName)
			if err != nil {
				common.RespondError(w, initTime, nil, constants.MsgNotSignedIn, http.StatusUnauthorized)
				return
			}

			session, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, common.ErrSessionNotFound) {
					common.RespondError(w, initTime, nil, constants.MsgNotSignedIn, http.StatusUnauthorized)
					return
				}
				common.RespondError(w, initTime, err, "Session lookup failed", http.StatusInternalServerError)
				return
			}

			claims := &auth.SessionClaims{
				StudentUSN:   session.USN,
				StudentName:  session.Name,
				StudentEmail: session.Email,
				SessionID:    session.SessionID,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
