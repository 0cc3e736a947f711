package state

import (
	"net/http"

	"github.com/google/uuid"
)

// sessionCookie identifies a browser session. The cookie carries a
// random UUID and nothing else; all data lives server-side.
const sessionCookie = "paperdesk_session"

// SessionID returns the caller's session identifier, minting and
// setting a new one when the request carries no valid cookie.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
