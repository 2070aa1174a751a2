package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionName is the cookie name for the application session
const SessionName = "session"

// sessionIDKey holds the per-session identifier inside the session values
const sessionIDKey = "session_id"

// SessionMiddleware provides session management functionality
type SessionMiddleware struct {
	store sessions.Store
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store sessions.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// EnsureSession guarantees every request carries a session with a
// session ID, issuing a fresh one on first contact. The ID keys the
// session's ticket ledger for the lifetime of the session.
func (m *SessionMiddleware) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// A stale or tampered cookie yields a fresh session
			session, _ = m.store.New(r, SessionName)
		}

		if _, ok := session.Values[sessionIDKey].(string); !ok {
			session.Values[sessionIDKey] = uuid.NewString()
			if err := session.Save(r, w); err != nil {
				http.Error(w, "Failed to establish session", http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// SessionID returns the session's identifier, or an empty string when
// the session has none yet
func SessionID(session *sessions.Session) string {
	id, _ := session.Values[sessionIDKey].(string)
	return id
}
