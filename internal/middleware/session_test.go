package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSession_IssuesSessionID(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	m := NewSessionMiddleware(store)

	var captured string
	handler := m.EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := store.Get(r, SessionName)
		require.NoError(t, err)
		captured = SessionID(session)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/events", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, captured, "a session ID should be issued on first contact")
	require.NotEmpty(t, w.Result().Cookies(), "a session cookie should be set")
}

func TestEnsureSession_KeepsExistingSessionID(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	m := NewSessionMiddleware(store)

	var ids []string
	handler := m.EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := store.Get(r, SessionName)
		require.NoError(t, err)
		ids = append(ids, SessionID(session))
		w.WriteHeader(http.StatusOK)
	}))

	// First request issues the cookie
	first := httptest.NewRequest("GET", "/api/events", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, first)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Second request carries it back
	second := httptest.NewRequest("GET", "/api/tickets", nil)
	for _, c := range cookies {
		second.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), second)

	require.Len(t, ids, 2)
	assert.Equal(t, ids[0], ids[1], "the session ID should be stable across requests")
}

func TestSessionID_MissingReturnsEmpty(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	req := httptest.NewRequest("GET", "/", nil)

	session, err := store.Get(req, SessionName)
	require.NoError(t, err)

	assert.Empty(t, SessionID(session))
}
