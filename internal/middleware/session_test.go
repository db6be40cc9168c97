package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	users map[string]*domain.User
}

func (s *stubValidator) UserFromSession(token string) (*domain.User, error) {
	user, ok := s.users[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return user, nil
}

func newTestContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireSession_NoCookieRedirects(t *testing.T) {
	m := NewSessionMiddleware(&stubValidator{}, false)
	c, rec := newTestContext(t, nil)

	handlerRan := false
	handler := m.RequireSession()(func(c echo.Context) error {
		handlerRan = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.False(t, handlerRan, "handler must not run without a session")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireSession_InvalidTokenRedirectsAndClearsCookie(t *testing.T) {
	m := NewSessionMiddleware(&stubValidator{}, false)
	c, rec := newTestContext(t, &http.Cookie{Name: SessionCookieName, Value: "stale-token"})

	handler := m.RequireSession()(func(c echo.Context) error {
		t.Fatal("handler must not run with an invalid session")
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	res := rec.Result()
	var cleared bool
	for _, cookie := range res.Cookies() {
		if cookie.Name == SessionCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "stale session cookie should be expired")
}

func TestRequireSession_ValidTokenLoadsUser(t *testing.T) {
	alice := &domain.User{ID: 1, Username: "alice"}
	m := NewSessionMiddleware(&stubValidator{users: map[string]*domain.User{"good-token": alice}}, false)
	c, rec := newTestContext(t, &http.Cookie{Name: SessionCookieName, Value: "good-token"})

	handler := m.RequireSession()(func(c echo.Context) error {
		user := CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "good-token", SessionToken(c))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCurrentUser_MissingReturnsNil(t *testing.T) {
	c, _ := newTestContext(t, nil)
	assert.Nil(t, CurrentUser(c))
	assert.Equal(t, "", SessionToken(c))
}

func TestSetSessionCookie(t *testing.T) {
	c, rec := newTestContext(t, nil)
	SetSessionCookie(c, "token-1", time.Hour, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "token-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
}
