package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adityarahman/staffgate/internal/domain"
	"github.com/adityarahman/staffgate/pkg/httpx"
	"github.com/adityarahman/staffgate/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T) *jwtx.Codec {
	t.Helper()
	codec, err := jwtx.NewCodec([]byte("guard-test-secret"), "staffgate")
	require.NoError(t, err)
	return codec
}

func signSession(t *testing.T, codec *jwtx.Codec, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwtx.NewSessionClaims("user-1", "a@x.com", role, "staffgate", ttl, time.Now().UTC())
	token, err := codec.Sign(claims)
	require.NoError(t, err)
	return token
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateNoCookie(t *testing.T) {
	var called bool
	h := httpx.Chain(okHandler(&called), httpx.Authenticate(newCodec(t), false))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/admin/dashboard.html", nil))

	require.False(t, called)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, httpx.LoginPath, rec.Header().Get("Location"))
}

func TestAuthenticateInvalidTokenClearsCookie(t *testing.T) {
	var called bool
	h := httpx.Chain(okHandler(&called), httpx.Authenticate(newCodec(t), false))

	req := httptest.NewRequest(http.MethodGet, "/pages/admin/dashboard.html", nil)
	req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: "not.a.token"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.False(t, called)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, httpx.LoginPath, rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, httpx.SessionCookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	codec := newCodec(t)
	var called bool
	h := httpx.Chain(okHandler(&called), httpx.Authenticate(codec, false))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  httpx.SessionCookieName,
		Value: signSession(t, codec, "staff", -time.Minute),
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.False(t, called)
	require.Equal(t, http.StatusFound, rec.Code)
}

func TestAuthenticateValidTokenPopulatesContext(t *testing.T) {
	codec := newCodec(t)

	var gotRole domain.Role
	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = httpx.RoleFromContext(r.Context())
		gotEmail, _ = httpx.EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := httpx.Chain(next, httpx.Authenticate(codec, false))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  httpx.SessionCookieName,
		Value: signSession(t, codec, "admin", time.Hour),
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.RoleAdmin, gotRole)
	require.Equal(t, "a@x.com", gotEmail)
}

func TestRequireRole(t *testing.T) {
	codec := newCodec(t)

	serve := func(t *testing.T, tokenRole string, allowed ...domain.Role) *httptest.ResponseRecorder {
		t.Helper()
		var called bool
		h := httpx.Chain(okHandler(&called),
			httpx.Authenticate(codec, false),
			httpx.RequireRole(allowed...),
		)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{
			Name:  httpx.SessionCookieName,
			Value: signSession(t, codec, tokenRole, time.Hour),
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("staff denied on admin route", func(t *testing.T) {
		rec := serve(t, "staff", domain.RoleAdmin)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, httpx.ForbiddenMessage, rec.Body.String())
	})

	t.Run("admin allowed on admin route", func(t *testing.T) {
		rec := serve(t, "admin", domain.RoleAdmin)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin allowed on staff route", func(t *testing.T) {
		rec := serve(t, "admin", domain.RoleStaff, domain.RoleAdmin)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denied without preceding authenticate", func(t *testing.T) {
		var called bool
		h := httpx.Chain(okHandler(&called), httpx.RequireRole(domain.RoleAdmin))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.False(t, called)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSessionCookieAttributes(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.SetSessionCookie(rec, "tok", time.Hour, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	require.Equal(t, "token", c.Name)
	require.Equal(t, "tok", c.Value)
	require.Equal(t, 3600, c.MaxAge)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteStrictMode, c.SameSite)
	require.Equal(t, "/", c.Path)
}
