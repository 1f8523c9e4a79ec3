package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"motolog-api/controllers"
	"motolog-api/models"
	"motolog-api/testutil"
)

const cookieName = "better-auth.session_token"

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == cookieName {
			return cookie
		}
	}
	t.Fatalf("response did not set %s", cookieName)
	return nil
}

func signUp(t *testing.T, r http.Handler, email string) *http.Cookie {
	t.Helper()
	w := testutil.Request(t, r, http.MethodPost, "/api/auth/sign-up/email", map[string]string{
		"name":     "Rider",
		"email":    email,
		"password": "Sup3rSecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestSignUpSetsSessionCookie(t *testing.T) {
	r, _ := setupRouter(t)

	w := testutil.Request(t, r, http.MethodPost, "/api/auth/sign-up/email", map[string]string{
		"name":     "Rider",
		"email":    "rider@example.com",
		"password": "Sup3rSecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	body := testutil.Decode[controllers.AuthResponse](t, w)
	assert.Equal(t, cookie.Value, body.Token)
	assert.Equal(t, "rider@example.com", body.User.Email)

	w = testutil.Request(t, r, http.MethodGet, "/api/auth/get-session", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	view := testutil.Decode[models.SessionView](t, w)
	assert.Equal(t, body.User.ID, view.User.ID)

	w = testutil.Request(t, r, http.MethodPost, "/api/auth/sign-up/email", map[string]string{
		"name":     "Rider",
		"email":    "rider@example.com",
		"password": "Sup3rSecret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignUpRejectsWeakPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := testutil.Request(t, r, http.MethodPost, "/api/auth/sign-up/email", map[string]string{
		"name":     "Rider",
		"email":    "rider@example.com",
		"password": "password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignInAndSignOut(t *testing.T) {
	r, _ := setupRouter(t)
	signUp(t, r, "rider@example.com")

	w := testutil.Request(t, r, http.MethodPost, "/api/auth/sign-in/email", map[string]string{
		"email":    "rider@example.com",
		"password": "wrong-Passw0rd",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", testutil.Decode[map[string]string](t, w)["error"])

	w = testutil.Request(t, r, http.MethodPost, "/api/auth/sign-in/email", map[string]string{
		"email":    "rider@example.com",
		"password": "Sup3rSecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookie := sessionCookie(t, w)

	w = testutil.Request(t, r, http.MethodPost, "/api/auth/sign-out", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, "", sessionCookie(t, w).Value)

	w = testutil.Request(t, r, http.MethodGet, "/api/auth/get-session", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestGetSessionAcceptsBearerToken(t *testing.T) {
	r, _ := setupRouter(t)
	cookie := signUp(t, r, "rider@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/get-session", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	view := testutil.Decode[models.SessionView](t, w)
	assert.Equal(t, "rider@example.com", view.User.Email)
}

func TestVerifyEmailRejectsWrongCode(t *testing.T) {
	r, _ := setupRouter(t)
	signUp(t, r, "rider@example.com")

	w := testutil.Request(t, r, http.MethodPost, "/api/auth/send-verification-email", map[string]string{"email": "rider@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":true}`, w.Body.String())

	w = testutil.Request(t, r, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": "rider@example.com",
		"code":  "abcdef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Request(t, r, http.MethodPost, "/api/auth/send-verification-email", map[string]string{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignedInUserOwnsMotorcycle(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := testutil.Config()
	cfg.RequireAPISession = true
	r := testutil.NewRouter(t, db, cfg)

	w := testutil.Request(t, r, http.MethodGet, "/api/motorcycle", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Request(t, r, http.MethodPost, "/api/auth/sign-up/email", map[string]string{
		"name":     "Rider",
		"email":    "rider@example.com",
		"password": "Sup3rSecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookie := sessionCookie(t, w)
	user := testutil.Decode[controllers.AuthResponse](t, w).User

	w = testutil.Request(t, r, http.MethodGet, "/api/motorcycle", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, user.ID, testutil.Decode[models.Motorcycle](t, w).UserID)
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := setupRouter(t)

	w := testutil.Request(t, r, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Request(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Request(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "motolog_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/health"`)
}
