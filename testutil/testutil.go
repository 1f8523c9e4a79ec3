// Package testutil builds in-memory databases and routers for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"motolog-api/config"
	"motolog-api/database"
	"motolog-api/models"
	"motolog-api/routes"
	"motolog-api/services"
)

// NewDB opens a migrated in-memory SQLite database private to the test.
// A single connection keeps concurrent queries on the same shared-cache database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// Config returns settings suitable for tests: no SMTP and a generous rate limit.
func Config() *config.Config {
	return &config.Config{
		Port:               "0",
		GinMode:            gin.TestMode,
		DBType:             "sqlite",
		SessionSecret:      "test-secret",
		SessionTTL:         time.Hour,
		SessionCookie:      "better-auth.session_token",
		RateLimitPerMinute: 100000,
		RateLimitBurst:     10000,
		CleanupInterval:    time.Hour,
		FromEmail:          "noreply@motolog.test",
		FromName:           "Motolog",
		SingleMotorcycle:   models.DefaultMotorcycleProfile(),
		DefaultOwnerID:     "default-user",
	}
}

// NewRouter wires the full API on db.
func NewRouter(t testing.TB, db *gorm.DB, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	routes.SetupRoutes(r, db, cfg, services.NewEmailService(cfg))
	return r
}

// Request sends body as JSON (unless it is nil) and returns the recorded response.
func Request(t testing.TB, h http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the response body into a value of type T.
func Decode[T any](t testing.TB, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
