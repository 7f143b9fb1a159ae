package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sample-be/internal/bootstrap"
	"sample-be/internal/config"
	"sample-be/internal/pkg/logger"
	"sample-be/internal/server"
	"sample-be/internal/testutil"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testSecret = "controller-test-secret"
	testUserId = "user-1"
)

type testApp struct {
	app   *fiber.App
	db    *gorm.DB
	token string
}

func newTestApp(t *testing.T) *testApp {
	db := testutil.NewDB(t)
	testutil.SeedUser(t, db, testUserId, "alice")

	cfg := &config.Config{
		App:    config.AppConfig{Name: "sampleApp", CorsAllowedOrigins: "*"},
		Auth:   config.AuthConfig{JwtSecret: testSecret},
		Events: config.EventsConfig{Bus: bootstrap.EventBusNone},
	}
	container := bootstrap.NewContainer(db, cfg, logger.NewNopLogger())
	t.Cleanup(container.Close)

	return &testApp{
		app:   server.New(cfg, container).GetApp(),
		db:    db,
		token: signToken(t, testUserId, "alice"),
	}
}

func signToken(t *testing.T, userId, login string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"login":   login,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// do sends the request with the test user's token. contentType defaults to
// application/json when a body is given.
func (a *testApp) do(t *testing.T, method, path, body, contentType string) (*http.Response, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		if contentType == "" {
			contentType = fiber.MIMEApplicationJSON
		}
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+a.token)

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func (a *testApp) count(t *testing.T, table string) int64 {
	var n int64
	require.NoError(t, a.db.Table(table).Count(&n).Error)
	return n
}

type problem struct {
	Status      int    `json:"status"`
	EntityName  string `json:"entityName"`
	ErrorKey    string `json:"errorKey"`
	FieldErrors []struct {
		Field string `json:"field"`
	} `json:"fieldErrors"`
}

func decode[T any](t *testing.T, raw []byte) T {
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
