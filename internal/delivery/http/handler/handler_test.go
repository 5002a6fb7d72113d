package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"prison-jobs/internal/delivery/http/middleware"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	app *fiber.App
	jwt *jwt.HMACService
}

func newTestJWT() *jwt.HMACService {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func newTestEnv(register func(app *fiber.App, auth fiber.Handler)) *testEnv {
	svc := newTestJWT()
	app := fiber.New()
	app.Use(middleware.NewAccessLogMiddleware(zap.NewNop()).Middleware())
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())
	register(app, middleware.NewAuthMiddleware(svc).Middleware())
	return &testEnv{app: app, jwt: svc}
}

func (e *testEnv) token(t *testing.T, id uuid.UUID, role user.Role) string {
	t.Helper()
	tok, err := e.jwt.GenerateAccessToken(id, string(role)+"@example.com", string(role))
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (int, envelope) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out envelope
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func strPtr(s string) *string { return &s }
