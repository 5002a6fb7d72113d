package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prison-jobs/internal/config"
	"prison-jobs/internal/domain/matching"
	"prison-jobs/internal/domain/questionnaire"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/pkg/jwt"
	"prison-jobs/internal/pkg/response"
	"prison-jobs/internal/usecase"
	"prison-jobs/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContainer() *Container {
	logger := zap.NewNop()
	def := questionnaire.Default()
	return &Container{
		Config: config.Config{
			App:    config.AppConfig{AppName: "prison-jobs-test", CORSAllowOrigins: []string{"*"}},
			Upload: config.UploadConfig{MaxBytes: 10 << 20},
		},
		Logger:        logger,
		Hub:           ws.NewHub(logger),
		JWT:           jwt.NewHMACService("access", "refresh", time.Minute, time.Hour),
		Questionnaire: usecase.NewQuestionnaireUsecase(def, matching.NewEngine(def), nil, nil, logger),
	}
}

func do(t *testing.T, a *App, req *http.Request) (int, response.SemanticResponse, http.Header) {
	t.Helper()
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out response.SemanticResponse
	if len(b) > 0 && b[0] == '{' {
		require.NoError(t, json.Unmarshal(b, &out))
	}
	return resp.StatusCode, out, resp.Header
}

func TestApp_HealthWithoutDatabase(t *testing.T) {
	a := New(newTestContainer())

	status, body, _ := do(t, a, httptest.NewRequest(fiber.MethodGet, "/health", nil))
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "disabled", data["database"])
	assert.Equal(t, "disabled", data["cache"])
}

func TestApp_PublicRoutes(t *testing.T) {
	a := New(newTestContainer())

	status, body, header := do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/v1/questionnaire/questions", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, header.Get("X-Request-ID"))
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	sections, ok := data["sections"].([]any)
	require.True(t, ok)
	assert.Len(t, sections, 14)

	resp, err := a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestApp_UnknownRouteUsesEnvelope(t *testing.T) {
	a := New(newTestContainer())

	status, body, _ := do(t, a, httptest.NewRequest(fiber.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, fiber.StatusNotFound, body.Status)
}

func TestApp_RoleProtectedRoutes(t *testing.T) {
	c := newTestContainer()
	a := New(c)

	seeker, err := c.JWT.GenerateAccessToken(uuid.New(), "s@example.com", string(user.RoleJobSeeker))
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/jobs/pending", nil)
	status, _, _ := do(t, a, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req = httptest.NewRequest(fiber.MethodGet, "/api/v1/jobs/pending", nil)
	req.Header.Set("Authorization", "Bearer "+seeker)
	status, body, _ := do(t, a, req)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Access denied. Insufficient permissions", body.Message)
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "8080", want: ":8080"},
		{in: ":9000", want: ":9000"},
		{in: "  3000 ", want: ":3000"},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ListenAddr(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBodyLimit(t *testing.T) {
	assert.Equal(t, minBodyLimit, bodyLimit(0))
	assert.Equal(t, 11<<20, bodyLimit(10<<20))
}
