package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func staffActor() domain.Actor {
	return domain.Actor{TenantID: uuid.New(), UserID: uuid.New(), Role: domain.RoleStaff}
}

// newContext builds a test context with the actor already authenticated.
// A nil body sends no payload; anything else is JSON-encoded.
func newContext(t *testing.T, method, target string, body interface{}, actor *domain.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, r)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	if actor != nil {
		c.Set(middleware.ContextKeyActor, *actor)
	}
	return c, w
}

func withID(c *gin.Context, id uuid.UUID) {
	c.Params = append(c.Params, ginParam("id", id.String()))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func requireErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := decode(t, w)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, code, resp.Error.Code)
}

func ginParam(key, value string) gin.Param {
	return gin.Param{Key: key, Value: value}
}
