package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-product-api/internal/apperr"
	"go-product-api/internal/repo"
)

func init() { gin.SetMode(gin.TestMode) }

func fire(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	r := gin.New()
	r.Use(Errors())
	r.GET("/boom", func(c *gin.Context) { Abort(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestChainBadRequest(t *testing.T) {
	code, body := fire(t, apperr.BadRequest("bad input"))
	assert.Equal(t, 400, code)
	assert.Equal(t, "BadRequestException", body["error"])
	assert.Equal(t, "bad input", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestChainForbidden(t *testing.T) {
	code, body := fire(t, apperr.Forbidden("Invalid Authorization Token Provided"))
	assert.Equal(t, 403, code)
	assert.Equal(t, "ForbiddenException", body["error"])
	assert.Equal(t, "Invalid Authorization Token Provided", body["message"])
}

func TestChainNotFoundUsesDetailPayload(t *testing.T) {
	err := apperr.NotFound("product does not exist", func() apperr.Response {
		return apperr.Response{Message: "product does not exist"}
	})
	code, body := fire(t, err)
	assert.Equal(t, 404, code)
	assert.Equal(t, "NotFoundException", body["error"])
	assert.Equal(t, "product does not exist", body["message"])
}

func TestChainHTTPCarriesCallerStatus(t *testing.T) {
	code, body := fire(t, apperr.HTTP(400, "Invalid Email or Password"))
	assert.Equal(t, 400, code)
	assert.Equal(t, "HttpException", body["error"])
	assert.Equal(t, "Invalid Email or Password", body["message"])
	assert.Equal(t, float64(400), body["status_code"])
}

func TestChainValidationFallsToCatchAllWithMessages(t *testing.T) {
	err := apperr.Validation("name is required", []string{"name is required", "price must be a number"})
	code, body := fire(t, err)
	assert.Equal(t, 422, code)
	assert.Equal(t, "ValidationException", body["error"])
	assert.Equal(t, []any{"name is required", "price must be a number"}, body["messages"])
	_, hasScalar := body["message"]
	assert.False(t, hasScalar)
}

func TestChainInvalidID(t *testing.T) {
	code, body := fire(t, repo.ErrInvalidID)
	assert.Equal(t, 400, code)
	assert.Equal(t, "Invalid ID", body["error"])
	assert.Equal(t, "The provided ID is invalid.", body["message"])
}

func TestChainDuplicateKey(t *testing.T) {
	native := errors.New(`duplicate key value violates unique constraint "users_email_key"`)
	code, body := fire(t, native)
	assert.Equal(t, 409, code)
	assert.Equal(t, "Duplicate key", body["error"])
	assert.Equal(t, native.Error(), body["message"])
	assert.Equal(t, float64(409), body["status_code"])
}

func TestChainUnrecognizedErrorSurfacesAs500(t *testing.T) {
	code, body := fire(t, errors.New("connection reset"))
	assert.Equal(t, 500, code)
	assert.Equal(t, "Error", body["error"])
	assert.Equal(t, "connection reset", body["message"])
}

func TestChainLeavesWrittenResponsesAlone(t *testing.T) {
	r := gin.New()
	r.Use(Errors())
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": 1}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"ok":1}`, w.Body.String())
}
