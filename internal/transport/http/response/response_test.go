package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestJSONWrapsSuccessWithDefaultMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSON(c, 200, gin.H{"id": "1"})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(200), body["status_code"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, DefaultMessage, body["message"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
}

func TestJSONReadsAttachedMessageLazily(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Message(c, "products retrieved successfully")
	JSON(c, 200, []string{})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "products retrieved successfully", body["message"])
}

func TestJSONPassesErrorStatusesThrough(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSON(c, 404, gin.H{"already": "shaped"})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"already": "shaped"}, body)
	assert.Equal(t, 404, w.Code)
}

func TestErrorBodyDispatchesScalarAndArray(t *testing.T) {
	b := ErrorBody(422, "ValidationException", []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, b.Messages)
	assert.Empty(t, b.Message)

	b = ErrorBody(404, "NotFoundException", "product does not exist")
	assert.Equal(t, "product does not exist", b.Message)
	assert.Empty(t, b.Messages)
	assert.False(t, b.Success)
}
