package response

import (
	"github.com/gin-gonic/gin"
)

// DefaultMessage is used when a handler attaches no success message.
const DefaultMessage = "Request was successful"

// messageKey is the context key handlers write their success message under.
const messageKey = "response.message"

// Body is the one envelope every response conforms to, success or failure.
type Body struct {
	StatusCode int      `json:"status_code"`
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	Messages   []string `json:"messages,omitempty"`
	Error      string   `json:"error,omitempty"`
	Data       any      `json:"data,omitempty"`
}

// Message attaches a custom success message to the request. It must be called
// before JSON; JSON reads it at emit time.
func Message(c *gin.Context, msg string) {
	c.Set(messageKey, msg)
}

// JSON is the single exit point for successful payloads. Statuses >= 400 pass
// the payload through unmodified: the error chain already produced the final
// shape. Everything else is wrapped in the success envelope.
func JSON(c *gin.Context, status int, data any) {
	if status >= 400 {
		c.JSON(status, data)
		return
	}
	msg := c.GetString(messageKey)
	if msg == "" {
		msg = DefaultMessage
	}
	c.JSON(status, Body{
		StatusCode: status,
		Success:    true,
		Message:    msg,
		Data:       data,
	})
}

// ErrorBody builds a failure envelope. Array-valued details go to Messages,
// scalars to Message.
func ErrorBody(status int, name string, detail any) Body {
	b := Body{StatusCode: status, Success: false, Error: name}
	switch m := detail.(type) {
	case []string:
		b.Messages = m
	case string:
		b.Message = m
	case nil:
	default:
		b.Message = name
	}
	return b
}
