package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageSuccess is the message carried by every successful envelope.
const MessageSuccess = "Success"

// Resp is the envelope used by the system routes (health, readiness,
// liveness). Domain routes emit their own fixed body shapes and do not
// use it.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}
