package response

import (
	"github.com/gin-gonic/gin"
	"github.com/receipthub/receipthub-api/pkg/apperror"
)

// ErrorResponse is the JSON body of every error response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Error sends an error response. Unknown errors collapse to a generic 500
// so no storage or implementation detail reaches the client.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code >= 500 {
		c.Error(err)
	}
	c.JSON(appErr.Code, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Errors,
	})
}

// ErrorWithCode sends an error response with a specific status code
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
	})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, 400, message)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	ErrorWithCode(c, 401, message)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	ErrorWithCode(c, 404, message)
}
