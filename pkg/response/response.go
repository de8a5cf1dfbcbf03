package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response. Errors carries the
// ordered field-level violations for validation failures and stays absent
// otherwise.
type ErrorBody struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// Error writes an error response with the given status and stable message.
func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorBody{Message: message, Errors: details})
}

// AbortError writes an error response and aborts the handler chain.
// Used by middleware rejections.
func AbortError(c *gin.Context, status int, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message, Errors: details})
}

// Message writes a bare {"message": ...} success body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
