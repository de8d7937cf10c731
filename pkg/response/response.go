package response

import (
	"github.com/gin-gonic/gin"
)

// Error writes the uniform error shape. details is optional and carries
// field-level validation messages.
func Error(c *gin.Context, status int, message string, details any) {
	body := gin.H{"error": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// Message writes a bare acknowledgment body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
