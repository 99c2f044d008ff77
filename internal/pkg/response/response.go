package response

import "github.com/gin-gonic/gin"

// Error writes the API's error object: {"message": "..."}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Message writes a success confirmation in the same {"message"} shape,
// used by delete.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
