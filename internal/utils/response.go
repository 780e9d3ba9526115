package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes a success body of the form {"message": ..., <fields>...}.
func Respond(c *gin.Context, statusCode int, message string, fields gin.H) {
	body := gin.H{"message": message}
	for key, value := range fields {
		body[key] = value
	}
	c.JSON(statusCode, body)
}

// NotFoundMessage writes the 404 body used by lookup endpoints.
func NotFoundMessage(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// RespondError maps the error taxonomy to HTTP once, at the transport
// boundary: NotFoundError to 404, ValidationError to 400, anything else
// to 500. Error bodies carry a single human-readable message.
func RespondError(c *gin.Context, err error) {
	switch {
	case IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
