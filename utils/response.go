package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError writes the standard error envelope for a service failure
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		// Keep the cause in the server log, never in the response
		log.Printf("internal error: %v", err)
	}
	c.JSON(status, gin.H{
		"status":  "error",
		"message": UserMessage(err),
	})
}

// RespondBadRequest writes the envelope for a malformed request body
func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": message,
	})
}
