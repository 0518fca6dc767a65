package utils

import (
	"net/http"

	"contactform/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewMessageResponse(message))
}
