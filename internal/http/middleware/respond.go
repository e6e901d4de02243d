package middleware

import (
	"github.com/gin-gonic/gin"
)

func abortJSON(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"error":      message,
		"code":       code,
		"request_id": GetRequestID(c),
	})
}
