package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore marks responses as uncacheable. The record changes with every
// mutation, so clients must always refetch.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
