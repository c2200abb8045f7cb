package util

import "github.com/gin-gonic/gin"

// JSON responds with a structured payload for the data API.
func JSON(c *gin.Context, status int, data gin.H) {
	c.JSON(status, data)
}

// APIError responds with a structured error marker, e.g.
// {"error": "Unauthorized"}.
func APIError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
