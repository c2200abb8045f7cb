package handler

import (
	"github.com/NiharikaRamisetty/Finance-tracker/internal/middleware"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the user placed in the context by the auth
// middleware, or nil on unprotected routes.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
