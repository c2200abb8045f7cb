package middleware

import (
	"net/http"
	"time"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CurrentUserKey is the context key under which the auth middleware
// stores the logged-in *models.User.
const CurrentUserKey = "currentUser"

// resolveSession turns the session cookie into the logged-in user.
// Returns nil when there is no cookie, the session is unknown, revoked
// or expired, or the user no longer exists.
func resolveSession(c *gin.Context, db *gorm.DB, cookieName string) *models.User {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return nil
	}

	var sess models.Session
	if err := db.First(&sess, "id = ?", token).Error; err != nil {
		return nil
	}
	if sess.Revoked || time.Now().After(sess.ExpiresAt) {
		return nil
	}

	var user models.User
	if err := db.First(&user, sess.UserID).Error; err != nil {
		return nil
	}
	return &user
}

// RequirePageAuth guards HTML routes: without a valid session the
// client is redirected to the entry page.
func RequirePageAuth(db *gorm.DB, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveSession(c, db, cookieName)
		if user == nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RequireAPIAuth guards data routes: without a valid session the client
// gets a structured 401 instead of a redirect.
func RequireAPIAuth(db *gorm.DB, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveSession(c, db, cookieName)
		if user == nil {
			util.APIError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
