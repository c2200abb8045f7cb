package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/NiharikaRamisetty/Finance-tracker/internal/config"
	"github.com/NiharikaRamisetty/Finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	DB         *gorm.DB
	CookieName string
	SessionTTL time.Duration
	Secure     bool
}

func NewAuthHandler(db *gorm.DB, cfg config.SessionConfig) *AuthHandler {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "ft_session"
	}
	ttlHours := cfg.TTLHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:         db,
		CookieName: cookieName,
		SessionTTL: time.Duration(ttlHours) * time.Hour,
		Secure:     cfg.Secure,
	}
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"title": "Finance Tracker - Register",
	})
}

// Register creates a new user account from the submitted form.
func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.String(http.StatusBadRequest, "Username and password are required.")
		return
	}

	// Usernames are unique, case-sensitive exact match.
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to check username")
		return
	}
	if count > 0 {
		c.String(http.StatusConflict, "Username already exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Login checks the submitted credentials and opens a session.
// The error response stays generic: an unknown username and a wrong
// password are indistinguishable to the client.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	if err := h.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.String(http.StatusUnauthorized, "Invalid credentials")
		} else {
			c.String(http.StatusInternalServerError, "Failed to look up user")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(h.SessionTTL),
	}
	if err := h.DB.Create(&sess).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.SetCookie(h.CookieName, sess.ID, int(h.SessionTTL.Seconds()), "/", "", h.Secure, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.CookieName); err == nil && token != "" {
		_ = h.DB.Model(&models.Session{}).
			Where("id = ?", token).
			Update("revoked", true).Error
	}
	c.SetCookie(h.CookieName, "", -1, "/", "", h.Secure, true)
	c.Redirect(http.StatusFound, "/")
}
