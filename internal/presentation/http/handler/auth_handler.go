package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/receipthub/receipthub-api/internal/application/service"
	"github.com/receipthub/receipthub-api/internal/config"
	"github.com/receipthub/receipthub-api/internal/presentation/http/dto/request"
	"github.com/receipthub/receipthub-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	jwtCfg      *config.JWTConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{authService: authService, jwtCfg: jwtCfg}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"full_name": user.FullName,
		"username":  user.Username,
	})
}

// Login handles user login. The issued token is returned in the body and
// also set as an httponly cookie for session convenience.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(h.jwtCfg.Expiry.Seconds())
	c.SetCookie(h.jwtCfg.CookieName, output.AccessToken, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
		"token_type":   "bearer",
	})
}
