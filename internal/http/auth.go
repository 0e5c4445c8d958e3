package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akupelikilinc/TalhaBookLib/internal/auth"
)

type AuthController struct {
	service *auth.Service
}

func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a signed bearer token.
// POST /api/auth/login
func (controller *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondBadRequest(c, "username and password required")
		return
	}

	token, user, err := controller.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondUnauthorized(c, "invalid credentials")
			return
		}
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Verify validates the bearer token and returns the user it names.
// GET /api/auth/verify
func (controller *AuthController) Verify(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		respondUnauthorized(c, "no token provided")
		return
	}

	user, err := controller.service.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			respondUnauthorized(c, "token expired")
		case errors.Is(err, auth.ErrInvalidToken):
			respondUnauthorized(c, "invalid token")
		default:
			respondInternalError(c, err, "verify token")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
