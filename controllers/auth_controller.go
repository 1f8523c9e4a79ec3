// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"motolog-api/models"
	"motolog-api/repositories"
	"motolog-api/services"
	"motolog-api/utils"
)

type AuthController struct {
	auth       *services.AuthService
	cookieName string
	sessionTTL time.Duration
}

func NewAuthController(auth *services.AuthService, cookieName string, sessionTTL time.Duration) *AuthController {
	return &AuthController{
		auth:       auth,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerificationCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := ac.auth.SignUp(c.Request.Context(), services.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}, clientInfo(c))
	if err != nil {
		respondError(c, err, "User not found", "Failed to create user")
		return
	}

	ac.setSessionCookie(c, view.Session.Token)
	c.JSON(http.StatusOK, AuthResponse{Token: view.Session.Token, User: view.User})
}

func (ac *AuthController) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := ac.auth.SignIn(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		respondError(c, err, "User not found", "Failed to sign in")
		return
	}

	ac.setSessionCookie(c, view.Session.Token)
	c.JSON(http.StatusOK, AuthResponse{Token: view.Session.Token, User: view.User})
}

func (ac *AuthController) SignOut(c *gin.Context) {
	token := utils.SessionToken(c, ac.cookieName)
	if err := ac.auth.SignOut(c.Request.Context(), token); err != nil {
		log.Printf("Failed to delete session: %v", err)
	}

	ac.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSession answers with the current session and user, or null when there is none.
func (ac *AuthController) GetSession(c *gin.Context) {
	view, err := ac.auth.GetSession(c.Request.Context(), utils.SessionToken(c, ac.cookieName))
	if errors.Is(err, services.ErrInvalidSession) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(c, err, "Session not found", "Failed to fetch session")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (ac *AuthController) SendVerificationEmail(c *gin.Context) {
	var req VerificationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.auth.SendVerificationCode(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "User not found", "Failed to send verification email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true})
}

func (ac *AuthController) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.auth.VerifyEmail(c.Request.Context(), req.Email, req.Code)
	switch {
	case errors.Is(err, services.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification code"})
		return
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case err != nil:
		respondError(c, err, "User not found", "Failed to verify email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "user": user})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookieName, token, int(ac.sessionTTL.Seconds()), "/", "", gin.Mode() == gin.ReleaseMode, true)
}

func (ac *AuthController) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookieName, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
}

func clientInfo(c *gin.Context) services.ClientInfo {
	return services.ClientInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
