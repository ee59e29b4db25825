package v1

import (
	"net/http"

	"community_portal/api/v1/request"
	"community_portal/internal/metrics"
	"community_portal/middleware"
	"community_portal/service"

	"github.com/gin-gonic/gin"
)

// AuthAPI exposes login and the password lifecycle endpoints.
type AuthAPI struct {
	service *service.UserService
}

func NewAuthAPI(s *service.UserService) *AuthAPI {
	return &AuthAPI{service: s}
}

// Login validates credentials and returns a bearer token plus the public user
// fields.
func (a *AuthAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, user, err := a.service.Login(req.Email, req.Password)
	if err != nil {
		metrics.IncLogin("unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// ChangePassword replaces the caller's password after checking the current one.
func (a *AuthAPI) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := middleware.ClaimsFrom(c)
	if err := a.service.ChangePassword(claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}

// ForgotPassword issues a one-time reset code by email.
func (a *AuthAPI) ForgotPassword(c *gin.Context) {
	var req request.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.service.ForgotPassword(req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reset code sent to your email"})
}

// VerifyOTP consumes a reset code and sets the new password.
func (a *AuthAPI) VerifyOTP(c *gin.Context) {
	var req request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.service.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset successfully"})
}
