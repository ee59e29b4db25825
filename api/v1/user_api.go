package v1

import (
	"net/http"

	"community_portal/api/v1/request"
	"community_portal/middleware"
	"community_portal/model"
	"community_portal/service"

	"github.com/gin-gonic/gin"
)

// UserAPI exposes HTTP handlers for registration and user administration.
type UserAPI struct {
	service *service.UserService
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// Register handles new account creation. A successful registration also
// enrolls the phone as a notice subscriber, best-effort.
func (u *UserAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	}
	if err := u.service.Register(user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully", "user": user})
}

// Me returns the caller's own record.
func (u *UserAPI) Me(c *gin.Context) {
	user, err := u.service.Me(middleware.ClaimsFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// List returns all users. Admins and editors only.
func (u *UserAPI) List(c *gin.Context) {
	users, err := u.service.List(middleware.ClaimsFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one user. Admins and editors only.
func (u *UserAPI) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := u.service.Get(middleware.ClaimsFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update mutates a user. Admin only.
func (u *UserAPI) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	upd := service.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if req.Role != nil {
		role := model.Role(*req.Role)
		upd.Role = &role
	}
	user, err := u.service.Update(middleware.ClaimsFrom(c), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated successfully", "user": user})
}

// Delete removes a user. Admin, or the user themselves.
func (u *UserAPI) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := u.service.Delete(middleware.ClaimsFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}
