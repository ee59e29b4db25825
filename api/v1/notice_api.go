package v1

import (
	"net/http"

	"community_portal/api/v1/request"
	"community_portal/middleware"
	"community_portal/model"
	"community_portal/service"

	"github.com/gin-gonic/gin"
)

// NoticeAPI exposes the admin notice CRUD. Creation triggers the subscriber
// email dispatch; the response reflects only the persisted write.
type NoticeAPI struct {
	service *service.NoticeService
}

func NewNoticeAPI(s *service.NoticeService) *NoticeAPI {
	return &NoticeAPI{service: s}
}

// Create publishes a notice and fans out the subscriber alert.
func (n *NoticeAPI) Create(c *gin.Context) {
	var req request.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	notice := &model.Notice{Title: req.Title, Image: req.Image}
	if err := n.service.Create(middleware.ClaimsFrom(c), notice); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "notice created successfully", "notice": notice})
}

// List returns notices newest first. Public.
func (n *NoticeAPI) List(c *gin.Context) {
	notices, err := n.service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

// Get returns one notice. Public.
func (n *NoticeAPI) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	notice, err := n.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// Update mutates a notice. Admin only.
func (n *NoticeAPI) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	upd := service.NoticeUpdate{Title: req.Title, Image: req.Image}
	notice, err := n.service.Update(middleware.ClaimsFrom(c), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notice updated successfully", "notice": notice})
}

// Delete removes a notice. Admin only.
func (n *NoticeAPI) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := n.service.Delete(middleware.ClaimsFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notice deleted successfully"})
}
