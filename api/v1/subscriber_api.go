package v1

import (
	"net/http"

	"community_portal/api/v1/request"
	"community_portal/internal/metrics"
	"community_portal/middleware"
	"community_portal/service"

	"github.com/gin-gonic/gin"
)

// SubscriberAPI exposes the public subscribe endpoint and the admin registry.
type SubscriberAPI struct {
	service *service.SubscriberService
}

func NewSubscriberAPI(s *service.SubscriberService) *SubscriberAPI {
	return &SubscriberAPI{service: s}
}

// Subscribe registers a contact for notice alerts. Public; a duplicate phone
// answers 409.
func (s *SubscriberAPI) Subscribe(c *gin.Context) {
	var req request.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncSubscribe("public", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := s.service.Subscribe(req.PhoneNumber, req.Email)
	if err != nil {
		metrics.IncSubscribe("public", "error")
		respondError(c, err)
		return
	}
	metrics.IncSubscribe("public", "success")
	c.JSON(http.StatusCreated, gin.H{"message": "subscription created successfully", "subscription": sub})
}

// List returns all subscribers. Admin only.
func (s *SubscriberAPI) List(c *gin.Context) {
	subs, err := s.service.List(middleware.ClaimsFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Update mutates a subscription. Admin only.
func (s *SubscriberAPI) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.UpdateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := s.service.Update(middleware.ClaimsFrom(c), id, req.PhoneNumber, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscription updated successfully", "subscription": sub})
}

// Delete removes a subscription. Admin only.
func (s *SubscriberAPI) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.service.Unsubscribe(middleware.ClaimsFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscription deleted successfully"})
}
