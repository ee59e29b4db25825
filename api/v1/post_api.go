package v1

import (
	"net/http"
	"strconv"

	"community_portal/api/v1/request"
	"community_portal/internal/apperr"
	"community_portal/internal/auth"
	"community_portal/middleware"
	"community_portal/model"
	"community_portal/service"

	"github.com/gin-gonic/gin"
)

// PostAPI exposes the post CRUD plus the comment and like sub-resources.
type PostAPI struct {
	service *service.PostService
}

func NewPostAPI(s *service.PostService) *PostAPI {
	return &PostAPI{service: s}
}

// Create publishes a new post authored by the caller.
func (p *PostAPI) Create(c *gin.Context) {
	var req request.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post := &model.Post{
		Title:    req.Title,
		Content:  req.Content,
		Images:   req.Images,
		Featured: req.Featured,
	}
	if err := p.service.Create(middleware.ClaimsFrom(c), post); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "post created successfully", "post": post})
}

// List returns posts newest first. Public unless the author filter is set, in
// which case a bearer token is required and checked.
func (p *PostAPI) List(c *gin.Context) {
	var authorID uint64
	if raw := c.Query("author"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, apperr.ErrValidation)
			return
		}
		authorID = parsed
	}

	// The auth middleware is not on this route; decode the token here only
	// when the author filter makes the request role-gated.
	var claims *auth.Claims
	if authorID != 0 {
		header := c.GetHeader("Authorization")
		if len(header) > 7 && header[:7] == "Bearer " {
			parsed, err := auth.ParseToken(header[7:])
			if err != nil {
				respondError(c, err)
				return
			}
			claims = parsed
		}
	}

	posts, err := p.service.List(claims, authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get returns one post with its comments and likes.
func (p *PostAPI) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	post, err := p.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update mutates a post. Admin, editor or owning author.
func (p *PostAPI) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := p.service.Update(middleware.ClaimsFrom(c), id, service.PostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Images:   req.Images,
		Featured: req.Featured,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated successfully", "post": post})
}

// Delete removes a post. Admin, editor or owning author.
func (p *PostAPI) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := p.service.Delete(middleware.ClaimsFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// Comment appends a comment to a post.
func (p *PostAPI) Comment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req request.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := p.service.Comment(middleware.ClaimsFrom(c), id, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "comment added successfully", "comment": comment})
}

// Like toggles the caller's like on a post.
func (p *PostAPI) Like(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	liked, count, err := p.service.ToggleLike(middleware.ClaimsFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	message := "post unliked successfully"
	if liked {
		status = http.StatusCreated
		message = "post liked successfully"
	}
	c.JSON(status, gin.H{"message": message, "likes_count": count})
}
