package service

import (
	"errors"
	"fmt"

	"community_portal/dao"
	"community_portal/internal/apperr"
	"community_portal/internal/auth"
	"community_portal/internal/authz"
	"community_portal/model"
)

type PostService struct {
	posts *dao.PostDAO
	users *dao.UserDAO
}

func NewPostService(posts *dao.PostDAO, users *dao.UserDAO) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create publishes a post authored by the actor. The author reference is taken
// from the verified token, then re-checked against the store: a token can
// outlive its account.
func (s *PostService) Create(actor *auth.Claims, post *model.Post) error {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionCreatePost) {
		return fmt.Errorf("%w: role %q cannot create posts", apperr.ErrForbidden, actor.Role)
	}
	if _, err := s.users.GetByID(actor.UserID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("%w: author account no longer exists", apperr.ErrValidation)
		}
		return err
	}
	post.AuthorID = actor.UserID
	return s.posts.CreatePost(post)
}

// List returns posts newest first. The list itself is public; filtering by
// author is restricted to that author, admins and editors.
func (s *PostService) List(actor *auth.Claims, authorID uint64) ([]model.Post, error) {
	if authorID != 0 {
		if actor == nil {
			return nil, fmt.Errorf("%w: author filter requires authentication", apperr.ErrUnauthenticated)
		}
		if actor.UserID != authorID && !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionViewUsers) {
			return nil, fmt.Errorf("%w: you can only view your own posts", apperr.ErrForbidden)
		}
	}
	return s.posts.List(authorID)
}

func (s *PostService) Get(id uint64) (*model.Post, error) {
	return s.posts.GetByID(id)
}

// PostUpdate carries the mutable post fields; nil means leave unchanged.
type PostUpdate struct {
	Title    *string
	Content  *string
	Images   *[]string
	Featured *bool
}

// Update mutates a post. Allowed for admins, editors and the owning author.
func (s *PostService) Update(actor *auth.Claims, id uint64, upd PostUpdate) (*model.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !authz.Authorize(actor.Role, actor.UserID, post.AuthorID, authz.ActionUpdatePost) {
		return nil, fmt.Errorf("%w: you cannot update this post", apperr.ErrForbidden)
	}

	if upd.Title != nil {
		post.Title = *upd.Title
	}
	if upd.Content != nil {
		post.Content = *upd.Content
	}
	if upd.Images != nil {
		post.Images = *upd.Images
	}
	if upd.Featured != nil {
		post.Featured = *upd.Featured
	}
	if err := s.posts.UpdatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Allowed for admins, editors and the owning author.
func (s *PostService) Delete(actor *auth.Claims, id uint64) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if !authz.Authorize(actor.Role, actor.UserID, post.AuthorID, authz.ActionDeletePost) {
		return fmt.Errorf("%w: you cannot delete this post", apperr.ErrForbidden)
	}
	return s.posts.DeletePost(id)
}

// Comment appends a comment to a post. Comments are append-only.
func (s *PostService) Comment(actor *auth.Claims, postID uint64, body string) (*model.Comment, error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionComment) {
		return nil, fmt.Errorf("%w: role %q cannot comment", apperr.ErrForbidden, actor.Role)
	}
	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, err
	}
	comment := &model.Comment{PostID: postID, UserID: actor.UserID, Body: body}
	if err := s.posts.AddComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleLike likes the post, or removes an existing like, and returns the
// resulting state with the new like count.
func (s *PostService) ToggleLike(actor *auth.Claims, postID uint64) (liked bool, count int64, err error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionLike) {
		return false, 0, fmt.Errorf("%w: role %q cannot like posts", apperr.ErrForbidden, actor.Role)
	}
	if _, err := s.posts.GetByID(postID); err != nil {
		return false, 0, err
	}
	return s.posts.ToggleLike(postID, actor.UserID)
}
