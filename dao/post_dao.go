package dao

import (
	"community_portal/model"

	"gorm.io/gorm"
)

type PostDAO struct {
	db *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

// CreatePost inserts a new post.
func (dao *PostDAO) CreatePost(post *model.Post) error {
	return translate(dao.db.Create(post).Error)
}

// GetByID fetches a post with its author, comments and likes.
func (dao *PostDAO) GetByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := dao.db.Preload("Author").Preload("Comments").Preload("Likes").First(&post, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// List returns posts newest first, optionally filtered by author.
func (dao *PostDAO) List(authorID uint64) ([]model.Post, error) {
	q := dao.db.Preload("Author").Preload("Comments").Preload("Likes").Order("created_at DESC")
	if authorID != 0 {
		q = q.Where("author_id = ?", authorID)
	}
	var posts []model.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

// UpdatePost persists changed fields of an existing post.
func (dao *PostDAO) UpdatePost(post *model.Post) error {
	return translate(dao.db.Save(post).Error)
}

// DeletePost removes a post and its embedded comments and likes.
func (dao *PostDAO) DeletePost(id uint64) error {
	return translate(dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}))
}

// AddComment appends a comment as a single row insert. This is the atomic
// append primitive: two comments arriving together both land, no
// read-modify-write of the post.
func (dao *PostDAO) AddComment(comment *model.Comment) error {
	return translate(dao.db.Create(comment).Error)
}

// ToggleLike likes the post for the user, or removes the like if one exists.
// The insert races against the unique (post_id, user_id) index rather than a
// prior read, so concurrent toggles by the same user cannot duplicate a like.
// Returns whether the post is liked after the call and the new like count.
func (dao *PostDAO) ToggleLike(postID, userID uint64) (liked bool, count int64, err error) {
	like := model.Like{PostID: postID, UserID: userID}
	createErr := dao.db.Create(&like).Error
	switch {
	case createErr == nil:
		liked = true
	case isDuplicate(createErr):
		// Already liked: toggle off.
		if err := dao.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.Like{}).Error; err != nil {
			return false, 0, translate(err)
		}
		liked = false
	default:
		return false, 0, translate(createErr)
	}

	if err := dao.db.Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return liked, 0, translate(err)
	}
	return liked, count, nil
}
