package dao

import (
	"community_portal/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO creates a new UserDAO instance.
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser inserts a new user. Duplicate email or username surfaces as
// apperr.ErrConflict; the insert is a single statement, so no partial record
// can remain on failure.
func (dao *UserDAO) CreateUser(user *model.User) error {
	return translate(dao.db.Create(user).Error)
}

// GetByID fetches a user by primary key.
func (dao *UserDAO) GetByID(id uint64) (*model.User, error) {
	var user model.User
	if err := dao.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByEmail fetches a user by unique email.
func (dao *UserDAO) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := dao.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByUsername fetches a user by unique username.
func (dao *UserDAO) GetByUsername(username string) (*model.User, error) {
	var user model.User
	if err := dao.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// List returns all users, newest first.
func (dao *UserDAO) List() ([]model.User, error) {
	var users []model.User
	if err := dao.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// UpdateUser persists changed fields of an existing user.
func (dao *UserDAO) UpdateUser(user *model.User) error {
	return translate(dao.db.Save(user).Error)
}

// DeleteUser removes a user by id. Comments and likes authored by the user are
// left in place; their author references dangle by design.
func (dao *UserDAO) DeleteUser(id uint64) error {
	res := dao.db.Delete(&model.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
