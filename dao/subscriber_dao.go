package dao

import (
	"community_portal/model"

	"gorm.io/gorm"
)

type SubscriberDAO struct {
	db *gorm.DB
}

func NewSubscriberDAO(db *gorm.DB) *SubscriberDAO {
	return &SubscriberDAO{db: db}
}

// CreateSubscriber inserts a new contact. A duplicate phone number surfaces as
// apperr.ErrConflict so callers can tell "already subscribed" from a real
// store failure.
func (dao *SubscriberDAO) CreateSubscriber(sub *model.Subscriber) error {
	return translate(dao.db.Create(sub).Error)
}

func (dao *SubscriberDAO) GetByID(id uint64) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := dao.db.First(&sub, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

// List returns all subscribers, newest first.
func (dao *SubscriberDAO) List() ([]model.Subscriber, error) {
	var subs []model.Subscriber
	if err := dao.db.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, translate(err)
	}
	return subs, nil
}

// ListSubscribers satisfies notify.SubscriberSource.
func (dao *SubscriberDAO) ListSubscribers() ([]model.Subscriber, error) {
	return dao.List()
}

func (dao *SubscriberDAO) UpdateSubscriber(sub *model.Subscriber) error {
	return translate(dao.db.Save(sub).Error)
}

func (dao *SubscriberDAO) DeleteSubscriber(id uint64) error {
	res := dao.db.Delete(&model.Subscriber{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
