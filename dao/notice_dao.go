package dao

import (
	"community_portal/model"

	"gorm.io/gorm"
)

type NoticeDAO struct {
	db *gorm.DB
}

func NewNoticeDAO(db *gorm.DB) *NoticeDAO {
	return &NoticeDAO{db: db}
}

func (dao *NoticeDAO) CreateNotice(notice *model.Notice) error {
	return translate(dao.db.Create(notice).Error)
}

func (dao *NoticeDAO) GetByID(id uint64) (*model.Notice, error) {
	var notice model.Notice
	if err := dao.db.First(&notice, id).Error; err != nil {
		return nil, translate(err)
	}
	return &notice, nil
}

// List returns notices newest first.
func (dao *NoticeDAO) List() ([]model.Notice, error) {
	var notices []model.Notice
	if err := dao.db.Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, translate(err)
	}
	return notices, nil
}

func (dao *NoticeDAO) UpdateNotice(notice *model.Notice) error {
	return translate(dao.db.Save(notice).Error)
}

func (dao *NoticeDAO) DeleteNotice(id uint64) error {
	res := dao.db.Delete(&model.Notice{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
