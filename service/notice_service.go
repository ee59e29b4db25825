package service

import (
	"fmt"
	"log"

	"community_portal/dao"
	"community_portal/internal/apperr"
	"community_portal/internal/auth"
	"community_portal/internal/authz"
	"community_portal/internal/notify"
	"community_portal/model"
)

type NoticeService struct {
	notices    *dao.NoticeDAO
	dispatcher *notify.Dispatcher
}

func NewNoticeService(notices *dao.NoticeDAO, dispatcher *notify.Dispatcher) *NoticeService {
	return &NoticeService{notices: notices, dispatcher: dispatcher}
}

// Create persists a notice and then fans out the subscriber alert. Admin only.
// Dispatch runs strictly after the row is committed and its outcome does not
// affect the returned error: the write is the source of truth, delivery is
// best-effort.
func (s *NoticeService) Create(actor *auth.Claims, notice *model.Notice) error {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionCreateNotice) {
		return fmt.Errorf("%w: only admins can create notices", apperr.ErrForbidden)
	}
	if err := s.notices.CreateNotice(notice); err != nil {
		return err
	}

	report := s.dispatcher.NoticeCreated(notice)
	if report.Sent {
		log.Printf("notice %d: alert sent to %d subscribers", notice.ID, report.Recipients)
	}
	return nil
}

// List returns notices newest first. Public.
func (s *NoticeService) List() ([]model.Notice, error) {
	return s.notices.List()
}

func (s *NoticeService) Get(id uint64) (*model.Notice, error) {
	return s.notices.GetByID(id)
}

// NoticeUpdate carries the mutable notice fields; nil means leave unchanged.
type NoticeUpdate struct {
	Title *string
	Image *string
}

// Update mutates a notice. Admin only; no re-dispatch on update.
func (s *NoticeService) Update(actor *auth.Claims, id uint64, upd NoticeUpdate) (*model.Notice, error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionUpdateNotice) {
		return nil, fmt.Errorf("%w: only admins can update notices", apperr.ErrForbidden)
	}
	notice, err := s.notices.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyNoticeUpdate(notice, upd)
	if err := s.notices.UpdateNotice(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func applyNoticeUpdate(notice *model.Notice, upd NoticeUpdate) {
	if upd.Title != nil {
		notice.Title = *upd.Title
	}
	if upd.Image != nil {
		notice.Image = *upd.Image
	}
}

// Delete removes a notice. Admin only.
func (s *NoticeService) Delete(actor *auth.Claims, id uint64) error {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionDeleteNotice) {
		return fmt.Errorf("%w: only admins can delete notices", apperr.ErrForbidden)
	}
	return s.notices.DeleteNotice(id)
}
