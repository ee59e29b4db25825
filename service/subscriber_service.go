package service

import (
	"fmt"

	"community_portal/dao"
	"community_portal/internal/apperr"
	"community_portal/internal/auth"
	"community_portal/internal/authz"
	"community_portal/model"
	"community_portal/utils"
)

// SubscriberService is the subscription registry: it owns the canonical-phone
// invariant and the conflict semantics, while the unique index in the store
// closes the check-then-insert race.
type SubscriberService struct {
	subs *dao.SubscriberDAO
}

func NewSubscriberService(subs *dao.SubscriberDAO) *SubscriberService {
	return &SubscriberService{subs: subs}
}

// Subscribe registers a contact. The phone may arrive in local ten-digit form;
// it is stored with the country code prepended. A phone that is already
// subscribed fails with apperr.ErrConflict.
func (s *SubscriberService) Subscribe(phone, email string) (*model.Subscriber, error) {
	canonical, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	sub := &model.Subscriber{PhoneNumber: canonical, Email: email}
	if err := s.subs.CreateSubscriber(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns the full subscriber set. Admin only.
func (s *SubscriberService) List(actor *auth.Claims) ([]model.Subscriber, error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionManageSubscribers) {
		return nil, fmt.Errorf("%w: only admins can view subscriptions", apperr.ErrForbidden)
	}
	return s.subs.List()
}

// Update changes a subscription's phone and email. Admin only.
func (s *SubscriberService) Update(actor *auth.Claims, id uint64, phone, email string) (*model.Subscriber, error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionManageSubscribers) {
		return nil, fmt.Errorf("%w: only admins can update subscriptions", apperr.ErrForbidden)
	}
	canonical, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	sub, err := s.subs.GetByID(id)
	if err != nil {
		return nil, err
	}
	sub.PhoneNumber = canonical
	sub.Email = email
	if err := s.subs.UpdateSubscriber(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe deletes a subscription. Admin only.
func (s *SubscriberService) Unsubscribe(actor *auth.Claims, id uint64) error {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionManageSubscribers) {
		return fmt.Errorf("%w: only admins can delete subscriptions", apperr.ErrForbidden)
	}
	return s.subs.DeleteSubscriber(id)
}
