package service

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"community_portal/config"
	"community_portal/dao"
	"community_portal/internal/apperr"
	"community_portal/internal/auth"
	"community_portal/internal/authz"
	"community_portal/internal/mail"
	"community_portal/internal/metrics"
	"community_portal/model"
	"community_portal/utils"
)

// OTPStore is the reset-code storage the password-reset flow runs against.
type OTPStore interface {
	SaveResetCode(email, code string, ttl time.Duration) error
	GetResetCode(email string) (string, error)
	DeleteResetCode(email string) error
	FailResetAttempt(email string, ttl time.Duration) (int64, error)
}

// maxResetAttempts caps wrong-code guesses per issued code; hitting the cap
// consumes the code so a six-digit code cannot be brute-forced within its TTL.
const maxResetAttempts = 5

// UserService bundles identity storage, the subscription registry and the
// password-reset flow.
type UserService struct {
	users  *dao.UserDAO
	subs   *SubscriberService
	otp    OTPStore
	sender mail.Sender
}

func NewUserService(users *dao.UserDAO, subs *SubscriberService, otp OTPStore, sender mail.Sender) *UserService {
	return &UserService{users: users, subs: subs, otp: otp, sender: sender}
}

// Register persists a new user and best-effort enrolls their phone as a notice
// subscriber. The registration is a two-step saga: the subscribe step may fail
// (typically Conflict, the phone is already on the list) and that failure is
// logged and counted but never rolls back or fails the user creation.
func (s *UserService) Register(user *model.User) error {
	canonical, err := utils.NormalizePhone(user.Phone)
	if err != nil {
		return err
	}
	user.Phone = canonical

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	if user.Role == "" {
		user.Role = model.RoleUser
	}

	if err := s.users.CreateUser(user); err != nil {
		return err
	}

	if _, err := s.subs.Subscribe(user.Phone, user.Email); err != nil {
		log.Printf("register: implicit subscribe failed for user %d: %v", user.ID, err)
		metrics.IncSubscribe("registration", "error")
	} else {
		metrics.IncSubscribe("registration", "success")
	}
	return nil
}

// Login authenticates by email and password and issues a bearer token. The
// unknown-email and wrong-password cases share one message.
func (s *UserService) Login(email, password string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *UserService) ChangePassword(userID uint64, current, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return fmt.Errorf("%w: current password does not match", apperr.ErrValidation)
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.users.UpdateUser(user)
}

// ForgotPassword issues a six-digit one-time code, stores it in Redis with the
// configured TTL and emails it to the account address.
func (s *UserService) ForgotPassword(email string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}
	ttl := time.Duration(config.GlobalConfig.OTP.Expire) * time.Second
	if err := s.otp.SaveResetCode(user.Email, code, ttl); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}

	body := fmt.Sprintf("You are receiving this because a password reset was requested for your account.\n\nYour one-time code is: %s\n\nIf you did not request this, ignore this email and your password will remain unchanged.", code)
	return s.sender.Send([]string{user.Email}, "Password Reset Code", body)
}

// ResetPassword consumes a one-time code and sets the new password. Wrong email
// and wrong code produce the same validation error, and repeated wrong codes
// consume the stored one once maxResetAttempts is reached.
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	stored, err := s.otp.GetResetCode(email)
	if err != nil {
		return err
	}
	if stored != code {
		ttl := time.Duration(config.GlobalConfig.OTP.Expire) * time.Second
		if attempts, err := s.otp.FailResetAttempt(email, ttl); err == nil && attempts >= maxResetAttempts {
			_ = s.otp.DeleteResetCode(email)
		}
		return fmt.Errorf("%w: invalid or expired code", apperr.ErrValidation)
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := s.users.UpdateUser(user); err != nil {
		return err
	}
	_ = s.otp.DeleteResetCode(email)
	return nil
}

// Get returns a user by id; admins and editors only.
func (s *UserService) Get(actor *auth.Claims, id uint64) (*model.User, error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionViewUsers) {
		return nil, fmt.Errorf("%w: only admins and editors can view user details", apperr.ErrForbidden)
	}
	return s.users.GetByID(id)
}

// Me returns the caller's own record.
func (s *UserService) Me(actor *auth.Claims) (*model.User, error) {
	return s.users.GetByID(actor.UserID)
}

// List returns all users; admins and editors only.
func (s *UserService) List(actor *auth.Claims) ([]model.User, error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionViewUsers) {
		return nil, fmt.Errorf("%w: only admins and editors can view users", apperr.ErrForbidden)
	}
	return s.users.List()
}

// UserUpdate carries the mutable user fields; nil means leave unchanged.
type UserUpdate struct {
	Username *string
	Email    *string
	Phone    *string
	Password *string
	Role     *model.Role
}

// Update mutates a user record; admin only. A supplied password is re-hashed
// and a supplied phone re-validated before anything is written.
func (s *UserService) Update(actor *auth.Claims, id uint64, upd UserUpdate) (*model.User, error) {
	if !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionManageUsers) {
		return nil, fmt.Errorf("%w: only admins can update users", apperr.ErrForbidden)
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Phone != nil {
		canonical, err := utils.NormalizePhone(*upd.Phone)
		if err != nil {
			return nil, err
		}
		user.Phone = canonical
	}
	if upd.Password != nil {
		hashed, err := utils.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if upd.Role != nil {
		switch *upd.Role {
		case model.RoleUser, model.RoleEditor, model.RoleAdmin:
			user.Role = *upd.Role
		default:
			return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, *upd.Role)
		}
	}
	if err := s.users.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user; admin, or the user themselves.
func (s *UserService) Delete(actor *auth.Claims, id uint64) error {
	if actor.UserID != id && !authz.Authorize(actor.Role, actor.UserID, 0, authz.ActionManageUsers) {
		return fmt.Errorf("%w: only admins can delete other users", apperr.ErrForbidden)
	}
	return s.users.DeleteUser(id)
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
