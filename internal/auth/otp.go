package auth

import (
	"context"
	"fmt"
	"time"

	"community_portal/internal/apperr"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// OTPStore keeps one-time password-reset codes in Redis, keyed by email and
// expired by TTL so consumed or stale codes never linger.
type OTPStore struct {
	rdb *redis.Client
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{rdb: rdb}
}

// SaveResetCode stores the code for the email, replacing any previous one and
// clearing the wrong-attempt counter.
func (s *OTPStore) SaveResetCode(email, code string, ttl time.Duration) error {
	key := fmt.Sprintf("cp:otp:%s", email)
	if err := s.rdb.Set(ctx, key, code, ttl).Err(); err != nil {
		return err
	}
	return s.rdb.Del(ctx, failKey(email)).Err()
}

// GetResetCode fetches the live code for an email. A missing key maps to
// apperr.ErrValidation: expired and never-issued are indistinguishable on
// purpose, so the endpoint cannot be used to enumerate registered emails.
func (s *OTPStore) GetResetCode(email string) (string, error) {
	key := fmt.Sprintf("cp:otp:%s", email)
	code, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w: invalid or expired code", apperr.ErrValidation)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}
	return code, nil
}

// DeleteResetCode consumes a code, along with its attempt counter.
func (s *OTPStore) DeleteResetCode(email string) error {
	key := fmt.Sprintf("cp:otp:%s", email)
	return s.rdb.Del(ctx, key, failKey(email)).Err()
}

// FailResetAttempt records a wrong-code attempt and returns the running count.
// The counter shares the code's TTL so it cannot outlive the code.
func (s *OTPStore) FailResetAttempt(email string, ttl time.Duration) (int64, error) {
	count, err := s.rdb.Incr(ctx, failKey(email)).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = s.rdb.Expire(ctx, failKey(email), ttl).Err()
	}
	return count, nil
}

func failKey(email string) string {
	return fmt.Sprintf("cp:otp:fail:%s", email)
}
