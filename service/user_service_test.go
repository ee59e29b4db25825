package service

import (
	"fmt"
	"testing"
	"time"

	"community_portal/config"
	"community_portal/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOTPStore mimics the Redis-backed store in memory so the reset flow can
// be exercised without a running Redis.
type fakeOTPStore struct {
	code     string
	failures int64
	deleted  bool
}

func (f *fakeOTPStore) SaveResetCode(email, code string, ttl time.Duration) error {
	f.code = code
	f.failures = 0
	f.deleted = false
	return nil
}

func (f *fakeOTPStore) GetResetCode(email string) (string, error) {
	if f.deleted {
		return "", fmt.Errorf("%w: invalid or expired code", apperr.ErrValidation)
	}
	return f.code, nil
}

func (f *fakeOTPStore) DeleteResetCode(email string) error {
	f.deleted = true
	return nil
}

func (f *fakeOTPStore) FailResetAttempt(email string, ttl time.Duration) (int64, error) {
	f.failures++
	return f.failures, nil
}

func TestResetPasswordWrongCodeConsumedAfterLimit(t *testing.T) {
	config.GlobalConfig = &config.Config{OTP: config.OTPConfig{Expire: 3600}}
	store := &fakeOTPStore{}
	require.NoError(t, store.SaveResetCode("amira@example.com", "123456", time.Hour))
	svc := NewUserService(nil, nil, store, nil)

	for i := 0; i < maxResetAttempts-1; i++ {
		err := svc.ResetPassword("amira@example.com", "000000", "NewPassw0rd!")
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.False(t, store.deleted, "code must survive attempt %d", i+1)
	}

	err := svc.ResetPassword("amira@example.com", "000000", "NewPassw0rd!")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.True(t, store.deleted, "code must be consumed at the attempt cap")

	// Even the right code is rejected once the cap consumed it.
	err = svc.ResetPassword("amira@example.com", "123456", "NewPassw0rd!")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestResetPasswordWrongCodeKeptBelowLimit(t *testing.T) {
	config.GlobalConfig = &config.Config{OTP: config.OTPConfig{Expire: 3600}}
	store := &fakeOTPStore{}
	require.NoError(t, store.SaveResetCode("amira@example.com", "123456", time.Hour))
	svc := NewUserService(nil, nil, store, nil)

	err := svc.ResetPassword("amira@example.com", "654321", "NewPassw0rd!")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.False(t, store.deleted)
	assert.EqualValues(t, 1, store.failures)
}
