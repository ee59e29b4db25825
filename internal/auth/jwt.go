package auth

import (
	"errors"
	"fmt"
	"time"

	"community_portal/config"
	"community_portal/internal/apperr"
	"community_portal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed identity carried by every bearer token.
type Claims struct {
	UserID uint64     `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token for the user with the configured expiry.
func GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.GlobalConfig.JWT.Expire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GlobalConfig.JWT.Secret))
}

// ParseToken validates signature and expiry. Any failure, expiry included,
// comes back as apperr.ErrInvalidCredential so callers answer 403; the missing
// 401 case is decided earlier, at the Authorization header.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GlobalConfig.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidCredential, err)
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidCredential, errors.New("invalid token"))
}
