// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"inggrisku_backend/internals/configs"
	userModel "inggrisku_backend/internals/features/users/auth/model"
)

const AccessTokenTTL = 2 * time.Hour

// IssueAccessToken membuat JWT access token untuk user.
// Claim: sub = user id, user_name untuk display di client.
func IssueAccessToken(user userModel.UserModel) (string, int64, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", 0, errors.New("JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(AccessTokenTTL.Seconds()), nil
}
