package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
)

const tokenIssuer = "gym-api"

var (
	signingKey = []byte("change-me-in-production")
	tokenTTL   = 24 * time.Hour

	errTokenSubject = errors.New("token has no user id")
)

// Claims identify the member or admin a session token was issued to.
type Claims struct {
	UserID uuid.UUID       `json:"userID"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func ConfigureJWT(secret string, expirationHours int) {
	if secret != "" {
		signingKey = []byte(secret)
	}
	if expirationHours > 0 {
		tokenTTL = time.Duration(expirationHours) * time.Hour
	}
}

func GenerateToken(user *models.User) (string, error) {
	issuedAt := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

// ValidateToken accepts only HS256 tokens from this issuer that carry an expiry.
// Role claims are decoded through models.UserRole, so unknown roles fail here.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.UserID == uuid.Nil {
		return nil, errTokenSubject
	}
	return claims, nil
}
