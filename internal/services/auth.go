package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Age             *int
	Height          *float64
	Weight          *float64
}

type AuthResult struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// Register creates a member account. The role is never taken from input.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Password != in.ConfirmPassword {
		return nil, &Error{Kind: KindPasswordMismatch, Message: "passwords do not match"}
	}

	email := NormalizeEmail(in.Email)
	taken, err := emailTaken(ctx, s.DB, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errDuplicateEmail()
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		Role:         models.UserRoleMember,
		Age:          in.Age,
		Height:       in.Height,
		Weight:       in.Weight,
		BMI:          utils.CalculateBMI(in.Height, in.Weight),
		JoinDate:     utils.NowISO(),
	}

	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, duplicateEmailOr(ctx, s.DB, uuid.Nil, email, fmt.Errorf("create user: %w", err))
	}

	logger.InfoWithUser(user.ID.String(), "user_registered", map[string]interface{}{
		"email": user.Email,
	})

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := findUser(ctx, s.DB, "email = ?", NormalizeEmail(email))
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, &Error{Kind: KindInvalidCredentials, Message: "invalid email or password"}
		}
		return nil, err
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, &Error{Kind: KindInvalidCredentials, Message: "invalid email or password"}
	}

	return s.issue(user)
}

// Authenticate resolves a bearer token to the current user row. A token for a
// deleted account is treated like a missing token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil, &Error{Kind: KindUnauthenticated, Message: "invalid or expired token"}
	}

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, &Error{Kind: KindUnauthenticated, Message: "user not found"}
	}
	return &user, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
