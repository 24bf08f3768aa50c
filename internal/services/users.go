package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type UserFilter struct {
	Role   models.UserRole
	Search string
}

// UserUpdate carries only the fields present in a PATCH body.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.UserRole
	Age      *int
	Height   *float64
	Weight   *float64
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) List(ctx context.Context, filter UserFilter, page utils.PaginationParams) ([]models.User, int64, error) {
	query := s.DB.WithContext(ctx).Model(&models.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var users []models.User
	if err := page.Scope(query.Order("created_at DESC")).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return findUser(ctx, s.DB, "id = ?", id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return findUser(ctx, s.DB, "email = ?", NormalizeEmail(email))
}

// Update applies the provided fields. Only admins may change roles, and BMI is
// recomputed whenever height or weight is part of the update.
func (s *UserService) Update(ctx context.Context, actor *models.User, id uuid.UUID, upd UserUpdate) (*models.User, error) {
	var hash string
	if upd.Password != nil {
		var err error
		if hash, err = utils.HashPassword(*upd.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	var user *models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = findUser(ctx, tx, "id = ?", id)
		if err != nil {
			return err
		}

		if upd.Role != nil && *upd.Role != user.Role {
			if !actor.IsAdmin() {
				return Forbidden("only admins can change roles")
			}
			if !upd.Role.IsValid() {
				return InvalidRole("unknown role %q", *upd.Role)
			}
			if err := ensureRoleChangeAllowed(ctx, tx, user); err != nil {
				return err
			}
			user.Role = *upd.Role
		}

		if upd.Email != nil {
			email := NormalizeEmail(*upd.Email)
			if email != user.Email {
				taken, err := emailTaken(ctx, tx, email)
				if err != nil {
					return err
				}
				if taken {
					return errDuplicateEmail()
				}
				user.Email = email
			}
		}

		if hash != "" {
			user.PasswordHash = hash
		}
		if upd.Name != nil {
			user.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Age != nil {
			user.Age = upd.Age
		}
		if upd.Height != nil || upd.Weight != nil {
			if upd.Height != nil {
				user.Height = upd.Height
			}
			if upd.Weight != nil {
				user.Weight = upd.Weight
			}
			user.BMI = utils.CalculateBMI(user.Height, user.Weight)
		}

		return tx.Save(user).Error
	})
	if err != nil {
		if KindOf(err) != "" {
			return nil, err
		}
		if upd.Email != nil {
			return nil, duplicateEmailOr(ctx, s.DB, id, NormalizeEmail(*upd.Email), fmt.Errorf("update user: %w", err))
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	logger.InfoWithUser(actor.ID.String(), "user_updated", map[string]interface{}{
		"target_user_id": user.ID.String(),
	})
	return user, nil
}

// ensureRoleChangeAllowed keeps ownership consistent: workouts belong to members
// and events to admins, so a user holding either cannot leave that role.
func ensureRoleChangeAllowed(ctx context.Context, tx *gorm.DB, user *models.User) error {
	switch {
	case user.IsAdmin():
		if err := ensureOtherAdmin(ctx, tx, user.ID); err != nil {
			return err
		}
		var events int64
		if err := tx.Model(&models.Event{}).Where("created_by = ?", user.ID).Count(&events).Error; err != nil {
			return err
		}
		if events > 0 {
			return Conflict("user created %d event(s); reassign or delete them before changing role", events)
		}
	case user.IsMember():
		var workouts int64
		if err := tx.Model(&models.Workout{}).Where("user_id = ?", user.ID).Count(&workouts).Error; err != nil {
			return err
		}
		if workouts > 0 {
			return Conflict("user owns %d workout(s); reassign or delete them before changing role", workouts)
		}
	}
	return nil
}

func errDuplicateEmail() *Error {
	return &Error{Kind: KindDuplicateEmail, Message: "email is already registered"}
}

// duplicateEmailOr reports DUPLICATE_EMAIL for a failed write of userID when
// another user holds email by now, i.e. a concurrent request claimed it after
// the pre-check. userID is uuid.Nil for rows that were never inserted.
func duplicateEmailOr(ctx context.Context, db *gorm.DB, userID uuid.UUID, email string, err error) error {
	var count int64
	checkErr := db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	if checkErr == nil && count > 0 {
		return errDuplicateEmail()
	}
	return err
}

// Delete removes a user together with their workouts and progress snapshots.
// Authors of events and the last remaining admin cannot be deleted.
func (s *UserService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("user not found")
			}
			return err
		}

		if user.IsAdmin() {
			if err := ensureOtherAdmin(ctx, tx, user.ID); err != nil {
				return err
			}
		}

		var events int64
		if err := tx.Model(&models.Event{}).Where("created_by = ?", user.ID).Count(&events).Error; err != nil {
			return err
		}
		if events > 0 {
			return Conflict("user created %d event(s); reassign or delete them first", events)
		}

		if err := tx.Where("trainee_id = ?", user.ID).Delete(&models.TraineeProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Workout{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		if KindOf(err) != "" {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}

	logger.InfoWithUser(actor.ID.String(), "user_deleted", map[string]interface{}{
		"target_user_id": id.String(),
	})
	return nil
}

func findUser(ctx context.Context, db *gorm.DB, query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// requireMember loads a user that is about to own a workout or a progress figure.
func requireMember(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.User, error) {
	user, err := findUser(ctx, db, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if !user.IsMember() {
		return nil, InvalidRole("user %s is not a member", id)
	}
	return user, nil
}

func emailTaken(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

func ensureOtherAdmin(ctx context.Context, db *gorm.DB, adminID uuid.UUID) error {
	var others int64
	if err := db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND id <> ?", models.UserRoleAdmin, adminID).
		Count(&others).Error; err != nil {
		return err
	}
	if others == 0 {
		return Conflict("cannot remove the last admin")
	}
	return nil
}
