package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"gorm.io/gorm"
)

// SnapshotRecorder is notified after a workout's completion state changes.
type SnapshotRecorder interface {
	RecordAsync(traineeID uuid.UUID)
}

type WorkoutService struct {
	DB        *gorm.DB
	Snapshots SnapshotRecorder
}

func NewWorkoutService(db *gorm.DB, snapshots SnapshotRecorder) *WorkoutService {
	return &WorkoutService{DB: db, Snapshots: snapshots}
}

type WorkoutInput struct {
	EventTitle  string
	Sets        int
	RepsOrSecs  int
	RestTime    int
	ImageURI    *string
	IsCompleted bool
}

// WorkoutUpdate carries only the fields present in a PATCH body. Version, when
// set, must match the stored row or the update is rejected.
type WorkoutUpdate struct {
	EventTitle  *string
	Sets        *int
	RepsOrSecs  *int
	RestTime    *int
	ImageURI    *string
	IsCompleted *bool
	UserID      *uuid.UUID
	Version     *int
}

type WorkoutStats struct {
	TotalWorkouts     int64 `json:"totalWorkouts"`
	CompletedWorkouts int64 `json:"completedWorkouts"`
	CompletionRate    int   `json:"completionRate"`
}

func (s *WorkoutService) Create(ctx context.Context, actor *models.User, in WorkoutInput, userID uuid.UUID) (*models.Workout, error) {
	if _, err := requireMember(ctx, s.DB, userID); err != nil {
		return nil, err
	}

	workout := &models.Workout{
		EventTitle:  strings.TrimSpace(in.EventTitle),
		Sets:        in.Sets,
		RepsOrSecs:  in.RepsOrSecs,
		RestTime:    in.RestTime,
		ImageURI:    in.ImageURI,
		IsCompleted: in.IsCompleted,
		UserID:      userID,
		Version:     1,
	}
	if err := s.DB.WithContext(ctx).Create(workout).Error; err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	logger.InfoWithUser(actor.ID.String(), "workout_created", map[string]interface{}{
		"workout_id": workout.ID.String(),
		"owner_id":   userID.String(),
	})
	return workout, nil
}

func (s *WorkoutService) List(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&workouts).Error; err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *WorkoutService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Workout, error) {
	if _, err := requireMember(ctx, s.DB, userID); err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workouts).Error; err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *WorkoutService) Get(ctx context.Context, id uuid.UUID) (*models.Workout, error) {
	var workout models.Workout
	if err := s.DB.WithContext(ctx).First(&workout, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("workout not found")
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return &workout, nil
}

// Update applies the provided fields. Patching imageUri to a new value detaches
// the uploaded object; its key is returned so the caller can release it.
func (s *WorkoutService) Update(ctx context.Context, actor *models.User, id uuid.UUID, upd WorkoutUpdate) (*models.Workout, *string, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if upd.Version != nil && *upd.Version != current.Version {
		return nil, nil, staleVersion(current.Version)
	}

	changes := map[string]interface{}{}
	if upd.EventTitle != nil {
		changes["event_title"] = strings.TrimSpace(*upd.EventTitle)
	}
	if upd.Sets != nil {
		changes["sets"] = *upd.Sets
	}
	if upd.RepsOrSecs != nil {
		changes["reps_or_secs"] = *upd.RepsOrSecs
	}
	if upd.RestTime != nil {
		changes["rest_time"] = *upd.RestTime
	}
	var released *string
	if upd.ImageURI != nil && !sameString(current.ImageURI, *upd.ImageURI) {
		changes["image_uri"] = *upd.ImageURI
		changes["image_key"] = nil
		released = current.ImageKey
	}
	if upd.IsCompleted != nil {
		changes["is_completed"] = *upd.IsCompleted
	}
	if upd.UserID != nil && *upd.UserID != current.UserID {
		if _, err := requireMember(ctx, s.DB, *upd.UserID); err != nil {
			return nil, nil, err
		}
		changes["user_id"] = *upd.UserID
	}

	if len(changes) == 0 {
		return current, nil, nil
	}

	_, completionChanged := changes["is_completed"]
	_, ownerChanged := changes["user_id"]
	fields := len(changes)

	if err := s.applyVersioned(ctx, current, changes); err != nil {
		return nil, nil, err
	}

	logger.InfoWithUser(actor.ID.String(), "workout_updated", map[string]interface{}{
		"workout_id": id.String(),
		"fields":     fields,
	})

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if completionChanged || ownerChanged {
		s.recordSnapshot(updated.UserID)
	}
	if ownerChanged {
		s.recordSnapshot(current.UserID)
	}
	return updated, released, nil
}

// ToggleCompletion flips isCompleted in a single statement. Without an
// expected version concurrent toggles are last-write-wins.
func (s *WorkoutService) ToggleCompletion(ctx context.Context, actor *models.User, id uuid.UUID, expectedVersion *int) (*models.Workout, error) {
	query := s.DB.WithContext(ctx).Model(&models.Workout{}).Where("id = ?", id)
	if expectedVersion != nil {
		query = query.Where("version = ?", *expectedVersion)
	}

	result := query.Updates(map[string]interface{}{
		"is_completed": gorm.Expr("NOT is_completed"),
		"version":      gorm.Expr("version + 1"),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("toggle workout: %w", result.Error)
	}

	workout, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, staleVersion(workout.Version)
	}

	logger.InfoWithUser(actor.ID.String(), "workout_toggled", map[string]interface{}{
		"workout_id":   id.String(),
		"is_completed": workout.IsCompleted,
	})
	s.recordSnapshot(workout.UserID)

	return workout, nil
}

// Remove hard-deletes a workout and returns the deleted row so callers can
// release any stored image.
func (s *WorkoutService) Remove(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Workout, error) {
	workout, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.DB.WithContext(ctx).Delete(&models.Workout{}, "id = ?", id)
	if result.Error != nil {
		return nil, fmt.Errorf("delete workout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, NotFound("workout not found")
	}

	logger.InfoWithUser(actor.ID.String(), "workout_deleted", map[string]interface{}{
		"workout_id": id.String(),
	})
	s.recordSnapshot(workout.UserID)
	return workout, nil
}

func (s *WorkoutService) Stats(ctx context.Context, userID uuid.UUID) (*WorkoutStats, error) {
	if _, err := findUser(ctx, s.DB, "id = ?", userID); err != nil {
		return nil, err
	}

	total, completed, err := countWorkouts(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	return &WorkoutStats{
		TotalWorkouts:     total,
		CompletedWorkouts: completed,
		CompletionRate:    models.CompletionPercentage(completed, total),
	}, nil
}

// SetImage stores a new image reference and returns the previous object key.
func (s *WorkoutService) SetImage(ctx context.Context, id uuid.UUID, uri, key string) (*models.Workout, *string, error) {
	workout, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	previous := workout.ImageKey
	if err := s.applyVersioned(ctx, workout, map[string]interface{}{
		"image_uri": uri,
		"image_key": key,
	}); err != nil {
		return nil, nil, err
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return updated, previous, nil
}

func (s *WorkoutService) applyVersioned(ctx context.Context, current *models.Workout, changes map[string]interface{}) error {
	changes["version"] = gorm.Expr("version + 1")

	result := s.DB.WithContext(ctx).Model(&models.Workout{}).
		Where("id = ? AND version = ?", current.ID, current.Version).
		Updates(changes)
	if result.Error != nil {
		return fmt.Errorf("update workout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		latest, err := s.Get(ctx, current.ID)
		if err != nil {
			return err
		}
		return staleVersion(latest.Version)
	}
	return nil
}

func sameString(current *string, value string) bool {
	return current != nil && *current == value
}

func (s *WorkoutService) recordSnapshot(userID uuid.UUID) {
	if s.Snapshots != nil {
		s.Snapshots.RecordAsync(userID)
	}
}

func staleVersion(current int) *Error {
	return Conflict("workout was modified concurrently (current version %d)", current)
}

func countWorkouts(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, int64, error) {
	var total, completed int64
	if err := db.WithContext(ctx).Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("count workouts: %w", err)
	}
	if err := db.WithContext(ctx).Model(&models.Workout{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, fmt.Errorf("count completed workouts: %w", err)
	}
	return total, completed, nil
}
