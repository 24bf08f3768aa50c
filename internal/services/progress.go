package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
	"gorm.io/gorm"
)

// MemberProgress is the live completion projection for one member.
type MemberProgress struct {
	UserID             uuid.UUID `json:"userId"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	TotalWorkouts      int64     `json:"totalWorkouts"`
	CompletedWorkouts  int64     `json:"completedWorkouts"`
	ProgressPercentage int       `json:"progressPercentage"`
}

// ProgressService computes live progress from the workouts table and keeps
// the historical trainee_progress snapshots. Snapshots requested from the
// request path go through a bounded queue drained by one goroutine.
type ProgressService struct {
	DB *gorm.DB

	mu     sync.RWMutex
	closed bool
	queue  chan uuid.UUID
	done   chan struct{}
}

func NewProgressService(db *gorm.DB, queueSize int) *ProgressService {
	if queueSize < 1 {
		queueSize = 1
	}
	s := &ProgressService{
		DB:    db,
		queue: make(chan uuid.UUID, queueSize),
		done:  make(chan struct{}),
	}
	go s.processQueue()
	return s
}

func (s *ProgressService) AllMembersProgress(ctx context.Context) ([]MemberProgress, error) {
	var members []models.User
	if err := s.DB.WithContext(ctx).
		Where("role = ?", models.UserRoleMember).
		Order("name ASC").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	type row struct {
		UserID    uuid.UUID
		Total     int64
		Completed int64
	}
	var rows []row
	if err := s.DB.WithContext(ctx).Model(&models.Workout{}).
		Select("user_id, COUNT(*) AS total, SUM(CASE WHEN is_completed = ? THEN 1 ELSE 0 END) AS completed", true).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("aggregate workouts: %w", err)
	}

	counts := make(map[uuid.UUID]row, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r
	}

	result := make([]MemberProgress, 0, len(members))
	for _, m := range members {
		c := counts[m.ID]
		result = append(result, projectProgress(&m, c.Total, c.Completed))
	}
	return result, nil
}

func (s *ProgressService) MemberProgress(ctx context.Context, userID uuid.UUID) (*MemberProgress, error) {
	member, err := requireMember(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}

	total, completed, err := countWorkouts(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	progress := projectProgress(member, total, completed)
	return &progress, nil
}

// RecordSnapshot persists the member's current completion figures.
func (s *ProgressService) RecordSnapshot(ctx context.Context, traineeID uuid.UUID) (*models.TraineeProgress, error) {
	if _, err := requireMember(ctx, s.DB, traineeID); err != nil {
		return nil, err
	}

	total, completed, err := countWorkouts(ctx, s.DB, traineeID)
	if err != nil {
		return nil, err
	}

	snapshot := &models.TraineeProgress{
		TraineeID:          traineeID,
		CompletedWorkouts:  int(completed),
		TotalWorkouts:      int(total),
		LastUpdated:        utils.NowMillis(),
		ProgressPercentage: models.CompletionPercentage(completed, total),
	}
	if err := s.DB.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, fmt.Errorf("create progress snapshot: %w", err)
	}
	return snapshot, nil
}

// RecordAsync queues a snapshot without blocking. When the queue is full or
// the service is closed the request is dropped with a warning.
func (s *ProgressService) RecordAsync(traineeID uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	select {
	case s.queue <- traineeID:
	default:
		logger.Warn("progress_snapshot_dropped", map[string]interface{}{
			"trainee_id": traineeID.String(),
		})
	}
}

// Close stops accepting snapshots and waits for queued ones to be written.
func (s *ProgressService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
}

func (s *ProgressService) processQueue() {
	defer close(s.done)
	for traineeID := range s.queue {
		if _, err := s.RecordSnapshot(context.Background(), traineeID); err != nil {
			// deleted since the toggle, or promoted once their workouts were removed
			if KindOf(err) == KindNotFound || KindOf(err) == KindInvalidRole {
				continue
			}
			logger.Error("progress_snapshot_failed", err, map[string]interface{}{
				"trainee_id": traineeID.String(),
			})
		}
	}
}

func (s *ProgressService) ListSnapshots(ctx context.Context) ([]models.TraineeProgress, error) {
	var snapshots []models.TraineeProgress
	if err := s.DB.WithContext(ctx).Order("last_updated DESC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("list progress snapshots: %w", err)
	}
	return snapshots, nil
}

func (s *ProgressService) LatestSnapshot(ctx context.Context, traineeID uuid.UUID) (*models.TraineeProgress, error) {
	var snapshot models.TraineeProgress
	if err := s.DB.WithContext(ctx).
		Where("trainee_id = ?", traineeID).
		Order("last_updated DESC").
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("no progress recorded for this trainee")
		}
		return nil, fmt.Errorf("get progress snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *ProgressService) GetSnapshot(ctx context.Context, id uuid.UUID) (*models.TraineeProgress, error) {
	var snapshot models.TraineeProgress
	if err := s.DB.WithContext(ctx).First(&snapshot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("progress snapshot not found")
		}
		return nil, fmt.Errorf("get progress snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *ProgressService) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).Delete(&models.TraineeProgress{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete progress snapshot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFound("progress snapshot not found")
	}
	return nil
}

func projectProgress(user *models.User, total, completed int64) MemberProgress {
	return MemberProgress{
		UserID:             user.ID,
		Name:               user.Name,
		Email:              user.Email,
		TotalWorkouts:      total,
		CompletedWorkouts:  completed,
		ProgressPercentage: models.CompletionPercentage(completed, total),
	}
}
