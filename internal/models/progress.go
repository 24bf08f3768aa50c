package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletionPercentage is the single rounding rule for completion figures:
// round half up to a whole percent, 0 when there is nothing to complete.
func CompletionPercentage(completed, total int64) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return int((completed*200 + total) / (2 * total))
}

// TraineeProgress is a historical snapshot of a member's workout completion.
// It is never authoritative; live figures always come from the workouts table.
type TraineeProgress struct {
	BaseModel
	TraineeID          uuid.UUID `json:"traineeId" gorm:"type:char(36);not null;index"`
	CompletedWorkouts  int       `json:"completedWorkouts" gorm:"not null;default:0"`
	TotalWorkouts      int       `json:"totalWorkouts" gorm:"not null;default:0"`
	LastUpdated        int64     `json:"lastUpdated" gorm:"not null;index"`
	ProgressPercentage int       `json:"progressPercentage" gorm:"-"`

	Trainee *User `json:"-" gorm:"foreignKey:TraineeID;constraint:OnDelete:CASCADE"`
}

func (TraineeProgress) TableName() string {
	return "trainee_progress"
}

func (p *TraineeProgress) AfterFind(_ *gorm.DB) error {
	p.ProgressPercentage = CompletionPercentage(int64(p.CompletedWorkouts), int64(p.TotalWorkouts))
	return nil
}
