package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the identity and audit columns shared by every table.
// IDs are stored as char(36) so the same schema works on postgres, mysql and sqlite.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
