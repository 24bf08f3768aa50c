package models

import "github.com/google/uuid"

type Event struct {
	BaseModel
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Date        string    `json:"date" gorm:"type:varchar(10);not null;index"`
	Time        string    `json:"time" gorm:"type:varchar(5);not null"`
	Location    string    `json:"location" gorm:"type:varchar(255);not null"`
	ImageURI    *string   `json:"imageUri,omitempty" gorm:"type:text"`
	ImageKey    *string   `json:"-" gorm:"type:text"`
	CreatedByID uuid.UUID `json:"createdBy" gorm:"column:created_by;type:char(36);not null;index"`

	CreatedBy *User `json:"-" gorm:"foreignKey:CreatedByID"`
}

func (Event) TableName() string {
	return "events"
}
