package models

import "github.com/google/uuid"

type Workout struct {
	BaseModel
	EventTitle  string    `json:"eventTitle" gorm:"type:varchar(255);not null"`
	Sets        int       `json:"sets" gorm:"not null;default:0"`
	RepsOrSecs  int       `json:"repsOrSecs" gorm:"not null;default:0"`
	RestTime    int       `json:"restTime" gorm:"not null;default:0"`
	ImageURI    *string   `json:"imageUri,omitempty" gorm:"type:text"`
	ImageKey    *string   `json:"-" gorm:"type:text"`
	IsCompleted bool      `json:"isCompleted" gorm:"not null;default:false;index"`
	UserID      uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	Version     int       `json:"version" gorm:"not null;default:1"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Workout) TableName() string {
	return "workouts"
}
