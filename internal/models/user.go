package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

// ParseUserRole normalizes free-form input ("Admin", " MEMBER ") into the closed role set.
func ParseUserRole(value string) (UserRole, error) {
	switch UserRole(strings.ToLower(strings.TrimSpace(value))) {
	case UserRoleAdmin:
		return UserRoleAdmin, nil
	case UserRoleMember:
		return UserRoleMember, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseUserRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleMember
}

type User struct {
	BaseModel
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	Name         string    `json:"name" gorm:"type:varchar(150);not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'member';index"`
	Age          *int      `json:"age"`
	Height       *float64  `json:"height"`
	Weight       *float64  `json:"weight"`
	BMI          *float64  `json:"bmi"`
	JoinDate     string    `json:"joinDate" gorm:"type:varchar(40)"`
	Workouts     []Workout `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Events       []Event   `json:"-" gorm:"foreignKey:CreatedByID"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

func (u *User) IsMember() bool {
	return u != nil && u.Role == UserRoleMember
}
