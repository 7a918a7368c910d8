package models

import (
	"strings"
	"time"
)

// UserRole distinguishes residents who post requests from volunteers who help.
type UserRole string

const (
	RoleResident  UserRole = "RESIDENT"
	RoleVolunteer UserRole = "VOLUNTEER"
)

// ParseUserRole maps a request string onto a known role, case-insensitively.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleResident:
		return RoleResident, true
	case RoleVolunteer:
		return RoleVolunteer, true
	}
	return "", false
}

// User represents a community member. Rating is the mean of all review
// ratings received as a volunteer, rounded to 2 decimals; 0 means unrated.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;not null;default:RESIDENT" json:"role"`
	Rating    float64   `gorm:"not null;default:0" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
