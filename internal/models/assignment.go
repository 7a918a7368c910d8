package models

import "time"

type AssignmentStatus string

const (
	AssignmentStatusAccepted   AssignmentStatus = "ACCEPTED"
	AssignmentStatusInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentStatusCompleted  AssignmentStatus = "COMPLETED"
)

// Assignment links a request to the volunteer who claimed it. At most one
// ACCEPTED assignment exists per request; rows are never deleted.
type Assignment struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequestID   uint             `gorm:"index;not null" json:"request_id"`
	Request     Request          `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	VolunteerID uint             `gorm:"index;not null" json:"volunteer_id"`
	Volunteer   User             `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
	Status      AssignmentStatus `gorm:"size:15;not null;default:ACCEPTED;index" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (Assignment) TableName() string { return "assignments" }
