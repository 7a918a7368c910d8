package models

import "time"

// Review is post-completion feedback from a requester to a volunteer.
// One review per (request, volunteer) pair; immutable once created.
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequestID   uint      `gorm:"not null;uniqueIndex:idx_reviews_request_volunteer" json:"request_id"`
	Request     Request   `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	VolunteerID uint      `gorm:"not null;index;uniqueIndex:idx_reviews_request_volunteer" json:"volunteer_id"`
	Volunteer   User      `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
