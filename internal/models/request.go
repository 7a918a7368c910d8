package models

import (
	"strings"
	"time"
)

type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "OPEN"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

type RequestCategory string

const (
	CategoryTools          RequestCategory = "TOOLS"
	CategoryTutoring       RequestCategory = "TUTORING"
	CategoryErrands        RequestCategory = "ERRANDS"
	CategoryTransportation RequestCategory = "TRANSPORTATION"
	CategoryHousehold      RequestCategory = "HOUSEHOLD"
	CategoryGardening      RequestCategory = "GARDENING"
	CategoryTechnology     RequestCategory = "TECHNOLOGY"
	CategoryOther          RequestCategory = "OTHER"
)

var categoryDisplayNames = map[RequestCategory]string{
	CategoryTools:          "Tools & Equipment",
	CategoryTutoring:       "Tutoring & Education",
	CategoryErrands:        "Errands & Shopping",
	CategoryTransportation: "Transportation",
	CategoryHousehold:      "Household Help",
	CategoryGardening:      "Gardening",
	CategoryTechnology:     "Technology Help",
	CategoryOther:          "Other",
}

// ParseRequestCategory maps a request string onto a known category.
func ParseRequestCategory(s string) (RequestCategory, bool) {
	c := RequestCategory(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := categoryDisplayNames[c]; ok {
		return c, true
	}
	return "", false
}

func (c RequestCategory) DisplayName() string {
	return categoryDisplayNames[c]
}

type RequestUrgency string

const (
	UrgencyLow    RequestUrgency = "LOW"
	UrgencyMedium RequestUrgency = "MEDIUM"
	UrgencyHigh   RequestUrgency = "HIGH"
)

// ParseRequestUrgency maps a request string onto a known urgency.
func ParseRequestUrgency(s string) (RequestUrgency, bool) {
	switch RequestUrgency(strings.ToUpper(strings.TrimSpace(s))) {
	case UrgencyLow:
		return UrgencyLow, true
	case UrgencyMedium:
		return UrgencyMedium, true
	case UrgencyHigh:
		return UrgencyHigh, true
	}
	return "", false
}

// Request is a posted need for help. Status moves OPEN → ACCEPTED →
// COMPLETED, or OPEN → CANCELLED; it never skips or reverses.
type Request struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	User        User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    RequestCategory `gorm:"size:20;not null" json:"category"`
	Urgency     RequestUrgency  `gorm:"size:10;not null" json:"urgency"`
	Status      RequestStatus   `gorm:"size:10;not null;default:OPEN;index" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Request) TableName() string { return "requests" }
