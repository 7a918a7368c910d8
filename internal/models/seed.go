package models

import (
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData creates the demo community when the users table is empty:
// six members across both roles and five requests in assorted states.
func SeedDemoData() error {
	var userCount int64
	if err := DB.Model(&User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hash)

	users := []User{
		{Name: "Alice Johnson", Email: "alice@example.com", Password: password, Role: RoleResident, Rating: 4.5},
		{Name: "Bob Smith", Email: "bob@example.com", Password: password, Role: RoleVolunteer, Rating: 4.8},
		{Name: "Carol Davis", Email: "carol@example.com", Password: password, Role: RoleVolunteer, Rating: 4.9},
		{Name: "David Wilson", Email: "david@example.com", Password: password, Role: RoleResident, Rating: 4.2},
		{Name: "Emma Thompson", Email: "emma@example.com", Password: password, Role: RoleVolunteer, Rating: 4.7},
		{Name: "Frank Miller", Email: "frank@example.com", Password: password, Role: RoleResident, Rating: 3.8},
	}
	if err := DB.Create(&users).Error; err != nil {
		return err
	}

	alice, david, frank := users[0], users[3], users[5]

	requests := []Request{
		{
			UserID:      alice.ID,
			Title:       "Need a ladder for 2 hours",
			Description: "I need to clean my gutters and don't have a tall enough ladder. Would need it for about 2 hours this weekend.",
			Category:    CategoryTools,
			Urgency:     UrgencyMedium,
			Status:      RequestStatusOpen,
		},
		{
			UserID:      david.ID,
			Title:       "Help with math tutoring for my child",
			Description: "My 8th grader is struggling with algebra. Looking for someone who can help with homework 2-3 times a week.",
			Category:    CategoryTutoring,
			Urgency:     UrgencyHigh,
			Status:      RequestStatusOpen,
		},
		{
			UserID:      frank.ID,
			Title:       "Need help carrying groceries upstairs",
			Description: "I live on the 3rd floor and have some heavy grocery bags. Would appreciate help carrying them up.",
			Category:    CategoryHousehold,
			Urgency:     UrgencyLow,
			Status:      RequestStatusOpen,
		},
		{
			UserID:      alice.ID,
			Title:       "Computer help - virus removal",
			Description: "My laptop is running very slowly and I think it might have a virus. Need someone tech-savvy to help clean it up.",
			Category:    CategoryTechnology,
			Urgency:     UrgencyMedium,
			Status:      RequestStatusCompleted,
		},
		{
			UserID:      david.ID,
			Title:       "Garden weeding help needed",
			Description: "My backyard garden has gotten overgrown with weeds. Looking for someone to help me clear it out this weekend.",
			Category:    CategoryGardening,
			Urgency:     UrgencyLow,
			Status:      RequestStatusAccepted,
		},
	}
	return DB.Create(&requests).Error
}
