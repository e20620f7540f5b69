// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered Glbiashara
// account. The affiliation fields (ClubIDs, ProviderID, InstitutionID) and the
// profile fields (Profession, Skills) are the attributes the network matcher
// reads; the matcher treats them as read-only snapshots at query time.
type User struct {
	ID            uuid.UUID `json:"id"`            // The unique identifier for the user.
	Email         string    `json:"email"`         // The user's primary contact email, used as the login identifier.
	Name          string    `json:"name"`          // The user's display name or real name.
	Phone         string    `json:"phone"`         // Optional phone number (Tanzanian format, e.g. +255...).
	PasswordHash  string    `json:"-"`             // Bcrypt hash of the user's password. Never serialized outward.
	Profession    string    `json:"profession"`    // Free-text profession. Empty means unset and never matches.
	Skills        []string  `json:"skills"`        // Skill set; membership is a set, order irrelevant.
	ClubIDs       []int64   `json:"clubIds"`       // Clubs the user affiliates with. No duplicates.
	ProviderID    *int64    `json:"providerId"`    // Single telecom provider affiliation, nil when unset.
	InstitutionID *int64    `json:"institutionId"` // Single institution affiliation, nil when unset.
	CreatedAt     time.Time `json:"createdAt"`     // Timestamp of when this account was created.
	UpdatedAt     time.Time `json:"updatedAt"`     // Timestamp of the last modification to this user's data.
}

// IsConnected reports whether the user has at least one affiliation.
func (u *User) IsConnected() bool {
	return u.ProviderID != nil || u.InstitutionID != nil || len(u.ClubIDs) > 0
}

// HasClub reports whether the user already affiliates with the given club.
func (u *User) HasClub(clubID int64) bool {
	for _, id := range u.ClubIDs {
		if id == clubID {
			return true
		}
	}

	return false
}
