package entity

import "time"

// Club is a sports club or team users can affiliate with. Clubs are join
// targets for the matcher; they carry no behavior of their own.
type Club struct {
	ID        int64       `json:"id"`        // Sequential identifier referenced from User.ClubIDs.
	Name      string      `json:"name"`      // Display name, e.g. "Simba SC".
	Slug      string      `json:"slug"`      // Unique URL-safe identifier, e.g. "simba-sc".
	Sport     string      `json:"sport"`     // The sport the club plays, e.g. "football".
	Content   ClubContent `json:"content"`   // Structured page content for the club's profile page.
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ClubContent is the typed page content for a club. The source system stored
// this as an untyped JSON blob; it is schema-checked here so shape drift is a
// compile error rather than a runtime surprise.
type ClubContent struct {
	About       string   `json:"about,omitempty"`
	Stadium     string   `json:"stadium,omitempty"`
	FoundedYear int      `json:"foundedYear,omitempty"`
	Trophies    []string `json:"trophies,omitempty"`
	LogoURL     string   `json:"logoUrl,omitempty"`
}
