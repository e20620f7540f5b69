package entity

import "time"

// Institution is a school, college or company users can affiliate with.
type Institution struct {
	ID        int64              `json:"id"`        // Sequential identifier referenced from User.InstitutionID.
	Name      string             `json:"name"`      // Display name, e.g. "University of Dar es Salaam".
	Slug      string             `json:"slug"`      // Unique URL-safe identifier, e.g. "udsm".
	Region    string             `json:"region"`    // Tanzanian region, e.g. "Dar es Salaam".
	IsActive  bool               `json:"isActive"`  // Inactive institutions are hidden from recommendations.
	Content   InstitutionContent `json:"content"`   // Structured page content for the institution's page.
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// InstitutionContent is the typed page content for an institution.
type InstitutionContent struct {
	About    string   `json:"about,omitempty"`
	Courses  []string `json:"courses,omitempty"`
	Website  string   `json:"website,omitempty"`
	LogoURL  string   `json:"logoUrl,omitempty"`
	Category string   `json:"category,omitempty"` // e.g. "university", "vocational", "company"
}
