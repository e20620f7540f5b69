package entity

import "time"

// Provider is a telecom provider users can affiliate with.
type Provider struct {
	ID        int64           `json:"id"`        // Sequential identifier referenced from User.ProviderID.
	Name      string          `json:"name"`      // Display name, e.g. "Vodacom Tanzania".
	Slug      string          `json:"slug"`      // Unique URL-safe identifier, e.g. "vodacom".
	IsActive  bool            `json:"isActive"`  // Inactive providers are hidden from recommendations.
	Content   ProviderContent `json:"content"`   // Structured page content for the provider's page.
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProviderContent is the typed page content for a telecom provider.
type ProviderContent struct {
	About       string   `json:"about,omitempty"`
	Services    []string `json:"services,omitempty"`
	USSDCode    string   `json:"ussdCode,omitempty"`
	SupportLine string   `json:"supportLine,omitempty"`
	LogoURL     string   `json:"logoUrl,omitempty"`
}
