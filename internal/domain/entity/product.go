package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a marketplace listing owned by exactly one user. Only active
// products are visible in the marketplace and in connected-business views.
type Product struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the product.
	OwnerID     uuid.UUID `json:"ownerId"`     // The user who sells this product.
	Name        string    `json:"name"`        // Listing title.
	Description string    `json:"description"` // Free-text description.
	Category    string    `json:"category"`    // Single category, matched against professions in recommendations.
	Tags        []string  `json:"tags"`        // Tag set, matched against user skills in recommendations.
	PriceTZS    int64     `json:"priceTzs"`    // Price in Tanzanian shillings.
	IsActive    bool      `json:"isActive"`    // Whether the listing is currently visible and purchasable.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
