package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a social feed entry. A post may carry an attached product, which is
// how sellers promote listings into the feed.
type Post struct {
	ID        uuid.UUID  `json:"id"`                  // The unique identifier for the post.
	AuthorID  uuid.UUID  `json:"authorId"`            // The user who wrote the post.
	Body      string     `json:"body"`                // Post text.
	ProductID *uuid.UUID `json:"productId,omitempty"` // Optional attached marketplace listing.
	Author    *User      `json:"author,omitempty"`    // Author summary, populated when the feed is read.
	Product   *Product   `json:"product,omitempty"`   // Attached product, populated when the feed is read.
	CreatedAt time.Time  `json:"createdAt"`
}
