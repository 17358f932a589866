// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// Review carries a composite unique index on (author_id, product_id) so the
// one-review-per-user-per-product rule holds even under concurrent submits.
type Review struct {
	BaseModel
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_product;index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"size:500;not null"`

	// Relationships
	Author  User    `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
