// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	AuthorID    uuid.UUID      `json:"author_id" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"size:100;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Category    string         `json:"category" gorm:"size:100;index"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int            `json:"stock" gorm:"default:0"`
	ImageURL    string         `json:"image_url" gorm:"size:512"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Rating      float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount int64          `json:"review_count" gorm:"default:0"`

	// Relationships
	Author  User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

// InStock reports whether the requested quantity is currently available.
// Stock is consulted, not reserved; callers re-check on every mutation.
func (p *Product) InStock(quantity int) bool {
	return quantity <= p.Stock
}
