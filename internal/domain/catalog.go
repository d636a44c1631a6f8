package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"catalog-site-service/internal/i18n"
)

// CategoryText holds the language-variant fields of a Category.
type CategoryText struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
}

// Category groups products. The slug is unique and assigned on first save
// when absent; translations carry the display name per language.
type Category struct {
	ID            int64                    `json:"id"`
	Slug          string                   `json:"slug"`
	Translations  i18n.Table[CategoryText] `json:"translations"`
	ProductsCount *int64                   `json:"products_count,omitempty"` // computed on list queries
}

// ProductText holds the language-variant fields of a Product.
type ProductText struct {
	Name        string `json:"name" validate:"required,max=180"`
	Description string `json:"description"`
}

// Product is a catalog item. Deleting its category is blocked while the
// product exists; the slug is unique and auto-assigned on first save.
type Product struct {
	ID           int64                   `json:"id"`
	Slug         string                  `json:"slug"`
	Price        decimal.Decimal         `json:"price"`
	IsActive     bool                    `json:"is_active"`
	IsFeatured   bool                    `json:"is_featured"`
	CategoryID   int64                   `json:"category_id"`
	Category     *Category               `json:"category,omitempty"`
	Images       []ProductImage          `json:"images,omitempty"`
	Translations i18n.Table[ProductText] `json:"translations"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// ProductImageText holds the language-variant fields of a ProductImage.
type ProductImageText struct {
	AltText string `json:"alt_text" validate:"max=150"`
}

// ProductImage belongs to exactly one product. At most one image per product
// may be primary.
type ProductImage struct {
	ID           int64                        `json:"id"`
	ProductID    int64                        `json:"product_id"`
	Image        string                       `json:"image"`
	Ordering     int                          `json:"ordering"`
	IsPrimary    bool                         `json:"is_primary"`
	Translations i18n.Table[ProductImageText] `json:"translations"`
}
