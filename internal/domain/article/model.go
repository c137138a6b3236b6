// Package article provides the Article aggregate: the stock items tracked by the service.
package article

import (
	"strings"

	"inventaro/internal/core/id"
)

// EntityName is used in error messages.
const EntityName = "Article"

// Article represents a stock item.
type Article struct {
	// ID is assigned by the store on first save and never changes.
	ID id.ID `db:"id" json:"id"`

	// Name is stored trimmed and is never blank.
	Name string `db:"name" json:"name"`

	// Quantity is the current stock level. Changed only by UpdateQuantity.
	Quantity int32 `db:"quantity" json:"quantity"`

	// Unit is the counting unit, e.g. "pcs" or "box". Stored trimmed.
	Unit string `db:"unit" json:"unit"`

	// LowStockThreshold is kept as reference data only; nothing compares it to Quantity.
	LowStockThreshold int32 `db:"low_stock_threshold" json:"lowStockThreshold"`
}

// CreateInput is the payload for creating an article.
// Numeric fields are pointers so that an omitted field is distinguishable from zero.
// They are 32-bit to match the INTEGER columns they are stored in.
type CreateInput struct {
	Name              string
	Quantity          *int32
	Unit              string
	LowStockThreshold *int32
}

// MetadataInput is the payload for updating name, unit and threshold.
type MetadataInput struct {
	Name              string
	Unit              string
	LowStockThreshold *int32
}

// QuantityInput is the payload for updating the stock level.
type QuantityInput struct {
	Quantity *int32
}

// NewArticle builds an unsaved article from a validated create input.
func NewArticle(in CreateInput) *Article {
	return &Article{
		Name:              strings.TrimSpace(in.Name),
		Quantity:          *in.Quantity,
		Unit:              strings.TrimSpace(in.Unit),
		LowStockThreshold: *in.LowStockThreshold,
	}
}

// ApplyMetadata overwrites name, unit and threshold. Quantity is left as is.
func (a *Article) ApplyMetadata(in MetadataInput) {
	a.Name = strings.TrimSpace(in.Name)
	a.Unit = strings.TrimSpace(in.Unit)
	a.LowStockThreshold = *in.LowStockThreshold
}

// ApplyQuantity overwrites the stock level only.
func (a *Article) ApplyQuantity(in QuantityInput) {
	a.Quantity = *in.Quantity
}
