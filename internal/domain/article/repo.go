package article

import (
	"context"

	"inventaro/internal/core/id"
)

// Repository defines the interface for Article persistence.
type Repository interface {
	// Save inserts the article when its ID is nil (assigning a new ID) and
	// overwrites the stored row otherwise. Saving an ID that is not stored
	// returns a not-found error. It returns the persisted record.
	Save(ctx context.Context, a *Article) (*Article, error)

	// FindByID returns the article or an apperror not-found error.
	FindByID(ctx context.Context, articleID id.ID) (*Article, error)

	// FindAll returns every article in insertion order.
	FindAll(ctx context.Context) ([]*Article, error)

	// ExistsByID reports whether an article with the given ID is stored.
	ExistsByID(ctx context.Context, articleID id.ID) (bool, error)

	// DeleteByID removes the article. Deleting an absent ID is not an error.
	DeleteByID(ctx context.Context, articleID id.ID) error
}
