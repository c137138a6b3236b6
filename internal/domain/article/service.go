package article

import (
	"context"
	"fmt"

	"inventaro/internal/core/apperror"
	"inventaro/internal/core/id"
	"inventaro/internal/core/tx"
	"inventaro/pkg/logger"
)

// Service provides the article operations.
// Each operation does at most one read and one write against the repository.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Article service.
// A nil txManager runs reads and writes without a surrounding transaction.
func NewService(repo Repository, txManager tx.Manager) *Service {
	if txManager == nil {
		txManager = tx.None
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Create validates the input and stores a new article.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Article, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, apperror.NewValidationList(errs)
	}

	created, err := s.repo.Save(ctx, NewArticle(in))
	if err != nil {
		return nil, normalizeErr(err, nil)
	}

	logger.Debug(ctx, "article created", "article_id", created.ID)
	return created, nil
}

// List returns all articles as stored.
func (s *Service) List(ctx context.Context) ([]*Article, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, normalizeErr(err, nil)
	}
	return items, nil
}

// GetByID returns a single article.
func (s *Service) GetByID(ctx context.Context, articleID id.ID) (*Article, error) {
	a, err := s.repo.FindByID(ctx, articleID)
	if err != nil {
		return nil, normalizeErr(err, articleID)
	}
	return a, nil
}

// Delete removes an article. Deleting an unknown ID is reported as not found,
// never as a silent success.
func (s *Service) Delete(ctx context.Context, articleID id.ID) error {
	exists, err := s.repo.ExistsByID(ctx, articleID)
	if err != nil {
		return normalizeErr(err, articleID)
	}
	if !exists {
		return apperror.NewNotFound(EntityName, articleID)
	}

	if err := s.repo.DeleteByID(ctx, articleID); err != nil {
		return normalizeErr(err, articleID)
	}

	logger.Debug(ctx, "article deleted", "article_id", articleID)
	return nil
}

// UpdateMetadata overwrites name, unit and threshold of an existing article.
// Quantity is never touched.
func (s *Service) UpdateMetadata(ctx context.Context, articleID id.ID, in MetadataInput) (*Article, error) {
	return s.update(ctx, articleID, in.Validate, func(a *Article) { a.ApplyMetadata(in) })
}

// UpdateQuantity overwrites the stock level of an existing article.
// Name, unit and threshold are never touched.
func (s *Service) UpdateQuantity(ctx context.Context, articleID id.ID, in QuantityInput) (*Article, error) {
	return s.update(ctx, articleID, in.Validate, func(a *Article) { a.ApplyQuantity(in) })
}

// update validates the input before touching the store, then loads, applies
// and saves the article in one transaction.
func (s *Service) update(
	ctx context.Context,
	articleID id.ID,
	validate func() []string,
	apply func(a *Article),
) (*Article, error) {
	if errs := validate(); len(errs) > 0 {
		return nil, apperror.NewValidationList(errs)
	}

	var updated *Article

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByID(ctx, articleID)
		if err != nil {
			return err
		}

		apply(existing)

		updated, err = s.repo.Save(ctx, existing)
		if err != nil {
			return fmt.Errorf("save article: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, normalizeErr(err, articleID)
	}

	return updated, nil
}

// normalizeErr keeps AppErrors (re-labelling not-found with the article entity name)
// and wraps anything else as an internal error.
func normalizeErr(err error, articleID any) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(EntityName, articleID)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", EntityName)
}
