// Package articletest provides an in-memory article.Repository for tests.
package articletest

import (
	"context"
	"sync"

	"inventaro/internal/core/apperror"
	"inventaro/internal/core/id"
	"inventaro/internal/domain/article"
)

// MemoryRepository keeps articles in insertion order. Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.Mutex
	rows  map[id.ID]article.Article
	order []id.ID

	// Err, when set, is returned by every method.
	Err error

	// Calls counts method invocations by name.
	Calls map[string]int
}

var _ article.Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows:  make(map[id.ID]article.Article),
		Calls: make(map[string]int),
	}
}

func (r *MemoryRepository) enter(name string) error {
	r.mu.Lock()
	r.Calls[name]++
	return r.Err
}

// Save implements article.Repository.
func (r *MemoryRepository) Save(_ context.Context, a *article.Article) (*article.Article, error) {
	err := r.enter("Save")
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	row := *a
	if id.IsNil(row.ID) {
		row.ID = id.New()
		r.order = append(r.order, row.ID)
	} else if _, ok := r.rows[row.ID]; !ok {
		return nil, apperror.NewNotFound(article.EntityName, row.ID)
	}
	r.rows[row.ID] = row

	out := row
	return &out, nil
}

// FindByID implements article.Repository.
func (r *MemoryRepository) FindByID(_ context.Context, articleID id.ID) (*article.Article, error) {
	err := r.enter("FindByID")
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	row, ok := r.rows[articleID]
	if !ok {
		return nil, apperror.NewNotFound(article.EntityName, articleID)
	}
	return &row, nil
}

// FindAll implements article.Repository.
func (r *MemoryRepository) FindAll(_ context.Context) ([]*article.Article, error) {
	err := r.enter("FindAll")
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	items := make([]*article.Article, 0, len(r.order))
	for _, articleID := range r.order {
		row := r.rows[articleID]
		items = append(items, &row)
	}
	return items, nil
}

// ExistsByID implements article.Repository.
func (r *MemoryRepository) ExistsByID(_ context.Context, articleID id.ID) (bool, error) {
	err := r.enter("ExistsByID")
	defer r.mu.Unlock()
	if err != nil {
		return false, err
	}

	_, ok := r.rows[articleID]
	return ok, nil
}

// DeleteByID implements article.Repository.
func (r *MemoryRepository) DeleteByID(_ context.Context, articleID id.ID) error {
	err := r.enter("DeleteByID")
	defer r.mu.Unlock()
	if err != nil {
		return err
	}

	if _, ok := r.rows[articleID]; !ok {
		return nil
	}
	delete(r.rows, articleID)
	for i, v := range r.order {
		if v == articleID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored articles.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
