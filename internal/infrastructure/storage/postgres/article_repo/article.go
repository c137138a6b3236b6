// Package article_repo provides the PostgreSQL implementation of article.Repository.
package article_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"inventaro/internal/core/apperror"
	"inventaro/internal/core/id"
	"inventaro/internal/domain/article"
	"inventaro/internal/infrastructure/storage/postgres"
)

const articleTable = "articles"

// ArticleRepo implements article.Repository.
type ArticleRepo struct {
	txm        *postgres.TxManager
	selectCols []string
	returning  string
}

var _ article.Repository = (*ArticleRepo)(nil)

// NewArticleRepo creates a new article repository.
func NewArticleRepo(txm *postgres.TxManager) *ArticleRepo {
	cols := postgres.ExtractDBColumns[article.Article]()

	return &ArticleRepo{
		txm:        txm,
		selectCols: cols,
		returning:  "RETURNING " + strings.Join(cols, ", "),
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *ArticleRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *ArticleRepo) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(articleTable)
}

// Save inserts the article when its ID is nil and updates the stored row otherwise.
// Updating an ID that is no longer stored is a not-found error; a deleted ID is never
// written again.
func (r *ArticleRepo) Save(ctx context.Context, a *article.Article) (*article.Article, error) {
	if id.IsNil(a.ID) {
		return r.insert(ctx, a)
	}
	return r.update(ctx, a)
}

func (r *ArticleRepo) insert(ctx context.Context, a *article.Article) (*article.Article, error) {
	row := *a
	row.ID = id.New()

	q := r.Builder().
		Insert(articleTable).
		SetMap(postgres.StructToMap(&row)).
		Suffix(r.returning)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var saved article.Article
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &saved, sql, args...); err != nil {
		return nil, fmt.Errorf("insert %s: %w", articleTable, err)
	}

	return &saved, nil
}

func (r *ArticleRepo) update(ctx context.Context, a *article.Article) (*article.Article, error) {
	values := postgres.StructToMap(a)
	delete(values, "id") // never update ID

	q := r.Builder().
		Update(articleTable).
		SetMap(values).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix(r.returning)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var saved article.Article
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &saved, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(article.EntityName, a.ID.String())
		}
		return nil, fmt.Errorf("update %s: %w", articleTable, err)
	}

	return &saved, nil
}

// FindByID retrieves article by ID.
func (r *ArticleRepo) FindByID(ctx context.Context, articleID id.ID) (*article.Article, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": articleID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a article.Article
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &a, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(article.EntityName, articleID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return &a, nil
}

// FindAll retrieves every article ordered by id. Ids are UUIDv7, so this is creation order.
func (r *ArticleRepo) FindAll(ctx context.Context) ([]*article.Article, error) {
	q := r.baseSelect().OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*article.Article
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	if items == nil {
		items = []*article.Article{}
	}

	return items, nil
}

// ExistsByID checks if article exists without loading it.
func (r *ArticleRepo) ExistsByID(ctx context.Context, articleID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(articleTable).
		Where(squirrel.Eq{"id": articleID}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists bool
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}

	return exists, nil
}

// DeleteByID performs physical removal. A missing row is not an error here;
// the service checks existence first.
func (r *ArticleRepo) DeleteByID(ctx context.Context, articleID id.ID) error {
	q := r.Builder().
		Delete(articleTable).
		Where(squirrel.Eq{"id": articleID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("execute delete %s: %w", articleTable, err)
	}

	return nil
}
