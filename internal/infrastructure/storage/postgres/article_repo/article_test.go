package article_repo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventaro/internal/core/apperror"
	"inventaro/internal/core/id"
	"inventaro/internal/domain/article"
	"inventaro/internal/infrastructure/storage/postgres"
)

var articleCols = []string{"id", "name", "quantity", "unit", "low_stock_threshold"}

func newRepo(t *testing.T) (*ArticleRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewArticleRepo(postgres.NewTxManagerFromDB(mock, 0)), mock
}

func TestArticleRepo_Save_InsertAssignsID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO articles \(id,low_stock_threshold,name,quantity,unit\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id, name, quantity, unit, low_stock_threshold`).
		WithArgs(pgxmock.AnyArg(), int32(100), "Face mask", int32(200), "pcs").
		WillReturnRows(pgxmock.NewRows(articleCols).
			AddRow(id.New(), "Face mask", int32(200), "pcs", int32(100)))

	saved, err := repo.Save(context.Background(), &article.Article{
		Name: "Face mask", Quantity: 200, Unit: "pcs", LowStockThreshold: 100,
	})
	require.NoError(t, err)

	assert.False(t, id.IsNil(saved.ID))
	assert.Equal(t, "Face mask", saved.Name)
	assert.Equal(t, int32(200), saved.Quantity)
	assert.Equal(t, "pcs", saved.Unit)
	assert.Equal(t, int32(100), saved.LowStockThreshold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Save_UpdateKeepsID(t *testing.T) {
	repo, mock := newRepo(t)
	articleID := id.New()

	mock.ExpectQuery(`UPDATE articles SET low_stock_threshold = \$1, name = \$2, quantity = \$3, unit = \$4 WHERE id = \$5 RETURNING id, name, quantity, unit, low_stock_threshold`).
		WithArgs(int32(50), "Masks", int32(150), "pcs", articleID).
		WillReturnRows(pgxmock.NewRows(articleCols).
			AddRow(articleID, "Masks", int32(150), "pcs", int32(50)))

	in := &article.Article{ID: articleID, Name: "Masks", Quantity: 150, Unit: "pcs", LowStockThreshold: 50}
	saved, err := repo.Save(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, articleID, saved.ID)
	assert.Equal(t, int32(150), saved.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Save_UpdateOfDeletedRowIsNotFound(t *testing.T) {
	repo, mock := newRepo(t)
	articleID := id.New()

	mock.ExpectQuery(`UPDATE articles SET`).
		WithArgs(int32(50), "Masks", int32(150), "pcs", articleID).
		WillReturnRows(pgxmock.NewRows(articleCols))

	in := &article.Article{ID: articleID, Name: "Masks", Quantity: 150, Unit: "pcs", LowStockThreshold: 50}
	_, err := repo.Save(context.Background(), in)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Save_Error(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO articles`).
		WillReturnError(errors.New("check constraint violated"))

	_, err := repo.Save(context.Background(), &article.Article{Name: "x", Unit: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert articles")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_FindByID(t *testing.T) {
	articleID := id.New()

	tests := []struct {
		name         string
		setup        func(mock pgxmock.PgxPoolIface)
		wantNotFound bool
		wantErr      bool
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, quantity, unit, low_stock_threshold FROM articles WHERE id = \$1 LIMIT 1`).
					WithArgs(articleID).
					WillReturnRows(pgxmock.NewRows(articleCols).
						AddRow(articleID, "Thermometer", int32(5), "pcs", int32(2)))
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(articleID).
					WillReturnRows(pgxmock.NewRows(articleCols))
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "driver error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(articleID).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.setup(mock)

			got, err := repo.FindByID(context.Background(), articleID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantNotFound, apperror.IsNotFound(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, articleID, got.ID)
				assert.Equal(t, "Thermometer", got.Name)
				assert.Equal(t, int32(2), got.LowStockThreshold)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestArticleRepo_FindAll(t *testing.T) {
	repo, mock := newRepo(t)
	first, second := id.New(), id.New()

	mock.ExpectQuery(`SELECT id, name, quantity, unit, low_stock_threshold FROM articles ORDER BY id ASC`).
		WillReturnRows(pgxmock.NewRows(articleCols).
			AddRow(first, "Gloves", int32(50), "box", int32(10)).
			AddRow(second, "Scalpel", int32(10), "pcs", int32(2)))

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, "Scalpel", items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_FindAll_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM articles`).
		WillReturnRows(pgxmock.NewRows(articleCols))

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_ExistsByID(t *testing.T) {
	for _, want := range []bool{true, false} {
		repo, mock := newRepo(t)
		articleID := id.New()

		mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM articles WHERE id = \$1 \)`).
			WithArgs(articleID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(want))

		got, err := repo.ExistsByID(context.Background(), articleID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestArticleRepo_DeleteByID(t *testing.T) {
	repo, mock := newRepo(t)
	articleID := id.New()

	mock.ExpectExec(`DELETE FROM articles WHERE id = \$1`).
		WithArgs(articleID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM articles`).
		WithArgs(articleID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteByID(context.Background(), articleID))
	require.NoError(t, repo.DeleteByID(context.Background(), articleID), "absent row is a no-op")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_UsesTransactionFromContext(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txm := postgres.NewTxManagerFromDB(mock, 0)
	repo := NewArticleRepo(txm)
	articleID := id.New()

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite})
	mock.ExpectQuery(`SELECT (.+) FROM articles WHERE id`).
		WithArgs(articleID).
		WillReturnRows(pgxmock.NewRows(articleCols).AddRow(articleID, "Masks", int32(100), "pcs", int32(50)))
	mock.ExpectQuery(`UPDATE articles SET`).
		WithArgs(int32(50), "Masks", int32(150), "pcs", articleID).
		WillReturnRows(pgxmock.NewRows(articleCols).AddRow(articleID, "Masks", int32(150), "pcs", int32(50)))
	mock.ExpectCommit()

	svc := article.NewService(repo, txm)
	qty := int32(150)
	updated, err := svc.UpdateQuantity(context.Background(), articleID, article.QuantityInput{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, int32(150), updated.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_RollbackOnNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txm := postgres.NewTxManagerFromDB(mock, 0)
	repo := NewArticleRepo(txm)
	articleID := id.New()

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite})
	mock.ExpectQuery(`SELECT (.+) FROM articles WHERE id`).
		WithArgs(articleID).
		WillReturnRows(pgxmock.NewRows(articleCols))
	mock.ExpectRollback()

	svc := article.NewService(repo, txm)
	qty := int32(20)
	_, err = svc.UpdateQuantity(context.Background(), articleID, article.QuantityInput{Quantity: &qty})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "Article not found with id: "+articleID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
