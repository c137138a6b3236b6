package article_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventaro/internal/core/apperror"
	"inventaro/internal/core/id"
	"inventaro/internal/core/tx"
	"inventaro/internal/domain/article"
	"inventaro/internal/domain/article/articletest"
)

func ptr32(v int32) *int32 { return &v }

// countingTx records how many transactions were opened.
type countingTx struct{ n int }

func (c *countingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	c.n++
	return fn(ctx)
}

func newService(t *testing.T) (*article.Service, *articletest.MemoryRepository) {
	t.Helper()
	repo := articletest.NewMemoryRepository()
	return article.NewService(repo, tx.None), repo
}

func mustCreate(t *testing.T, svc *article.Service, name string, qty int32, unit string, threshold int32) *article.Article {
	t.Helper()
	a, err := svc.Create(context.Background(), article.CreateInput{
		Name: name, Quantity: ptr32(qty), Unit: unit, LowStockThreshold: ptr32(threshold),
	})
	require.NoError(t, err)
	return a
}

func TestService_Create(t *testing.T) {
	svc, repo := newService(t)

	a := mustCreate(t, svc, "  Face mask  ", 200, " pcs ", 100)

	assert.False(t, id.IsNil(a.ID))
	assert.Equal(t, "Face mask", a.Name)
	assert.Equal(t, int32(200), a.Quantity)
	assert.Equal(t, "pcs", a.Unit)
	assert.Equal(t, int32(100), a.LowStockThreshold)
	assert.Equal(t, 1, repo.Calls["Save"])

	b := mustCreate(t, svc, "Face mask", 200, "pcs", 100)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestService_Create_ValidationFailsBeforeStore(t *testing.T) {
	svc, repo := newService(t)

	_, err := svc.Create(context.Background(), article.CreateInput{
		Name: "", Quantity: ptr32(-5), Unit: "", LowStockThreshold: ptr32(-1),
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, article.MsgNameEmpty, appErr.Message)
	assert.Len(t, appErr.Details["errors"], 4)
	assert.Zero(t, repo.Calls["Save"])
	assert.Zero(t, repo.Len())
}

func TestService_List_InsertionOrder(t *testing.T) {
	svc, _ := newService(t)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	mustCreate(t, svc, "Gloves", 50, "box", 10)
	mustCreate(t, svc, "Thermometer", 5, "pcs", 2)

	items, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Gloves", items[0].Name)
	assert.Equal(t, "Thermometer", items[1].Name)
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newService(t)
	created := mustCreate(t, svc, "Thermometer", 5, "pcs", 2)

	first, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, created, first)

	missing := id.New()
	_, err = svc.GetByID(context.Background(), missing)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "Article not found with id: "+missing.String())
}

func TestService_Delete(t *testing.T) {
	svc, repo := newService(t)
	created := mustCreate(t, svc, "Scalpel", 10, "pcs", 2)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Zero(t, repo.Len())

	_, err := svc.GetByID(context.Background(), created.ID)
	assert.True(t, apperror.IsNotFound(err))

	err = svc.Delete(context.Background(), created.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, 1, repo.Calls["DeleteByID"])

	err = svc.Delete(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_UpdateMetadata(t *testing.T) {
	repo := articletest.NewMemoryRepository()
	txm := &countingTx{}
	svc := article.NewService(repo, txm)
	created := mustCreate(t, svc, "Masks", 100, "pcs", 50)

	updated, err := svc.UpdateMetadata(context.Background(), created.ID, article.MetadataInput{
		Name: " Surgical Masks ", Unit: "box", LowStockThreshold: ptr32(120),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Surgical Masks", updated.Name)
	assert.Equal(t, "box", updated.Unit)
	assert.Equal(t, int32(120), updated.LowStockThreshold)
	assert.Equal(t, int32(100), updated.Quantity)
	assert.Equal(t, 1, txm.n)

	stored, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestService_UpdateMetadata_Errors(t *testing.T) {
	svc, repo := newService(t)
	created := mustCreate(t, svc, "Gloves", 10, "box", 5)

	_, err := svc.UpdateMetadata(context.Background(), created.ID, article.MetadataInput{
		Name: "", Unit: "box", LowStockThreshold: ptr32(-1),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, err.Error(), "must")
	assert.Equal(t, 1, repo.Calls["Save"])

	_, err = svc.UpdateMetadata(context.Background(), id.New(), article.MetadataInput{
		Name: "Any", Unit: "pcs", LowStockThreshold: ptr32(10),
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_UpdateQuantity(t *testing.T) {
	svc, _ := newService(t)
	created := mustCreate(t, svc, "Masks", 100, "pcs", 50)

	updated, err := svc.UpdateQuantity(context.Background(), created.ID, article.QuantityInput{Quantity: ptr32(150)})
	require.NoError(t, err)

	assert.Equal(t, int32(150), updated.Quantity)
	assert.Equal(t, "Masks", updated.Name)
	assert.Equal(t, "pcs", updated.Unit)
	assert.Equal(t, int32(50), updated.LowStockThreshold)

	_, err = svc.UpdateQuantity(context.Background(), created.ID, article.QuantityInput{Quantity: ptr32(-5)})
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, article.MsgQuantityNegative, appErr.Message)

	_, err = svc.UpdateQuantity(context.Background(), created.ID, article.QuantityInput{})
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, article.MsgQuantityRequired, appErr.Message)

	_, err = svc.UpdateQuantity(context.Background(), id.New(), article.QuantityInput{Quantity: ptr32(20)})
	assert.True(t, apperror.IsNotFound(err))

	stored, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(150), stored.Quantity)
}

func TestService_StoreFailureIsInternal(t *testing.T) {
	svc, repo := newService(t)
	repo.Err = errors.New("connection reset")

	_, err := svc.List(context.Background())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInternal, appErr.Code)
	assert.ErrorIs(t, err, repo.Err)

	err = svc.Delete(context.Background(), id.New())
	assert.Equal(t, 500, apperror.GetHTTPStatus(err))
}

// deletingRepo removes the row right after it has been read, as a concurrent
// DELETE committing between the read and the write of an update would.
type deletingRepo struct {
	*articletest.MemoryRepository
}

func (r deletingRepo) FindByID(ctx context.Context, articleID id.ID) (*article.Article, error) {
	a, err := r.MemoryRepository.FindByID(ctx, articleID)
	if err == nil {
		_ = r.MemoryRepository.DeleteByID(ctx, articleID)
	}
	return a, err
}

func TestService_UpdateAfterConcurrentDeleteIsNotFound(t *testing.T) {
	mem := articletest.NewMemoryRepository()
	svc := article.NewService(deletingRepo{mem}, tx.None)
	created := mustCreate(t, svc, "Masks", 100, "pcs", 50)

	_, err := svc.UpdateQuantity(context.Background(), created.ID, article.QuantityInput{Quantity: ptr32(150)})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "Article not found with id: "+created.ID.String())
	assert.Zero(t, mem.Len())

	_, err = svc.UpdateMetadata(context.Background(), created.ID, article.MetadataInput{
		Name: "Masks", Unit: "box", LowStockThreshold: ptr32(5),
	})
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, mem.Len())
}

func TestMemoryRepository_SaveUnknownIDIsNotFound(t *testing.T) {
	repo := articletest.NewMemoryRepository()

	_, err := repo.Save(context.Background(), &article.Article{ID: id.New(), Name: "Ghost", Unit: "pcs"})
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, repo.Len())
}
