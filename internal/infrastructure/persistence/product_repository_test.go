package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormProductRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &catalog.Product{ID: 25, Name: "pikachu", ImageURL: "https://img/25.png", Quantity: 3}))
	require.NoError(t, repo.Create(ctx, &catalog.Product{ID: 1, Name: "bulbasaur", ImageURL: "https://img/1.png", Quantity: 5}))

	t.Run("finds by id", func(t *testing.T) {
		p, err := repo.FindByID(ctx, 25)
		require.NoError(t, err)
		assert.Equal(t, "pikachu", p.Name)
		assert.Equal(t, 3, p.Quantity)
	})

	t.Run("finds by name", func(t *testing.T) {
		p, err := repo.FindByName(ctx, "bulbasaur")
		require.NoError(t, err)
		assert.Equal(t, 1, p.ID)
	})

	t.Run("missing product maps to not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByName(ctx, "missingno")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists all ordered by id", func(t *testing.T) {
		products, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, 1, products[0].ID)
		assert.Equal(t, 25, products[1].ID)
	})

	t.Run("updates image url", func(t *testing.T) {
		require.NoError(t, repo.UpdateImageURL(ctx, 25, "https://img/25-new.png"))
		p, err := repo.FindByID(ctx, 25)
		require.NoError(t, err)
		assert.Equal(t, "https://img/25-new.png", p.ImageURL)
	})

	t.Run("update image url on missing product fails", func(t *testing.T) {
		assert.ErrorIs(t, repo.UpdateImageURL(ctx, 9999, "https://img/x.png"), shared.ErrNotFound)
	})
}

func TestGormProductRepository_DecreaseQuantity(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &catalog.Product{ID: 7, Name: "squirtle", Quantity: 4}))

	t.Run("decrements within stock", func(t *testing.T) {
		require.NoError(t, repo.DecreaseQuantity(ctx, 7, 3))
		p, err := repo.FindByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Quantity)
	})

	t.Run("refuses to go below zero", func(t *testing.T) {
		err := repo.DecreaseQuantity(ctx, 7, 2)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		p, findErr := repo.FindByID(ctx, 7)
		require.NoError(t, findErr)
		assert.Equal(t, 1, p.Quantity)
	})

	t.Run("can drain stock to exactly zero", func(t *testing.T) {
		require.NoError(t, repo.DecreaseQuantity(ctx, 7, 1))
		p, err := repo.FindByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Quantity)
	})

	t.Run("missing product maps to not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.DecreaseQuantity(ctx, 9999, 1), shared.ErrNotFound)
	})
}

// newSqlmockDB opens a GORM connection backed by sqlmock with the Postgres
// dialect, for asserting the exact SQL shape of the stock guard.
func newSqlmockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormProductRepository_DecreaseQuantityGuardSQL(t *testing.T) {
	db, mock := newSqlmockDB(t)
	repo := NewGormProductRepository(db)

	// The guard must live inside the UPDATE's WHERE clause, not in a
	// separate read.
	mock.ExpectExec(`UPDATE "productos" SET "cantidad"=cantidad - .+ WHERE id = .+ AND cantidad >= .+`).
		WithArgs(2, 7, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DecreaseQuantity(context.Background(), 7, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
