package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.Pizza{}, &models.Vote{}, &models.AuditLog{}))
	return db
}

func TestVoteRepositoryUpsertReplacesExistingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)
	userID := uuid.New()

	first := models.Vote{UserID: userID, PizzaID: 1, Category1: 2, Category2: 4, Category3: 6, Category4: 8, Category5: 10}
	require.NoError(t, repo.Upsert(context.Background(), &first))

	second := models.Vote{UserID: userID, PizzaID: 1, Category1: 9, Category2: 9, Category3: 9, Category4: 9, Category5: 9}
	require.NoError(t, repo.Upsert(context.Background(), &second))

	votes, err := repo.ListByPizza(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, votes, 1, "resubmission must replace the row, not add one")
	require.Equal(t, 9.0, votes[0].Category1)
	require.Equal(t, 9.0, votes[0].Category5)
}

func TestVoteRepositoryUpsertSameScoresIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)
	userID := uuid.New()

	vote := models.Vote{UserID: userID, PizzaID: 3, Category1: 7.5, Category2: 5, Category3: 5, Category4: 5, Category5: 5}
	require.NoError(t, repo.Upsert(context.Background(), &vote))

	again := models.Vote{UserID: userID, PizzaID: 3, Category1: 7.5, Category2: 5, Category3: 5, Category4: 5, Category5: 5}
	require.NoError(t, repo.Upsert(context.Background(), &again))

	votes, err := repo.ListByPizza(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	require.Equal(t, 7.5, votes[0].Category1)
}

func TestVoteRepositoryUpsertDistinctUsersInsertIndependently(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)

	for i := 0; i < 3; i++ {
		vote := models.Vote{UserID: uuid.New(), PizzaID: 5, Category1: float64(i)}
		require.NoError(t, repo.Upsert(context.Background(), &vote))
	}

	votes, err := repo.ListByPizza(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, votes, 3)
}

func TestVoteRepositoryListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)
	userID := uuid.New()

	require.NoError(t, repo.Upsert(context.Background(), &models.Vote{UserID: userID, PizzaID: 2}))
	require.NoError(t, repo.Upsert(context.Background(), &models.Vote{UserID: userID, PizzaID: 1}))
	require.NoError(t, repo.Upsert(context.Background(), &models.Vote{UserID: uuid.New(), PizzaID: 1}))

	votes, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, votes, 2)
	require.Equal(t, uint(1), votes[0].PizzaID, "expected pizza order")
	require.Equal(t, uint(2), votes[1].PizzaID)
}
