package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

func TestPizzaRepositoryListOrdersByPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPizzaRepository(db)

	second := models.Pizza{Name: "Diavola", OrderPosition: 2, IsActive: true}
	first := models.Pizza{Name: "Margherita", OrderPosition: 1, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), &second))
	require.NoError(t, repo.Create(context.Background(), &first))

	pizzas, err := repo.List(context.Background(), PizzaFilter{})
	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	require.Equal(t, "Margherita", pizzas[0].Name)
	require.Equal(t, "Diavola", pizzas[1].Name)
}

func TestPizzaRepositoryListActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPizzaRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Pizza{Name: "Margherita", OrderPosition: 1, IsActive: true}))
	require.NoError(t, repo.Create(context.Background(), &models.Pizza{Name: "Ritirata", OrderPosition: 2, IsActive: false}))

	pizzas, err := repo.List(context.Background(), PizzaFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	require.Equal(t, "Margherita", pizzas[0].Name)
}

func TestPizzaRepositoryMaxPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPizzaRepository(db)

	max, err := repo.MaxPosition(context.Background())
	require.NoError(t, err)
	require.Zero(t, max, "empty table yields zero")

	require.NoError(t, repo.Create(context.Background(), &models.Pizza{Name: "Margherita", OrderPosition: 4, IsActive: true}))

	max, err = repo.MaxPosition(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, max)
}

func TestProfileRepositoryListExcludesAdmins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)

	admin := models.Profile{ID: uuid.New(), Username: "boss", Email: "boss@example.com", IsAdmin: true}
	voter := models.Profile{ID: uuid.New(), Username: "taster", Email: "taster@example.com"}
	require.NoError(t, repo.Create(context.Background(), &admin))
	require.NoError(t, repo.Create(context.Background(), &voter))

	profiles, err := repo.List(context.Background(), ProfileFilter{ExcludeAdmins: true})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Equal(t, "taster", profiles[0].Username)

	all, err := repo.List(context.Background(), ProfileFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
}
