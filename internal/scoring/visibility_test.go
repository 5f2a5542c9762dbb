package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

func TestFilterVotesDropsAdminVotesForNonAdmins(t *testing.T) {
	adminID := uuid.New()
	voterID := uuid.New()
	votes := []models.Vote{
		{UserID: voterID, PizzaID: 1, Category1: 5},
		{UserID: adminID, PizzaID: 1, Category1: 10},
	}
	admins := map[uuid.UUID]struct{}{adminID: {}}

	filtered := FilterVotes(votes, admins, Viewer{IsAdmin: false})
	require.Len(t, filtered, 1)
	require.Equal(t, voterID, filtered[0].UserID)
}

func TestFilterVotesPassesEverythingToAdmins(t *testing.T) {
	adminID := uuid.New()
	votes := []models.Vote{
		{UserID: uuid.New(), PizzaID: 1},
		{UserID: adminID, PizzaID: 1},
	}
	admins := map[uuid.UUID]struct{}{adminID: {}}

	filtered := FilterVotes(votes, admins, Viewer{IsAdmin: true})
	require.Equal(t, votes, filtered)
}

func TestFilterVotesIsIdempotentAndPreservesInput(t *testing.T) {
	adminID := uuid.New()
	voterID := uuid.New()
	votes := []models.Vote{
		{UserID: adminID, PizzaID: 1},
		{UserID: voterID, PizzaID: 1},
	}
	admins := map[uuid.UUID]struct{}{adminID: {}}
	viewer := Viewer{IsAdmin: false}

	once := FilterVotes(votes, admins, viewer)
	twice := FilterVotes(once, admins, viewer)
	require.Equal(t, once, twice)

	// The original slice is untouched.
	require.Len(t, votes, 2)
	require.Equal(t, adminID, votes[0].UserID)
}

func TestDisplayNameRedaction(t *testing.T) {
	pizza := models.Pizza{ID: 4, Name: "Margherita Supreme", ContestantName: "John Doe"}

	require.Equal(t, "Margherita Supreme", DisplayName(pizza, 2, Viewer{IsAdmin: true}))
	require.Equal(t, "Pizza #2", DisplayName(pizza, 2, Viewer{IsAdmin: false}))

	require.Equal(t, "John Doe", ContestantName(pizza, Viewer{IsAdmin: true}))
	require.Empty(t, ContestantName(pizza, Viewer{IsAdmin: false}))
}

func TestAdminIDSet(t *testing.T) {
	admin := models.Profile{ID: uuid.New(), Username: "boss", IsAdmin: true}
	voter := models.Profile{ID: uuid.New(), Username: "taster"}

	admins := AdminIDSet([]models.Profile{admin, voter})
	require.Len(t, admins, 1)
	_, ok := admins[admin.ID]
	require.True(t, ok)
}
