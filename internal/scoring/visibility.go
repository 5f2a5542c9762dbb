package scoring

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// Viewer identifies the caller a read-side result is rendered for.
// It is passed explicitly into every query instead of being read from
// ambient session state.
type Viewer struct {
	ID      uuid.UUID
	IsAdmin bool
}

// FilterVotes returns the votes visible to the viewer. Non-admin viewers
// never see votes cast by administrators; admin viewers see everything.
// The input slice is left untouched and relative order is preserved, so
// repeated calls with the same arguments yield the same result.
func FilterVotes(votes []models.Vote, adminIDs map[uuid.UUID]struct{}, viewer Viewer) []models.Vote {
	filtered := make([]models.Vote, 0, len(votes))
	for _, vote := range votes {
		if !viewer.IsAdmin {
			if _, isAdmin := adminIDs[vote.UserID]; isAdmin {
				continue
			}
		}
		filtered = append(filtered, vote)
	}

	return filtered
}

// DisplayName returns the name shown for a pizza at the given 1-based
// leaderboard position. Non-admin viewers see an anonymized label so the
// contestant cannot be inferred before the contest ends.
func DisplayName(pizza models.Pizza, position int, viewer Viewer) string {
	if viewer.IsAdmin {
		return pizza.Name
	}

	return fmt.Sprintf("Pizza #%d", position)
}

// ContestantName returns the contestant behind a pizza, or an empty
// string when the viewer is not allowed to see it.
func ContestantName(pizza models.Pizza, viewer Viewer) string {
	if viewer.IsAdmin {
		return pizza.ContestantName
	}

	return ""
}

// AdminIDSet collects the IDs of administrator profiles for vote filtering.
func AdminIDSet(profiles []models.Profile) map[uuid.UUID]struct{} {
	admins := make(map[uuid.UUID]struct{})
	for _, profile := range profiles {
		if profile.IsAdmin {
			admins[profile.ID] = struct{}{}
		}
	}

	return admins
}
