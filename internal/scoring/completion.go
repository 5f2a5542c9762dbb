package scoring

import (
	"github.com/google/uuid"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// Voter is an eligible participant tracked by the completion report.
type Voter struct {
	ID       uuid.UUID
	Username string
}

// CompletionReport partitions the eligible voters for one pizza into
// those who have already voted and those who have not.
type CompletionReport struct {
	PizzaID uint
	Voted   []string
	Pending []string
}

// TotalEligible returns the number of voters the report covers.
func (r CompletionReport) TotalEligible() int {
	return len(r.Voted) + len(r.Pending)
}

// Completion builds the report for one pizza. The eligible slice is
// expected to exclude administrators; every eligible voter lands in
// exactly one of the two sets, in roster order. Only the presence of a
// vote row counts: an all-zero vote is still a vote.
func Completion(pizzaID uint, eligible []Voter, votes []models.Vote) CompletionReport {
	voted := make(map[uuid.UUID]struct{}, len(votes))
	for _, vote := range votes {
		if vote.PizzaID == pizzaID {
			voted[vote.UserID] = struct{}{}
		}
	}

	report := CompletionReport{
		PizzaID: pizzaID,
		Voted:   make([]string, 0, len(eligible)),
		Pending: make([]string, 0, len(eligible)),
	}
	for _, voter := range eligible {
		if _, ok := voted[voter.ID]; ok {
			report.Voted = append(report.Voted, voter.Username)
		} else {
			report.Pending = append(report.Pending, voter.Username)
		}
	}

	return report
}
