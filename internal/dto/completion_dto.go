package dto

import "github.com/fornolabs/pizza-contest-api/internal/scoring"

// CompletionResponse reports which eligible voters have scored a pizza.
type CompletionResponse struct {
	PizzaID          uint     `json:"pizza_id"`
	VotedUsernames   []string `json:"voted_usernames"`
	PendingUsernames []string `json:"pending_usernames"`
	TotalEligible    int      `json:"total_eligible"`
}

// NewCompletionResponse converts an engine report into a DTO.
func NewCompletionResponse(report scoring.CompletionReport) CompletionResponse {
	return CompletionResponse{
		PizzaID:          report.PizzaID,
		VotedUsernames:   report.Voted,
		PendingUsernames: report.Pending,
		TotalEligible:    report.TotalEligible(),
	}
}
