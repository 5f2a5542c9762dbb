package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// VoteRepository defines data operations for vote rows. Upsert is the
// only write path: the storage layer guarantees at most one row per
// (user_id, pizza_id) pair.
type VoteRepository interface {
	Upsert(ctx context.Context, vote *models.Vote) error
	ListByPizza(ctx context.Context, pizzaID uint) ([]models.Vote, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Vote, error)
	ListAll(ctx context.Context) ([]models.Vote, error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository instantiates the repository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "pizza_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category_1", "category_2", "category_3", "category_4", "category_5", "updated_at",
		}),
	}).Create(vote).Error
}

func (r *voteRepository) ListByPizza(ctx context.Context, pizzaID uint) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.WithContext(ctx).
		Where("pizza_id = ?", pizzaID).
		Order("created_at ASC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}

	return votes, nil
}

func (r *voteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("pizza_id ASC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}

	return votes, nil
}

func (r *voteRepository) ListAll(ctx context.Context) ([]models.Vote, error) {
	var votes []models.Vote
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&votes).Error; err != nil {
		return nil, err
	}

	return votes, nil
}
