package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// ProfileFilter narrows profile queries.
type ProfileFilter struct {
	ExcludeAdmins bool
}

// ProfileRepository defines data operations for contest participants.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Profile, error)
	List(ctx context.Context, filter ProfileFilter) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository instantiates the repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (r *profileRepository) List(ctx context.Context, filter ProfileFilter) ([]models.Profile, error) {
	query := r.db.WithContext(ctx).Model(&models.Profile{})

	if filter.ExcludeAdmins {
		query = query.Where("is_admin = ?", false)
	}

	var profiles []models.Profile
	if err := query.Order("username ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}
