package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// PizzaFilter narrows pizza queries.
type PizzaFilter struct {
	ActiveOnly bool
}

// PizzaRepository defines data operations for contest entries.
type PizzaRepository interface {
	List(ctx context.Context, filter PizzaFilter) ([]models.Pizza, error)
	GetByID(ctx context.Context, id uint) (models.Pizza, error)
	Create(ctx context.Context, pizza *models.Pizza) error
	Update(ctx context.Context, pizza *models.Pizza) error
	Delete(ctx context.Context, id uint) error
	MaxPosition(ctx context.Context) (int, error)
}

type pizzaRepository struct {
	db *gorm.DB
}

// NewPizzaRepository instantiates the repository.
func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: db}
}

func (r *pizzaRepository) List(ctx context.Context, filter PizzaFilter) ([]models.Pizza, error) {
	query := r.db.WithContext(ctx).Model(&models.Pizza{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var pizzas []models.Pizza
	if err := query.Order("order_position ASC").Find(&pizzas).Error; err != nil {
		return nil, err
	}

	return pizzas, nil
}

func (r *pizzaRepository) GetByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, err
	}

	return pizza, nil
}

func (r *pizzaRepository) Create(ctx context.Context, pizza *models.Pizza) error {
	return r.db.WithContext(ctx).Create(pizza).Error
}

func (r *pizzaRepository) Update(ctx context.Context, pizza *models.Pizza) error {
	return r.db.WithContext(ctx).Save(pizza).Error
}

func (r *pizzaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Pizza{}, id).Error
}

func (r *pizzaRepository) MaxPosition(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&models.Pizza{}).
		Select("MAX(order_position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}

	return *max, nil
}
