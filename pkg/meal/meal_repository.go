package meal

import (
	"NutriSnap-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		AddMeal(ctx context.Context, meal *entities.MealEntry) error
		GetMealByID(ctx context.Context, id string) (*entities.MealEntry, error)
		UpdateMeal(ctx context.Context, meal *entities.MealEntry) error
		DeleteMeal(ctx context.Context, id string) error
		GetMeals(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]*entities.MealEntry, int64, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) AddMeal(ctx context.Context, meal *entities.MealEntry) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.MealEntry, error) {
	var meal entities.MealEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.MealEntry) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealEntry{}).Error
}

func (r *mealRepository) GetMeals(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]*entities.MealEntry, int64, error) {
	var meals []*entities.MealEntry
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("logged_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("logged_at <= ?", *end)
	}

	if err := query.Model(&entities.MealEntry{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("logged_at desc").Find(&meals).Error; err != nil {
		return nil, 0, err
	}

	return meals, count, nil
}
