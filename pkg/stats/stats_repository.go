package stats

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	// StatsRepository is the record store the engine aggregates over.
	// All range queries are inclusive on both bounds.
	StatsRepository interface {
		ListMeals(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealEntry, error)
		ListExercises(ctx context.Context, userID string, start, end time.Time) ([]*entities.ExerciseEntry, error)
		ListWater(ctx context.Context, userID string, start, end time.Time) ([]*entities.WaterEntry, error)
		ListWeights(ctx context.Context, userID string, start, end time.Time) ([]*entities.WeightEntry, error)
		ListMealDates(ctx context.Context, userID string) ([]time.Time, error)
		GetLatestWeight(ctx context.Context, userID string) (*entities.WeightEntry, error)
		GetGoals(ctx context.Context, userID string) (domain.Goals, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) ListMeals(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealEntry, error) {
	var meals []*entities.MealEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, start, end).
		Order("logged_at asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *statsRepository) ListExercises(ctx context.Context, userID string, start, end time.Time) ([]*entities.ExerciseEntry, error) {
	var exercises []*entities.ExerciseEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, start, end).
		Order("logged_at asc").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *statsRepository) ListWater(ctx context.Context, userID string, start, end time.Time) ([]*entities.WaterEntry, error) {
	var water []*entities.WaterEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, start, end).
		Order("entry_date asc").
		Find(&water).Error; err != nil {
		return nil, err
	}
	return water, nil
}

func (r *statsRepository) ListWeights(ctx context.Context, userID string, start, end time.Time) ([]*entities.WeightEntry, error) {
	var weights []*entities.WeightEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, start, end).
		Order("entry_date asc").
		Find(&weights).Error; err != nil {
		return nil, err
	}
	return weights, nil
}

// ListMealDates returns the distinct calendar days on which the user
// logged at least one meal, newest first.
func (r *statsRepository) ListMealDates(ctx context.Context, userID string) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).Model(&entities.MealEntry{}).
		Where("user_id = ?", userID).
		Distinct("DATE(logged_at)").
		Order("DATE(logged_at) desc").
		Pluck("DATE(logged_at)", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *statsRepository) GetLatestWeight(ctx context.Context, userID string) (*entities.WeightEntry, error) {
	var weight entities.WeightEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date desc").
		First(&weight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &weight, nil
}

// GetGoals never reports absence: unset goal columns fall back to the
// documented defaults.
func (r *statsRepository) GetGoals(ctx context.Context, userID string) (domain.Goals, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return domain.Goals{}, err
	}

	goals := domain.Goals{
		Calories: user.DailyCalorieGoal,
		Protein:  user.DailyProteinGoal,
		Carbs:    user.DailyCarbsGoal,
		Fats:     user.DailyFatsGoal,
		Water:    user.DailyWaterGoal,
	}
	if goals.Calories == 0 {
		goals.Calories = domain.DefaultCalorieGoal
	}
	if goals.Protein == 0 {
		goals.Protein = domain.DefaultProteinGoal
	}
	if goals.Carbs == 0 {
		goals.Carbs = domain.DefaultCarbsGoal
	}
	if goals.Fats == 0 {
		goals.Fats = domain.DefaultFatsGoal
	}
	if goals.Water == 0 {
		goals.Water = domain.DefaultWaterGoal
	}
	return goals, nil
}
