package tracker

import (
	"NutriSnap-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	TrackerRepository interface {
		GetWeightByDate(ctx context.Context, userID string, date time.Time) (*entities.WeightEntry, error)
		SaveWeight(ctx context.Context, entry *entities.WeightEntry) error
		ListWeights(ctx context.Context, userID string) ([]*entities.WeightEntry, error)

		GetWaterByDate(ctx context.Context, userID string, date time.Time) (*entities.WaterEntry, error)
		SaveWater(ctx context.Context, entry *entities.WaterEntry) error

		AddExercise(ctx context.Context, entry *entities.ExerciseEntry) error
		GetExerciseByID(ctx context.Context, id string) (*entities.ExerciseEntry, error)
		ListExercises(ctx context.Context, userID string, start, end *time.Time) ([]*entities.ExerciseEntry, error)
		DeleteExercise(ctx context.Context, id string) error
	}

	trackerRepository struct {
		db *gorm.DB
	}
)

func NewTrackerRepository(db *gorm.DB) TrackerRepository {
	return &trackerRepository{db: db}
}

func (r *trackerRepository) GetWeightByDate(ctx context.Context, userID string, date time.Time) (*entities.WeightEntry, error) {
	var entry entities.WeightEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, date).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *trackerRepository) SaveWeight(ctx context.Context, entry *entities.WeightEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *trackerRepository) ListWeights(ctx context.Context, userID string) ([]*entities.WeightEntry, error) {
	var entries []*entities.WeightEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackerRepository) GetWaterByDate(ctx context.Context, userID string, date time.Time) (*entities.WaterEntry, error) {
	var entry entities.WaterEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, date).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *trackerRepository) SaveWater(ctx context.Context, entry *entities.WaterEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *trackerRepository) AddExercise(ctx context.Context, entry *entities.ExerciseEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *trackerRepository) GetExerciseByID(ctx context.Context, id string) (*entities.ExerciseEntry, error) {
	var entry entities.ExerciseEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *trackerRepository) ListExercises(ctx context.Context, userID string, start, end *time.Time) ([]*entities.ExerciseEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("logged_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("logged_at <= ?", *end)
	}

	var entries []*entities.ExerciseEntry
	if err := query.Order("logged_at desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackerRepository) DeleteExercise(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ExerciseEntry{}).Error
}
