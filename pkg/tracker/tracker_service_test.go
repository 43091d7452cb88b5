package tracker

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeTrackerRepo struct {
	weights   map[string]*entities.WeightEntry
	water     map[string]*entities.WaterEntry
	exercises map[string]*entities.ExerciseEntry
}

func newFakeTrackerRepo() *fakeTrackerRepo {
	return &fakeTrackerRepo{
		weights:   map[string]*entities.WeightEntry{},
		water:     map[string]*entities.WaterEntry{},
		exercises: map[string]*entities.ExerciseEntry{},
	}
}

func dateKey(userID string, date time.Time) string {
	return userID + "/" + date.Format("2006-01-02")
}

func (f *fakeTrackerRepo) GetWeightByDate(_ context.Context, userID string, date time.Time) (*entities.WeightEntry, error) {
	return f.weights[dateKey(userID, date)], nil
}

func (f *fakeTrackerRepo) SaveWeight(_ context.Context, entry *entities.WeightEntry) error {
	f.weights[dateKey(entry.UserID.String(), entry.EntryDate)] = entry
	return nil
}

func (f *fakeTrackerRepo) ListWeights(_ context.Context, userID string) ([]*entities.WeightEntry, error) {
	var out []*entities.WeightEntry
	for _, w := range f.weights {
		if w.UserID.String() == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeTrackerRepo) GetWaterByDate(_ context.Context, userID string, date time.Time) (*entities.WaterEntry, error) {
	return f.water[dateKey(userID, date)], nil
}

func (f *fakeTrackerRepo) SaveWater(_ context.Context, entry *entities.WaterEntry) error {
	f.water[dateKey(entry.UserID.String(), entry.EntryDate)] = entry
	return nil
}

func (f *fakeTrackerRepo) AddExercise(_ context.Context, entry *entities.ExerciseEntry) error {
	f.exercises[entry.ID.String()] = entry
	return nil
}

func (f *fakeTrackerRepo) GetExerciseByID(_ context.Context, id string) (*entities.ExerciseEntry, error) {
	entry, ok := f.exercises[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (f *fakeTrackerRepo) ListExercises(_ context.Context, userID string, start, end *time.Time) ([]*entities.ExerciseEntry, error) {
	var out []*entities.ExerciseEntry
	for _, e := range f.exercises {
		if e.UserID.String() != userID {
			continue
		}
		if start != nil && e.LoggedAt.Before(*start) {
			continue
		}
		if end != nil && e.LoggedAt.After(*end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeTrackerRepo) DeleteExercise(_ context.Context, id string) error {
	delete(f.exercises, id)
	return nil
}

func TestLogWaterAccumulates(t *testing.T) {
	t.Parallel()

	svc := NewTrackerService(newFakeTrackerRepo())
	userID := uuid.NewString()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.LogWater(ctx, domain.AddWaterRequest{Date: "2024-01-10"}, userID); err != nil {
			t.Fatalf("LogWater: %v", err)
		}
	}

	res, err := svc.GetWater(ctx, userID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetWater: %v", err)
	}
	if res.Glasses != 3 {
		t.Fatalf("glasses = %d, want 3", res.Glasses)
	}
}

func TestLogWaterExplicitCount(t *testing.T) {
	t.Parallel()

	svc := NewTrackerService(newFakeTrackerRepo())
	userID := uuid.NewString()
	ctx := context.Background()

	res, err := svc.LogWater(ctx, domain.AddWaterRequest{Date: "2024-01-10", Glasses: 4}, userID)
	if err != nil {
		t.Fatalf("LogWater: %v", err)
	}
	if res.Glasses != 4 {
		t.Fatalf("glasses = %d, want 4", res.Glasses)
	}

	res, err = svc.LogWater(ctx, domain.AddWaterRequest{Date: "2024-01-10", Glasses: 2}, userID)
	if err != nil {
		t.Fatalf("LogWater: %v", err)
	}
	if res.Glasses != 6 {
		t.Fatalf("glasses = %d, want 6", res.Glasses)
	}
}

func TestLogWaterNegativeCount(t *testing.T) {
	t.Parallel()

	svc := NewTrackerService(newFakeTrackerRepo())

	_, err := svc.LogWater(context.Background(), domain.AddWaterRequest{Glasses: -2}, uuid.NewString())
	if !errors.Is(err, domain.ErrInvalidGlassCount) {
		t.Fatalf("err = %v, want ErrInvalidGlassCount", err)
	}
}

func TestLogWeightOverwritesSameDay(t *testing.T) {
	t.Parallel()

	repo := newFakeTrackerRepo()
	svc := NewTrackerService(repo)
	userID := uuid.NewString()
	ctx := context.Background()

	if _, err := svc.LogWeight(ctx, domain.AddWeightRequest{Date: "2024-01-10", Weight: 73.2}, userID); err != nil {
		t.Fatalf("LogWeight: %v", err)
	}
	res, err := svc.LogWeight(ctx, domain.AddWeightRequest{Date: "2024-01-10", Weight: 72.8}, userID)
	if err != nil {
		t.Fatalf("LogWeight: %v", err)
	}
	if res.Weight != 72.8 {
		t.Fatalf("weight = %v, want 72.8", res.Weight)
	}
	if res.Unit != "kg" {
		t.Fatalf("unit = %q, want kg", res.Unit)
	}

	history, err := svc.GetWeightHistory(ctx, userID)
	if err != nil {
		t.Fatalf("GetWeightHistory: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(history))
	}
	if history[0].Weight != 72.8 {
		t.Fatalf("stored weight = %v, want 72.8", history[0].Weight)
	}
}

func TestLogWeightRejectsNonPositive(t *testing.T) {
	t.Parallel()

	svc := NewTrackerService(newFakeTrackerRepo())

	_, err := svc.LogWeight(context.Background(), domain.AddWeightRequest{Weight: 0}, uuid.NewString())
	if !errors.Is(err, domain.ErrInvalidWeightValue) {
		t.Fatalf("err = %v, want ErrInvalidWeightValue", err)
	}
}

func TestLogWeightInvalidDate(t *testing.T) {
	t.Parallel()

	svc := NewTrackerService(newFakeTrackerRepo())

	_, err := svc.LogWeight(context.Background(), domain.AddWeightRequest{Date: "10-01-2024", Weight: 70}, uuid.NewString())
	if !errors.Is(err, domain.ErrInvalidEntryDate) {
		t.Fatalf("err = %v, want ErrInvalidEntryDate", err)
	}
}

func TestDeleteExerciseOwnership(t *testing.T) {
	t.Parallel()

	svc := NewTrackerService(newFakeTrackerRepo())
	owner := uuid.NewString()
	other := uuid.NewString()
	ctx := context.Background()

	res, err := svc.LogExercise(ctx, domain.AddExerciseRequest{
		Type: "cardio", Name: "morning run", DurationMin: 30, CaloriesBurned: 280,
	}, owner)
	if err != nil {
		t.Fatalf("LogExercise: %v", err)
	}

	if err := svc.DeleteExercise(ctx, res.ID, other); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Fatalf("err = %v, want ErrUnauthorizedAccess", err)
	}
	if err := svc.DeleteExercise(ctx, res.ID, owner); err != nil {
		t.Fatalf("DeleteExercise: %v", err)
	}
	if err := svc.DeleteExercise(ctx, res.ID, owner); !errors.Is(err, domain.ErrExerciseNotFound) {
		t.Fatalf("err = %v, want ErrExerciseNotFound", err)
	}
}

func TestLogExerciseInvalidTimestamp(t *testing.T) {
	t.Parallel()

	svc := NewTrackerService(newFakeTrackerRepo())

	_, err := svc.LogExercise(context.Background(), domain.AddExerciseRequest{
		Type: "cardio", Name: "run", LoggedAt: "yesterday",
	}, uuid.NewString())
	if !errors.Is(err, domain.ErrInvalidTimestamp) {
		t.Fatalf("err = %v, want ErrInvalidTimestamp", err)
	}
}
