package tracker

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TrackerService interface {
		LogWeight(ctx context.Context, req domain.AddWeightRequest, userID string) (domain.WeightResponse, error)
		GetWeightHistory(ctx context.Context, userID string) ([]domain.WeightResponse, error)
		LogWater(ctx context.Context, req domain.AddWaterRequest, userID string) (domain.WaterResponse, error)
		GetWater(ctx context.Context, userID string, date time.Time) (domain.WaterResponse, error)
		LogExercise(ctx context.Context, req domain.AddExerciseRequest, userID string) (domain.ExerciseResponse, error)
		GetExercises(ctx context.Context, userID string, start, end *time.Time) ([]domain.ExerciseResponse, error)
		DeleteExercise(ctx context.Context, id string, userID string) error
	}

	trackerService struct {
		trackerRepository TrackerRepository
	}
)

func NewTrackerService(trackerRepository TrackerRepository) TrackerService {
	return &trackerService{trackerRepository: trackerRepository}
}

// LogWeight upserts the entry for the given calendar day: a second write
// on the same date overwrites the stored value instead of appending.
func (s *trackerService) LogWeight(ctx context.Context, req domain.AddWeightRequest, userID string) (domain.WeightResponse, error) {
	if req.Weight <= 0 {
		return domain.WeightResponse{}, domain.ErrInvalidWeightValue
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return domain.WeightResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WeightResponse{}, domain.ErrParseUUID
	}

	unit := req.Unit
	if unit == "" {
		unit = "kg"
	}

	entry, err := s.trackerRepository.GetWeightByDate(ctx, userID, date)
	if err != nil {
		return domain.WeightResponse{}, err
	}
	if entry == nil {
		entry = &entities.WeightEntry{
			ID:        uuid.New(),
			UserID:    userUUID,
			EntryDate: date,
		}
	}
	entry.Weight = req.Weight
	entry.Unit = unit
	entry.Notes = req.Notes

	if err := s.trackerRepository.SaveWeight(ctx, entry); err != nil {
		return domain.WeightResponse{}, err
	}

	return weightResponse(entry), nil
}

func (s *trackerService) GetWeightHistory(ctx context.Context, userID string) ([]domain.WeightResponse, error) {
	entries, err := s.trackerRepository.ListWeights(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.WeightResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, weightResponse(entry))
	}
	return response, nil
}

// LogWater accumulates: repeated calls on the same date add to the
// running glass total rather than replacing it.
func (s *trackerService) LogWater(ctx context.Context, req domain.AddWaterRequest, userID string) (domain.WaterResponse, error) {
	glasses := req.Glasses
	if glasses == 0 {
		glasses = 1
	}
	if glasses < 0 {
		return domain.WaterResponse{}, domain.ErrInvalidGlassCount
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return domain.WaterResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WaterResponse{}, domain.ErrParseUUID
	}

	entry, err := s.trackerRepository.GetWaterByDate(ctx, userID, date)
	if err != nil {
		return domain.WaterResponse{}, err
	}
	if entry == nil {
		entry = &entities.WaterEntry{
			ID:        uuid.New(),
			UserID:    userUUID,
			EntryDate: date,
		}
	}
	entry.Glasses += glasses

	if err := s.trackerRepository.SaveWater(ctx, entry); err != nil {
		return domain.WaterResponse{}, err
	}

	return domain.WaterResponse{EntryDate: entry.EntryDate, Glasses: entry.Glasses}, nil
}

func (s *trackerService) GetWater(ctx context.Context, userID string, date time.Time) (domain.WaterResponse, error) {
	entry, err := s.trackerRepository.GetWaterByDate(ctx, userID, date)
	if err != nil {
		return domain.WaterResponse{}, err
	}
	if entry == nil {
		return domain.WaterResponse{EntryDate: date, Glasses: 0}, nil
	}
	return domain.WaterResponse{EntryDate: entry.EntryDate, Glasses: entry.Glasses}, nil
}

func (s *trackerService) LogExercise(ctx context.Context, req domain.AddExerciseRequest, userID string) (domain.ExerciseResponse, error) {
	loggedAt := time.Now()
	if req.LoggedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.LoggedAt)
		if err != nil {
			return domain.ExerciseResponse{}, domain.ErrInvalidTimestamp
		}
		loggedAt = parsed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExerciseResponse{}, domain.ErrParseUUID
	}

	entry := &entities.ExerciseEntry{
		ID:             uuid.New(),
		UserID:         userUUID,
		LoggedAt:       loggedAt,
		Type:           req.Type,
		Name:           req.Name,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		DistanceKm:     req.DistanceKm,
		Notes:          req.Notes,
	}

	if err := s.trackerRepository.AddExercise(ctx, entry); err != nil {
		return domain.ExerciseResponse{}, err
	}

	return exerciseResponse(entry), nil
}

func (s *trackerService) GetExercises(ctx context.Context, userID string, start, end *time.Time) ([]domain.ExerciseResponse, error) {
	entries, err := s.trackerRepository.ListExercises(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ExerciseResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, exerciseResponse(entry))
	}
	return response, nil
}

func (s *trackerService) DeleteExercise(ctx context.Context, id string, userID string) error {
	entry, err := s.trackerRepository.GetExerciseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExerciseNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.trackerRepository.DeleteExercise(ctx, id)
}

// parseEntryDate accepts YYYY-MM-DD, defaulting to today's calendar day.
func parseEntryDate(s string) (time.Time, error) {
	if s == "" {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidEntryDate
	}
	return date, nil
}

func weightResponse(entry *entities.WeightEntry) domain.WeightResponse {
	return domain.WeightResponse{
		ID:        entry.ID.String(),
		EntryDate: entry.EntryDate,
		Weight:    entry.Weight,
		Unit:      entry.Unit,
		Notes:     entry.Notes,
	}
}

func exerciseResponse(entry *entities.ExerciseEntry) domain.ExerciseResponse {
	return domain.ExerciseResponse{
		ID:             entry.ID.String(),
		LoggedAt:       entry.LoggedAt,
		Type:           entry.Type,
		Name:           entry.Name,
		DurationMin:    entry.DurationMin,
		CaloriesBurned: entry.CaloriesBurned,
		DistanceKm:     entry.DistanceKm,
		Notes:          entry.Notes,
	}
}
