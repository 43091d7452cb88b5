package meal

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/entities"
	"NutriSnap-Backend/internal/utils"
	"NutriSnap-Backend/internal/utils/storage"
	"NutriSnap-Backend/pkg/vision"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	MealService interface {
		AddMeal(ctx context.Context, req domain.AddMealRequest, userID string) (domain.MealResponse, error)
		UpdateMeal(ctx context.Context, id string, req domain.UpdateMealRequest, userID string) error
		DeleteMeal(ctx context.Context, id string, userID string) error
		GetMeals(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]domain.MealResponse, int64, error)
		GetMealByID(ctx context.Context, id string, userID string) (domain.MealResponse, error)
		UploadMealPhoto(ctx context.Context, req domain.UploadMealPhotoRequest, userID string) (domain.MealResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		visionService  vision.VisionService
		s3             storage.AwsS3
	}
)

func NewMealService(mealRepository MealRepository, visionService vision.VisionService, s3 storage.AwsS3) MealService {
	return &mealService{
		mealRepository: mealRepository,
		visionService:  visionService,
		s3:             s3,
	}
}

func (s *mealService) AddMeal(ctx context.Context, req domain.AddMealRequest, userID string) (domain.MealResponse, error) {
	loggedAt := time.Now()
	if req.LoggedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.LoggedAt)
		if err != nil {
			return domain.MealResponse{}, domain.ErrInvalidTimestamp
		}
		loggedAt = parsed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}

	meal := &entities.MealEntry{
		ID:          uuid.New(),
		UserID:      userUUID,
		LoggedAt:    loggedAt,
		MealType:    req.MealType,
		FoodItems:   req.FoodItems,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		ServingSize: req.ServingSize,
		Notes:       req.Notes,
	}

	if err := s.mealRepository.AddMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return mealResponse(meal), nil
}

// UpdateMeal applies a manual correction. Identity fields stay fixed,
// only nutrition and descriptive fields can change.
func (s *mealService) UpdateMeal(ctx context.Context, id string, req domain.UpdateMealRequest, userID string) error {
	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}

	if meal.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.MealType != "" {
		meal.MealType = req.MealType
	}
	if len(req.FoodItems) > 0 {
		meal.FoodItems = req.FoodItems
	}
	if req.Calories != nil {
		meal.Calories = *req.Calories
	}
	if req.Protein != nil {
		meal.Protein = *req.Protein
	}
	if req.Carbs != nil {
		meal.Carbs = *req.Carbs
	}
	if req.Fats != nil {
		meal.Fats = *req.Fats
	}
	if req.Fiber != nil {
		meal.Fiber = *req.Fiber
	}
	if req.Sugar != nil {
		meal.Sugar = *req.Sugar
	}
	if req.ServingSize != "" {
		meal.ServingSize = req.ServingSize
	}
	if req.Notes != "" {
		meal.Notes = req.Notes
	}

	return s.mealRepository.UpdateMeal(ctx, meal)
}

func (s *mealService) DeleteMeal(ctx context.Context, id string, userID string) error {
	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}

	if meal.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if meal.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(meal.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.mealRepository.DeleteMeal(ctx, id)
}

func (s *mealService) GetMeals(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]domain.MealResponse, int64, error) {
	meals, count, err := s.mealRepository.GetMeals(ctx, userID, start, end, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, meal := range meals {
		response = append(response, mealResponse(meal))
	}
	return response, count, nil
}

func (s *mealService) GetMealByID(ctx context.Context, id string, userID string) (domain.MealResponse, error) {
	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, domain.ErrMealNotFound
		}
		return domain.MealResponse{}, err
	}

	if meal.UserID.String() != userID {
		return domain.MealResponse{}, domain.ErrUnauthorizedAccess
	}

	return mealResponse(meal), nil
}

// UploadMealPhoto analyzes the image, backs it up to S3 and persists the
// resulting entry. Analysis results are stored as ordinary fields the
// user can correct later; a failed backup does not block logging.
func (s *mealService) UploadMealPhoto(ctx context.Context, req domain.UploadMealPhotoRequest, userID string) (domain.MealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}

	analysis, err := s.visionService.AnalyzeMealImage(ctx, req.Image)
	if err != nil {
		return domain.MealResponse{}, domain.ErrVisionAnalysisFailed
	}

	mealID := uuid.New()
	imageURL := ""
	fileName := fmt.Sprintf("meal-%s", mealID.String())
	objectKey, uploadErr := s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...)
	if uploadErr != nil {
		utils.Logger.Warn("meal_photo_backup_failed",
			zap.Error(uploadErr),
			zap.String("meal_id", mealID.String()),
		)
	} else {
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	mealType := req.MealType
	if mealType == "" {
		mealType = "snack"
	}
	notes := req.Notes
	if notes == "" {
		notes = analysis.Notes
	}

	meal := &entities.MealEntry{
		ID:          mealID,
		UserID:      userUUID,
		LoggedAt:    time.Now(),
		MealType:    mealType,
		FoodItems:   analysis.FoodItems,
		Calories:    analysis.Calories,
		Protein:     analysis.Protein,
		Carbs:       analysis.Carbs,
		Fats:        analysis.Fats,
		Fiber:       analysis.Fiber,
		Sugar:       analysis.Sugar,
		ServingSize: analysis.ServingSize,
		ImageURL:    imageURL,
		Confidence:  analysis.Confidence,
		Notes:       notes,
	}

	if err := s.mealRepository.AddMeal(ctx, meal); err != nil {
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
		return domain.MealResponse{}, err
	}

	return mealResponse(meal), nil
}

func mealResponse(meal *entities.MealEntry) domain.MealResponse {
	return domain.MealResponse{
		ID:          meal.ID.String(),
		LoggedAt:    meal.LoggedAt,
		MealType:    meal.MealType,
		FoodItems:   meal.FoodItems,
		Calories:    meal.Calories,
		Protein:     meal.Protein,
		Carbs:       meal.Carbs,
		Fats:        meal.Fats,
		Fiber:       meal.Fiber,
		Sugar:       meal.Sugar,
		ServingSize: meal.ServingSize,
		ImageURL:    meal.ImageURL,
		Confidence:  meal.Confidence,
		Notes:       meal.Notes,
		CreatedAt:   meal.CreatedAt,
	}
}
