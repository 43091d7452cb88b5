package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddMeal     = "meal logged successfully"
	MessageSuccessUpdateMeal  = "meal updated successfully"
	MessageSuccessDeleteMeal  = "meal deleted successfully"
	MessageSuccessGetMeals    = "meals retrieved successfully"
	MessageSuccessAnalyzeMeal = "meal photo analyzed and logged successfully"

	MessageFailedAddMeal     = "failed to log meal"
	MessageFailedUpdateMeal  = "failed to update meal"
	MessageFailedDeleteMeal  = "failed to delete meal"
	MessageFailedGetMeals    = "failed to retrieve meals"
	MessageFailedAnalyzeMeal = "failed to analyze meal photo"

	ErrMealNotFound         = errors.New("meal entry not found")
	ErrInvalidMealType      = errors.New("invalid meal type")
	ErrInvalidTimestamp     = errors.New("invalid timestamp")
	ErrNegativeNutrition    = errors.New("nutrition values must not be negative")
	ErrUnauthorizedAccess   = errors.New("unauthorized access to entry")
	ErrVisionAnalysisFailed = errors.New("vision analysis failed")
)

type (
	AddMealRequest struct {
		LoggedAt    string   `json:"logged_at" validate:"omitempty"`
		MealType    string   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		FoodItems   []string `json:"food_items" validate:"required,min=1"`
		Calories    int      `json:"calories" validate:"min=0"`
		Protein     float64  `json:"protein" validate:"min=0"`
		Carbs       float64  `json:"carbs" validate:"min=0"`
		Fats        float64  `json:"fats" validate:"min=0"`
		Fiber       float64  `json:"fiber" validate:"min=0"`
		Sugar       float64  `json:"sugar" validate:"min=0"`
		ServingSize string   `json:"serving_size"`
		Notes       string   `json:"notes"`
	}

	// UpdateMealRequest corrects nutrition fields on an existing entry.
	// Pointers distinguish "not provided" from explicit zero.
	UpdateMealRequest struct {
		MealType    string   `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		FoodItems   []string `json:"food_items" validate:"omitempty,min=1"`
		Calories    *int     `json:"calories" validate:"omitempty,min=0"`
		Protein     *float64 `json:"protein" validate:"omitempty,min=0"`
		Carbs       *float64 `json:"carbs" validate:"omitempty,min=0"`
		Fats        *float64 `json:"fats" validate:"omitempty,min=0"`
		Fiber       *float64 `json:"fiber" validate:"omitempty,min=0"`
		Sugar       *float64 `json:"sugar" validate:"omitempty,min=0"`
		ServingSize string   `json:"serving_size" validate:"omitempty"`
		Notes       string   `json:"notes" validate:"omitempty"`
	}

	UploadMealPhotoRequest struct {
		MealType string                `json:"meal_type" form:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		Notes    string                `json:"notes" form:"notes"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MealResponse struct {
		ID          string    `json:"id"`
		LoggedAt    time.Time `json:"logged_at"`
		MealType    string    `json:"meal_type"`
		FoodItems   []string  `json:"food_items"`
		Calories    int       `json:"calories"`
		Protein     float64   `json:"protein"`
		Carbs       float64   `json:"carbs"`
		Fats        float64   `json:"fats"`
		Fiber       float64   `json:"fiber"`
		Sugar       float64   `json:"sugar"`
		ServingSize string    `json:"serving_size,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		Confidence  string    `json:"confidence,omitempty"`
		Notes       string    `json:"notes,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// FoodAnalysis is the nutrition estimate the vision model returns for
	// a single meal photo.
	FoodAnalysis struct {
		FoodItems   []string `json:"foodItems"`
		Calories    int      `json:"totalCalories"`
		Protein     float64  `json:"protein"`
		Carbs       float64  `json:"carbs"`
		Fats        float64  `json:"fats"`
		Fiber       float64  `json:"fiber"`
		Sugar       float64  `json:"sugar"`
		ServingSize string   `json:"servingSize"`
		Confidence  string   `json:"confidence"`
		Notes       string   `json:"notes"`
	}
)
