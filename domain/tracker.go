package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddWeight    = "weight logged successfully"
	MessageSuccessGetWeights   = "weight history retrieved successfully"
	MessageSuccessAddWater     = "water intake logged successfully"
	MessageSuccessGetWater     = "water intake retrieved successfully"
	MessageSuccessAddExercise  = "exercise logged successfully"
	MessageSuccessGetExercises = "exercises retrieved successfully"
	MessageSuccessDelExercise  = "exercise deleted successfully"

	MessageFailedAddWeight    = "failed to log weight"
	MessageFailedGetWeights   = "failed to retrieve weight history"
	MessageFailedAddWater     = "failed to log water intake"
	MessageFailedGetWater     = "failed to retrieve water intake"
	MessageFailedAddExercise  = "failed to log exercise"
	MessageFailedGetExercises = "failed to retrieve exercises"
	MessageFailedDelExercise  = "failed to delete exercise"

	ErrExerciseNotFound   = errors.New("exercise entry not found")
	ErrInvalidEntryDate   = errors.New("invalid entry date")
	ErrInvalidWeightValue = errors.New("weight must be positive")
	ErrInvalidGlassCount  = errors.New("glass count must be positive")
)

type (
	AddWeightRequest struct {
		Date   string  `json:"date" validate:"omitempty"`
		Weight float64 `json:"weight" validate:"required,gt=0"`
		Unit   string  `json:"unit" validate:"omitempty,oneof=kg lbs"`
		Notes  string  `json:"notes"`
	}

	WeightResponse struct {
		ID        string    `json:"id"`
		EntryDate time.Time `json:"entry_date"`
		Weight    float64   `json:"weight"`
		Unit      string    `json:"unit"`
		Notes     string    `json:"notes,omitempty"`
	}

	AddWaterRequest struct {
		Date    string `json:"date" validate:"omitempty"`
		Glasses int    `json:"glasses" validate:"omitempty,min=1"`
	}

	WaterResponse struct {
		EntryDate time.Time `json:"entry_date"`
		Glasses   int       `json:"glasses"`
	}

	AddExerciseRequest struct {
		LoggedAt       string  `json:"logged_at" validate:"omitempty"`
		Type           string  `json:"type" validate:"required,oneof=cardio strength sports other"`
		Name           string  `json:"name" validate:"required"`
		DurationMin    int     `json:"duration_min" validate:"required,gt=0"`
		CaloriesBurned int     `json:"calories_burned" validate:"min=0"`
		DistanceKm     float64 `json:"distance_km" validate:"omitempty,gt=0"`
		Notes          string  `json:"notes"`
	}

	ExerciseResponse struct {
		ID             string    `json:"id"`
		LoggedAt       time.Time `json:"logged_at"`
		Type           string    `json:"type"`
		Name           string    `json:"name"`
		DurationMin    int       `json:"duration_min"`
		CaloriesBurned int       `json:"calories_burned"`
		DistanceKm     float64   `json:"distance_km,omitempty"`
		Notes          string    `json:"notes,omitempty"`
	}
)
