package domain

import (
	"errors"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetMe         = "user profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessVerifyEmail   = "email verified successfully"
	MessageSuccessSendVerify    = "verification email sent"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetMe         = "failed to retrieve user profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedVerifyEmail   = "failed to verify email"
	MessageFailedSendVerify    = "failed to send verification email"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrAccountNotVerified = errors.New("account not verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		Name             string   `json:"name" validate:"omitempty"`
		Age              int      `json:"age" validate:"omitempty,min=1,max=120"`
		Gender           string   `json:"gender" validate:"omitempty,oneof=male female other"`
		HeightCm         float64  `json:"height_cm" validate:"omitempty,gt=0"`
		TargetWeight     float64  `json:"target_weight" validate:"omitempty,gt=0"`
		DailyCalorieGoal int      `json:"daily_calorie_goal" validate:"omitempty,gt=0"`
		DailyProteinGoal *float64 `json:"daily_protein_goal" validate:"omitempty"`
		DailyCarbsGoal   *float64 `json:"daily_carbs_goal" validate:"omitempty"`
		DailyFatsGoal    *float64 `json:"daily_fats_goal" validate:"omitempty"`
		DailyWaterGoal   int      `json:"daily_water_goal" validate:"omitempty,gt=0"`
	}

	UserResponse struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Email        string  `json:"email"`
		Verified     bool    `json:"verified"`
		Age          int     `json:"age,omitempty"`
		Gender       string  `json:"gender,omitempty"`
		HeightCm     float64 `json:"height_cm,omitempty"`
		TargetWeight float64 `json:"target_weight,omitempty"`
		Goals        Goals   `json:"goals"`
	}
)
