package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Verified bool      `json:"verified"`

	// Demographics used for goal suggestions on the client.
	Age          int     `json:"age,omitempty"`
	Gender       string  `json:"gender,omitempty"`
	HeightCm     float64 `json:"height_cm,omitempty"`
	TargetWeight float64 `json:"target_weight,omitempty"`

	// Daily goals. Zero means "not set"; readers fall back to defaults.
	DailyCalorieGoal int     `json:"daily_calorie_goal"`
	DailyProteinGoal float64 `json:"daily_protein_goal"`
	DailyCarbsGoal   float64 `json:"daily_carbs_goal"`
	DailyFatsGoal    float64 `json:"daily_fats_goal"`
	DailyWaterGoal   int     `json:"daily_water_goal"`

	Meals     []*MealEntry     `gorm:"foreignKey:UserID"`
	Weights   []*WeightEntry   `gorm:"foreignKey:UserID"`
	Waters    []*WaterEntry    `gorm:"foreignKey:UserID"`
	Exercises []*ExerciseEntry `gorm:"foreignKey:UserID"`
	Timestamp
}
