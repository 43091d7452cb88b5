package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	LoggedAt    time.Time `gorm:"index" json:"logged_at"`
	MealType    string    `json:"meal_type"` // breakfast, lunch, dinner, snack
	FoodItems   []string  `gorm:"serializer:json" json:"food_items"`
	Calories    int       `json:"calories"`
	Protein     float64   `json:"protein"` // grams
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	Fiber       float64   `json:"fiber"`
	Sugar       float64   `json:"sugar"`
	ServingSize string    `json:"serving_size,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Confidence  string    `json:"confidence,omitempty"` // high, medium, low
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
