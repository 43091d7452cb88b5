package entities

import (
	"time"

	"github.com/google/uuid"
)

// WeightEntry holds one weight measurement per user per calendar day.
// A second write on the same day overwrites the existing row.
type WeightEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index:idx_weight_user_date,unique" json:"user_id"`
	EntryDate time.Time `gorm:"type:date;index:idx_weight_user_date,unique" json:"entry_date"`
	Weight    float64   `json:"weight"`
	Unit      string    `json:"unit"` // kg or lbs
	Notes     string    `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// WaterEntry accumulates glasses per user per calendar day. Repeated
// logs on the same day increment the running total.
type WaterEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index:idx_water_user_date,unique" json:"user_id"`
	EntryDate time.Time `gorm:"type:date;index:idx_water_user_date,unique" json:"entry_date"`
	Glasses   int       `json:"glasses"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type ExerciseEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`
	LoggedAt       time.Time `gorm:"index" json:"logged_at"`
	Type           string    `json:"type"` // cardio, strength, sports, other
	Name           string    `json:"name"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned int       `json:"calories_burned"`
	DistanceKm     float64   `json:"distance_km,omitempty"`
	Notes          string    `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
