package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDashboard    = "dashboard retrieved successfully"
	MessageSuccessGetPeriodStats  = "period statistics retrieved successfully"
	MessageSuccessGetWeeklySeries = "weekly series retrieved successfully"
	MessageSuccessGetStreak       = "streak retrieved successfully"
	MessageSuccessGetMacros       = "macro distribution retrieved successfully"

	MessageFailedGetDashboard    = "failed to retrieve dashboard"
	MessageFailedGetPeriodStats  = "failed to retrieve period statistics"
	MessageFailedGetWeeklySeries = "failed to retrieve weekly series"
	MessageFailedGetStreak       = "failed to retrieve streak"
	MessageFailedGetMacros       = "failed to retrieve macro distribution"

	// ErrInvalidPeriod is returned for any period token other than day,
	// week or month. Unknown tokens are never defaulted.
	ErrInvalidPeriod = errors.New("invalid period: must be day, week or month")
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a period token from the query string.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(s), nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Defaults applied when a user has no explicit goal set.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 150.0
	DefaultCarbsGoal   = 200.0
	DefaultFatsGoal    = 65.0
	DefaultWaterGoal   = 8
)

// Calories per gram of each macronutrient.
const (
	CaloriesPerGramProtein = 4
	CaloriesPerGramCarbs   = 4
	CaloriesPerGramFat     = 9
)

type (
	Goals struct {
		Calories int     `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
		Water    int     `json:"water"`
	}

	DashboardToday struct {
		Calories       int     `json:"calories"`
		Protein        float64 `json:"protein"`
		Carbs          float64 `json:"carbs"`
		Fats           float64 `json:"fats"`
		Water          int     `json:"water"`
		Meals          int     `json:"meals"`
		Exercises      int     `json:"exercises"`
		CaloriesBurned int     `json:"calories_burned"`
		NetCalories    int     `json:"net_calories"`
	}

	DashboardResponse struct {
		Goals  Goals           `json:"goals"`
		Today  DashboardToday  `json:"today"`
		Weight *WeightResponse `json:"weight"` // nil when no weight logged yet
	}

	PeriodStatsResponse struct {
		Period           Period    `json:"period"`
		StartDate        time.Time `json:"start_date"`
		EndDate          time.Time `json:"end_date"`
		TotalCalories    int       `json:"total_calories"`
		TotalProtein     float64   `json:"total_protein"`
		TotalCarbs       float64   `json:"total_carbs"`
		TotalFats        float64   `json:"total_fats"`
		TotalFiber       float64   `json:"total_fiber"`
		CaloriesBurned   int       `json:"calories_burned"`
		NetCalories      int       `json:"net_calories"`
		AvgDailyCalories int       `json:"avg_daily_calories"`
		AvgDailyProtein  int       `json:"avg_daily_protein"`
		AvgDailyCarbs    int       `json:"avg_daily_carbs"`
		AvgDailyFats     int       `json:"avg_daily_fats"`
		TotalWater       int       `json:"total_water_glasses"`
		AvgDailyWater    int       `json:"avg_daily_water"`
		MealCount        int       `json:"meal_count"`
		ExerciseCount    int       `json:"exercise_count"`
		Goals            Goals     `json:"goals"`
	}

	MacroTotals struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fats    float64 `json:"fats"`
	}

	MacroShare struct {
		Calories float64 `json:"calories"`
		Percent  float64 `json:"percent"`
	}

	MacroDistributionResponse struct {
		Protein       MacroShare `json:"protein"`
		Carbs         MacroShare `json:"carbs"`
		Fats          MacroShare `json:"fats"`
		TotalCalories float64    `json:"total_calories"`
	}

	MealDaySummary struct {
		Date     string  `json:"date"`
		Calories int     `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	}

	ExerciseDaySummary struct {
		Date           string `json:"date"`
		CaloriesBurned int    `json:"calories_burned"`
		DurationMin    int    `json:"duration_min"`
	}

	WaterDaySummary struct {
		Date    string `json:"date"`
		Glasses int    `json:"glasses"`
	}

	WeightDaySummary struct {
		Date   string  `json:"date"`
		Weight float64 `json:"weight"`
	}

	// WeeklySeriesResponse is sparse: days without records are omitted,
	// not zero-filled. Consumers treat absence as "no data".
	WeeklySeriesResponse struct {
		Meals     []MealDaySummary     `json:"meals"`
		Exercises []ExerciseDaySummary `json:"exercises"`
		Water     []WaterDaySummary    `json:"water"`
		Weight    []WeightDaySummary   `json:"weight"`
	}

	StreakResponse struct {
		StreakDays int `json:"streak_days"`
	}
)
