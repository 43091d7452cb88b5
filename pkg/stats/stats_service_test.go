package stats

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStatsRepo struct {
	meals        []*entities.MealEntry
	exercises    []*entities.ExerciseEntry
	water        []*entities.WaterEntry
	weights      []*entities.WeightEntry
	mealDates    []time.Time
	latestWeight *entities.WeightEntry
	goals        domain.Goals
	err          error
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func (f *fakeStatsRepo) ListMeals(_ context.Context, _ string, start, end time.Time) ([]*entities.MealEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.MealEntry
	for _, m := range f.meals {
		if inRange(m.LoggedAt, start, end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) ListExercises(_ context.Context, _ string, start, end time.Time) ([]*entities.ExerciseEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.ExerciseEntry
	for _, e := range f.exercises {
		if inRange(e.LoggedAt, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) ListWater(_ context.Context, _ string, start, end time.Time) ([]*entities.WaterEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.WaterEntry
	for _, w := range f.water {
		if inRange(w.EntryDate, start, end) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) ListWeights(_ context.Context, _ string, start, end time.Time) ([]*entities.WeightEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.WeightEntry
	for _, w := range f.weights {
		if inRange(w.EntryDate, start, end) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) ListMealDates(_ context.Context, _ string) ([]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mealDates, nil
}

func (f *fakeStatsRepo) GetLatestWeight(_ context.Context, _ string) (*entities.WeightEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.latestWeight, nil
}

func (f *fakeStatsRepo) GetGoals(_ context.Context, _ string) (domain.Goals, error) {
	if f.err != nil {
		return domain.Goals{}, f.err
	}
	return f.goals, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func defaultGoals() domain.Goals {
	return domain.Goals{
		Calories: domain.DefaultCalorieGoal,
		Protein:  domain.DefaultProteinGoal,
		Carbs:    domain.DefaultCarbsGoal,
		Fats:     domain.DefaultFatsGoal,
		Water:    domain.DefaultWaterGoal,
	}
}

func TestGetDashboardTotals(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		goals: defaultGoals(),
		meals: []*entities.MealEntry{
			{LoggedAt: asOf.Add(-10 * time.Hour), Calories: 450, Protein: 30, Carbs: 40, Fats: 15},
			{LoggedAt: asOf.Add(-2 * time.Hour), Calories: 600, Protein: 25, Carbs: 70, Fats: 20},
			{LoggedAt: asOf.AddDate(0, 0, -1), Calories: 9999}, // yesterday, excluded
		},
		exercises: []*entities.ExerciseEntry{
			{LoggedAt: asOf.Add(-5 * time.Hour), CaloriesBurned: 300},
		},
		water: []*entities.WaterEntry{
			{EntryDate: day(2024, 1, 10), Glasses: 5},
		},
		latestWeight: &entities.WeightEntry{EntryDate: day(2024, 1, 9), Weight: 72.5, Unit: "kg"},
	}
	svc := NewStatsService(repo)

	res, err := svc.GetDashboard(context.Background(), "u1", asOf)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if res.Today.Calories != 1050 {
		t.Fatalf("calories = %d, want 1050", res.Today.Calories)
	}
	if res.Today.Protein != 55 || res.Today.Carbs != 110 || res.Today.Fats != 35 {
		t.Fatalf("macros = %v/%v/%v", res.Today.Protein, res.Today.Carbs, res.Today.Fats)
	}
	if res.Today.Meals != 2 {
		t.Fatalf("meal count = %d, want 2", res.Today.Meals)
	}
	if res.Today.Water != 5 {
		t.Fatalf("water = %d, want 5", res.Today.Water)
	}
	if res.Today.NetCalories != 750 {
		t.Fatalf("net calories = %d, want 750", res.Today.NetCalories)
	}
	if res.Weight == nil || res.Weight.Weight != 72.5 {
		t.Fatalf("weight = %+v, want 72.5", res.Weight)
	}
	if res.Goals.Calories != domain.DefaultCalorieGoal {
		t.Fatalf("goal calories = %d", res.Goals.Calories)
	}
}

func TestGetDashboardNegativeNetCalories(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		goals: defaultGoals(),
		meals: []*entities.MealEntry{
			{LoggedAt: asOf.Add(-time.Hour), Calories: 200},
		},
		exercises: []*entities.ExerciseEntry{
			{LoggedAt: asOf.Add(-time.Hour), CaloriesBurned: 700},
		},
	}
	svc := NewStatsService(repo)

	res, err := svc.GetDashboard(context.Background(), "u1", asOf)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if res.Today.NetCalories != -500 {
		t.Fatalf("net calories = %d, want -500", res.Today.NetCalories)
	}
	if res.Weight != nil {
		t.Fatalf("weight = %+v, want nil", res.Weight)
	}
}

func TestGetDashboardIncludesEndOfDayInstant(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	lastInstant := day(2024, 1, 11).Add(-time.Nanosecond)
	repo := &fakeStatsRepo{
		goals: defaultGoals(),
		meals: []*entities.MealEntry{
			{LoggedAt: lastInstant, Calories: 100},
		},
	}
	svc := NewStatsService(repo)

	res, err := svc.GetDashboard(context.Background(), "u1", asOf)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if res.Today.Calories != 100 {
		t.Fatalf("calories = %d, want 100", res.Today.Calories)
	}
}

func TestGetPeriodStatsDay(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		goals: defaultGoals(),
		meals: []*entities.MealEntry{
			{LoggedAt: asOf.Add(-6 * time.Hour), Calories: 500, Protein: 35.4},
			{LoggedAt: asOf.Add(-1 * time.Hour), Calories: 700, Protein: 20.2},
		},
	}
	svc := NewStatsService(repo)

	res, err := svc.GetPeriodStats(context.Background(), "u1", domain.PeriodDay, asOf)
	if err != nil {
		t.Fatalf("GetPeriodStats: %v", err)
	}
	if res.TotalCalories != 1200 {
		t.Fatalf("total calories = %d, want 1200", res.TotalCalories)
	}
	// window shorter than a day still divides by 1
	if res.AvgDailyCalories != 1200 {
		t.Fatalf("avg calories = %d, want 1200", res.AvgDailyCalories)
	}
	if res.AvgDailyProtein != 56 {
		t.Fatalf("avg protein = %d, want 56", res.AvgDailyProtein)
	}
	if res.MealCount != 2 {
		t.Fatalf("meal count = %d, want 2", res.MealCount)
	}
}

func TestGetPeriodStatsWeekAverages(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		goals: defaultGoals(),
		meals: []*entities.MealEntry{
			{LoggedAt: asOf.Add(-1 * 24 * time.Hour), Calories: 2000, Protein: 100},
			{LoggedAt: asOf.Add(-3 * 24 * time.Hour), Calories: 1500, Protein: 80},
			{LoggedAt: asOf.Add(-8 * 24 * time.Hour), Calories: 9999}, // outside window
		},
		exercises: []*entities.ExerciseEntry{
			{LoggedAt: asOf.Add(-2 * 24 * time.Hour), CaloriesBurned: 400},
		},
		water: []*entities.WaterEntry{
			{EntryDate: day(2024, 1, 8), Glasses: 6},
			{EntryDate: day(2024, 1, 9), Glasses: 8},
		},
	}
	svc := NewStatsService(repo)

	res, err := svc.GetPeriodStats(context.Background(), "u1", domain.PeriodWeek, asOf)
	if err != nil {
		t.Fatalf("GetPeriodStats: %v", err)
	}
	if res.TotalCalories != 3500 {
		t.Fatalf("total calories = %d, want 3500", res.TotalCalories)
	}
	if res.NetCalories != 3100 {
		t.Fatalf("net calories = %d, want 3100", res.NetCalories)
	}
	// 3500 / 7 = 500
	if res.AvgDailyCalories != 500 {
		t.Fatalf("avg calories = %d, want 500", res.AvgDailyCalories)
	}
	// 180 / 7 = 25.71 rounds to 26
	if res.AvgDailyProtein != 26 {
		t.Fatalf("avg protein = %d, want 26", res.AvgDailyProtein)
	}
	if res.TotalWater != 14 || res.AvgDailyWater != 2 {
		t.Fatalf("water total/avg = %d/%d, want 14/2", res.TotalWater, res.AvgDailyWater)
	}
	if !res.StartDate.Equal(asOf.Add(-7 * 24 * time.Hour)) {
		t.Fatalf("start = %v", res.StartDate)
	}
}

func TestGetPeriodStatsInclusiveEndBoundary(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		goals: defaultGoals(),
		meals: []*entities.MealEntry{
			{LoggedAt: asOf, Calories: 100},                     // exactly at the end instant
			{LoggedAt: asOf.Add(time.Nanosecond), Calories: 50}, // one instant after
		},
	}
	svc := NewStatsService(repo)

	res, err := svc.GetPeriodStats(context.Background(), "u1", domain.PeriodDay, asOf)
	if err != nil {
		t.Fatalf("GetPeriodStats: %v", err)
	}
	if res.TotalCalories != 100 {
		t.Fatalf("total calories = %d, want 100", res.TotalCalories)
	}
}

func TestGetPeriodStatsMonthStartsAtFirst(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	repo := &fakeStatsRepo{goals: defaultGoals()}
	svc := NewStatsService(repo)

	res, err := svc.GetPeriodStats(context.Background(), "u1", domain.PeriodMonth, asOf)
	if err != nil {
		t.Fatalf("GetPeriodStats: %v", err)
	}
	if !res.StartDate.Equal(day(2024, 3, 1)) {
		t.Fatalf("start = %v, want 2024-03-01", res.StartDate)
	}
	if res.AvgDailyCalories != 0 {
		t.Fatalf("avg calories = %d, want 0", res.AvgDailyCalories)
	}
}

func TestGetPeriodStatsInvalidPeriod(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&fakeStatsRepo{goals: defaultGoals()})

	_, err := svc.GetPeriodStats(context.Background(), "u1", domain.Period("year"), time.Now())
	if !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Fatalf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestGetPeriodStatsStoreError(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&fakeStatsRepo{err: errors.New("connection refused")})

	_, err := svc.GetPeriodStats(context.Background(), "u1", domain.PeriodWeek, time.Now())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestGetWeeklySeriesSparse(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 1, 10, 21, 0, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		goals: defaultGoals(),
		meals: []*entities.MealEntry{
			{LoggedAt: day(2024, 1, 8).Add(8 * time.Hour), Calories: 400, Protein: 20},
			{LoggedAt: day(2024, 1, 8).Add(19 * time.Hour), Calories: 600, Protein: 30},
			{LoggedAt: day(2024, 1, 10).Add(12 * time.Hour), Calories: 550, Protein: 40},
		},
		water: []*entities.WaterEntry{
			{EntryDate: day(2024, 1, 9), Glasses: 7},
		},
		weights: []*entities.WeightEntry{
			{EntryDate: day(2024, 1, 7), Weight: 73},
			{EntryDate: day(2024, 1, 10), Weight: 72.4},
		},
	}
	svc := NewStatsService(repo)

	res, err := svc.GetWeeklySeries(context.Background(), "u1", asOf)
	if err != nil {
		t.Fatalf("GetWeeklySeries: %v", err)
	}
	// days without meals are absent, not zero-filled
	if len(res.Meals) != 2 {
		t.Fatalf("meal days = %d, want 2", len(res.Meals))
	}
	if res.Meals[0].Date != "2024-01-08" || res.Meals[0].Calories != 1000 {
		t.Fatalf("day[0] = %+v", res.Meals[0])
	}
	if res.Meals[1].Date != "2024-01-10" || res.Meals[1].Calories != 550 {
		t.Fatalf("day[1] = %+v", res.Meals[1])
	}
	if len(res.Water) != 1 || res.Water[0].Glasses != 7 {
		t.Fatalf("water = %+v", res.Water)
	}
	if len(res.Weight) != 2 || res.Weight[1].Weight != 72.4 {
		t.Fatalf("weight = %+v", res.Weight)
	}
	if len(res.Exercises) != 0 {
		t.Fatalf("exercises = %+v, want empty", res.Exercises)
	}
}

func TestGetStreak(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		day(2024, 1, 10),
		day(2024, 1, 9),
		day(2024, 1, 8),
		day(2024, 1, 5),
	}
	svc := NewStatsService(&fakeStatsRepo{mealDates: dates})

	res, err := svc.GetStreak(context.Background(), "u1", day(2024, 1, 10).Add(15*time.Hour))
	if err != nil {
		t.Fatalf("GetStreak: %v", err)
	}
	if res.StreakDays != 3 {
		t.Fatalf("streak = %d, want 3", res.StreakDays)
	}
}

func TestGetStreakBrokenByMissedDay(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		day(2024, 1, 10),
		day(2024, 1, 9),
		day(2024, 1, 8),
	}
	svc := NewStatsService(&fakeStatsRepo{mealDates: dates})

	// no meal logged on the 11th, streak resets
	res, err := svc.GetStreak(context.Background(), "u1", day(2024, 1, 11).Add(9*time.Hour))
	if err != nil {
		t.Fatalf("GetStreak: %v", err)
	}
	if res.StreakDays != 0 {
		t.Fatalf("streak = %d, want 0", res.StreakDays)
	}
}

func TestGetStreakNoEntries(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&fakeStatsRepo{})

	res, err := svc.GetStreak(context.Background(), "u1", time.Now())
	if err != nil {
		t.Fatalf("GetStreak: %v", err)
	}
	if res.StreakDays != 0 {
		t.Fatalf("streak = %d, want 0", res.StreakDays)
	}
}

func TestMacroDistribution(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&fakeStatsRepo{})

	res := svc.MacroDistribution(domain.MacroTotals{Protein: 50, Carbs: 100, Fats: 30})
	if res.TotalCalories != 870 {
		t.Fatalf("total = %v, want 870", res.TotalCalories)
	}
	if res.Protein.Calories != 200 || res.Carbs.Calories != 400 || res.Fats.Calories != 270 {
		t.Fatalf("calories = %v/%v/%v", res.Protein.Calories, res.Carbs.Calories, res.Fats.Calories)
	}
	sum := res.Protein.Percent + res.Carbs.Percent + res.Fats.Percent
	if sum < 99.9 || sum > 100.1 {
		t.Fatalf("percent sum = %v, want ~100", sum)
	}
}

func TestMacroDistributionZeroTotal(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&fakeStatsRepo{})

	res := svc.MacroDistribution(domain.MacroTotals{})
	if res.TotalCalories != 0 {
		t.Fatalf("total = %v, want 0", res.TotalCalories)
	}
	if res.Protein.Percent != 0 || res.Carbs.Percent != 0 || res.Fats.Percent != 0 {
		t.Fatalf("percents = %v/%v/%v, want all 0", res.Protein.Percent, res.Carbs.Percent, res.Fats.Percent)
	}
}
