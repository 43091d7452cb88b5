package stats

import (
	"NutriSnap-Backend/domain"
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

type (
	// StatsService derives goal-relative summaries from raw logged
	// entries. It holds no state beyond the injected repository and
	// never mutates stored entities.
	StatsService interface {
		GetDashboard(ctx context.Context, userID string, asOf time.Time) (domain.DashboardResponse, error)
		GetPeriodStats(ctx context.Context, userID string, period domain.Period, asOf time.Time) (domain.PeriodStatsResponse, error)
		GetWeeklySeries(ctx context.Context, userID string, asOf time.Time) (domain.WeeklySeriesResponse, error)
		GetStreak(ctx context.Context, userID string, asOf time.Time) (domain.StreakResponse, error)
		MacroDistribution(totals domain.MacroTotals) domain.MacroDistributionResponse
	}

	statsService struct {
		statsRepository StatsRepository
	}
)

func NewStatsService(statsRepository StatsRepository) StatsService {
	return &statsService{statsRepository: statsRepository}
}

// GetDashboard assembles today's totals, the user's goals and the latest
// weight entry. Reads are sequential round trips against the store; a
// concurrent write may land between them, which is acceptable: the
// contract is best-effort consistent as of call time.
func (s *statsService) GetDashboard(ctx context.Context, userID string, asOf time.Time) (domain.DashboardResponse, error) {
	dayStart := startOfDay(asOf)
	dayEnd := endOfDay(asOf)

	goals, err := s.statsRepository.GetGoals(ctx, userID)
	if err != nil {
		return domain.DashboardResponse{}, storeErr(err)
	}

	meals, err := s.statsRepository.ListMeals(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return domain.DashboardResponse{}, storeErr(err)
	}

	water, err := s.statsRepository.ListWater(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return domain.DashboardResponse{}, storeErr(err)
	}

	exercises, err := s.statsRepository.ListExercises(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return domain.DashboardResponse{}, storeErr(err)
	}

	latestWeight, err := s.statsRepository.GetLatestWeight(ctx, userID)
	if err != nil {
		return domain.DashboardResponse{}, storeErr(err)
	}

	today := domain.DashboardToday{Meals: len(meals), Exercises: len(exercises)}
	for _, m := range meals {
		today.Calories += m.Calories
		today.Protein += m.Protein
		today.Carbs += m.Carbs
		today.Fats += m.Fats
	}
	for _, e := range exercises {
		today.CaloriesBurned += e.CaloriesBurned
	}
	for _, w := range water {
		today.Water += w.Glasses
	}
	today.NetCalories = today.Calories - today.CaloriesBurned

	res := domain.DashboardResponse{Goals: goals, Today: today}
	if latestWeight != nil {
		res.Weight = &domain.WeightResponse{
			ID:        latestWeight.ID.String(),
			EntryDate: latestWeight.EntryDate,
			Weight:    latestWeight.Weight,
			Unit:      latestWeight.Unit,
			Notes:     latestWeight.Notes,
		}
	}
	return res, nil
}

func (s *statsService) GetPeriodStats(ctx context.Context, userID string, period domain.Period, asOf time.Time) (domain.PeriodStatsResponse, error) {
	start, err := periodStart(period, asOf)
	if err != nil {
		return domain.PeriodStatsResponse{}, err
	}
	end := asOf

	meals, err := s.statsRepository.ListMeals(ctx, userID, start, end)
	if err != nil {
		return domain.PeriodStatsResponse{}, storeErr(err)
	}

	exercises, err := s.statsRepository.ListExercises(ctx, userID, start, end)
	if err != nil {
		return domain.PeriodStatsResponse{}, storeErr(err)
	}

	water, err := s.statsRepository.ListWater(ctx, userID, start, end)
	if err != nil {
		return domain.PeriodStatsResponse{}, storeErr(err)
	}

	goals, err := s.statsRepository.GetGoals(ctx, userID)
	if err != nil {
		return domain.PeriodStatsResponse{}, storeErr(err)
	}

	res := domain.PeriodStatsResponse{
		Period:        period,
		StartDate:     start,
		EndDate:       end,
		MealCount:     len(meals),
		ExerciseCount: len(exercises),
		Goals:         goals,
	}
	for _, m := range meals {
		res.TotalCalories += m.Calories
		res.TotalProtein += m.Protein
		res.TotalCarbs += m.Carbs
		res.TotalFats += m.Fats
		res.TotalFiber += m.Fiber
	}
	for _, e := range exercises {
		res.CaloriesBurned += e.CaloriesBurned
	}
	for _, w := range water {
		res.TotalWater += w.Glasses
	}
	res.NetCalories = res.TotalCalories - res.CaloriesBurned

	// The denominator never collapses to zero, even when the window does.
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	res.AvgDailyCalories = roundDiv(float64(res.TotalCalories), days)
	res.AvgDailyProtein = roundDiv(res.TotalProtein, days)
	res.AvgDailyCarbs = roundDiv(res.TotalCarbs, days)
	res.AvgDailyFats = roundDiv(res.TotalFats, days)
	res.AvgDailyWater = roundDiv(float64(res.TotalWater), days)

	return res, nil
}

// GetWeeklySeries returns per-day summaries for the trailing 7 calendar
// days ending at asOf. Days without records are omitted; consumers treat
// absence as "no data", not zero.
func (s *statsService) GetWeeklySeries(ctx context.Context, userID string, asOf time.Time) (domain.WeeklySeriesResponse, error) {
	start := startOfDay(asOf.AddDate(0, 0, -6))
	end := endOfDay(asOf)

	meals, err := s.statsRepository.ListMeals(ctx, userID, start, end)
	if err != nil {
		return domain.WeeklySeriesResponse{}, storeErr(err)
	}

	exercises, err := s.statsRepository.ListExercises(ctx, userID, start, end)
	if err != nil {
		return domain.WeeklySeriesResponse{}, storeErr(err)
	}

	water, err := s.statsRepository.ListWater(ctx, userID, start, end)
	if err != nil {
		return domain.WeeklySeriesResponse{}, storeErr(err)
	}

	weights, err := s.statsRepository.ListWeights(ctx, userID, start, end)
	if err != nil {
		return domain.WeeklySeriesResponse{}, storeErr(err)
	}

	res := domain.WeeklySeriesResponse{
		Meals:     make([]domain.MealDaySummary, 0),
		Exercises: make([]domain.ExerciseDaySummary, 0),
		Water:     make([]domain.WaterDaySummary, 0),
		Weight:    make([]domain.WeightDaySummary, 0),
	}

	mealDays := map[string]*domain.MealDaySummary{}
	for _, m := range meals {
		day := dayKey(m.LoggedAt)
		sum, ok := mealDays[day]
		if !ok {
			sum = &domain.MealDaySummary{Date: day}
			mealDays[day] = sum
		}
		sum.Calories += m.Calories
		sum.Protein += m.Protein
		sum.Carbs += m.Carbs
		sum.Fats += m.Fats
	}
	for _, day := range sortedKeys(mealDays) {
		res.Meals = append(res.Meals, *mealDays[day])
	}

	exerciseDays := map[string]*domain.ExerciseDaySummary{}
	for _, e := range exercises {
		day := dayKey(e.LoggedAt)
		sum, ok := exerciseDays[day]
		if !ok {
			sum = &domain.ExerciseDaySummary{Date: day}
			exerciseDays[day] = sum
		}
		sum.CaloriesBurned += e.CaloriesBurned
		sum.DurationMin += e.DurationMin
	}
	for _, day := range sortedKeys(exerciseDays) {
		res.Exercises = append(res.Exercises, *exerciseDays[day])
	}

	for _, w := range water {
		res.Water = append(res.Water, domain.WaterDaySummary{
			Date:    dayKey(w.EntryDate),
			Glasses: w.Glasses,
		})
	}

	for _, w := range weights {
		res.Weight = append(res.Weight, domain.WeightDaySummary{
			Date:   dayKey(w.EntryDate),
			Weight: w.Weight,
		})
	}

	return res, nil
}

// GetStreak counts consecutive calendar days with at least one logged
// meal, walking backward from asOf. A day without a meal at asOf itself
// means the streak is 0.
func (s *statsService) GetStreak(ctx context.Context, userID string, asOf time.Time) (domain.StreakResponse, error) {
	dates, err := s.statsRepository.ListMealDates(ctx, userID)
	if err != nil {
		return domain.StreakResponse{}, storeErr(err)
	}

	asOfDay := startOfDay(asOf)
	streak := 0
	for _, d := range dates {
		if daysBetween(startOfDay(d), asOfDay) == streak {
			streak++
		} else {
			break
		}
	}
	return domain.StreakResponse{StreakDays: streak}, nil
}

// MacroDistribution converts macro grams into caloric contribution and
// percentage share. All shares are 0 when total macro-calories is 0.
func (s *statsService) MacroDistribution(totals domain.MacroTotals) domain.MacroDistributionResponse {
	proteinCal := totals.Protein * domain.CaloriesPerGramProtein
	carbsCal := totals.Carbs * domain.CaloriesPerGramCarbs
	fatsCal := totals.Fats * domain.CaloriesPerGramFat
	total := proteinCal + carbsCal + fatsCal

	share := func(cal float64) domain.MacroShare {
		if total == 0 {
			return domain.MacroShare{Calories: cal, Percent: 0}
		}
		return domain.MacroShare{
			Calories: cal,
			Percent:  math.Round(cal/total*1000) / 10,
		}
	}

	return domain.MacroDistributionResponse{
		Protein:       share(proteinCal),
		Carbs:         share(carbsCal),
		Fats:          share(fatsCal),
		TotalCalories: total,
	}
}

// periodStart computes the window start for a period ending at asOf.
// Week is a rolling 7x24h window while day and month align to calendar
// boundaries.
func periodStart(period domain.Period, asOf time.Time) (time.Time, error) {
	switch period {
	case domain.PeriodDay:
		return startOfDay(asOf), nil
	case domain.PeriodWeek:
		return asOf.Add(-7 * 24 * time.Hour), nil
	case domain.PeriodMonth:
		return time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location()), nil
	default:
		return time.Time{}, domain.ErrInvalidPeriod
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// daysBetween counts whole calendar days from then to now. Both inputs
// must already be normalized to midnight; rounding absorbs DST shifts.
func daysBetween(then, now time.Time) int {
	return int(math.Round(now.Sub(then).Hours() / 24))
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// roundDiv rounds half away from zero, matching plain "round to nearest"
// semantics.
func roundDiv(total float64, days int) int {
	return int(math.Round(total / float64(days)))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
