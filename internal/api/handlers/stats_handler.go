package handlers

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/internal/api/presenters"
	"NutriSnap-Backend/pkg/stats"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	StatsHandler interface {
		GetDashboard(c *fiber.Ctx) error
		GetPeriodStats(c *fiber.Ctx) error
		GetWeeklySeries(c *fiber.Ctx) error
		GetStreak(c *fiber.Ctx) error
		GetMacroDistribution(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
	}
)

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandler{
		statsService: statsService,
	}
}

func (h *statsHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statsService.GetDashboard(c.Context(), userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statsStatus(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *statsHandler) GetPeriodStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	period, err := domain.ParsePeriod(c.Query("period", string(domain.PeriodWeek)))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPeriodStats, err)
	}

	res, err := h.statsService.GetPeriodStats(c.Context(), userID, period, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statsStatus(err), domain.MessageFailedGetPeriodStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPeriodStats)
}

func (h *statsHandler) GetWeeklySeries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statsService.GetWeeklySeries(c.Context(), userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statsStatus(err), domain.MessageFailedGetWeeklySeries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeeklySeries)
}

func (h *statsHandler) GetStreak(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statsService.GetStreak(c.Context(), userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statsStatus(err), domain.MessageFailedGetStreak, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStreak)
}

// GetMacroDistribution converts a period's macro totals into caloric
// share per macronutrient.
func (h *statsHandler) GetMacroDistribution(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	period, err := domain.ParsePeriod(c.Query("period", string(domain.PeriodWeek)))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMacros, err)
	}

	periodStats, err := h.statsService.GetPeriodStats(c.Context(), userID, period, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statsStatus(err), domain.MessageFailedGetMacros, err)
	}

	res := h.statsService.MacroDistribution(domain.MacroTotals{
		Protein: periodStats.TotalProtein,
		Carbs:   periodStats.TotalCarbs,
		Fats:    periodStats.TotalFats,
	})

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMacros)
}

func statsStatus(err error) int {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusBadRequest
}
