package handlers

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/internal/api/presenters"
	"NutriSnap-Backend/pkg/tracker"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TrackerHandler interface {
		LogWeight(c *fiber.Ctx) error
		GetWeightHistory(c *fiber.Ctx) error
		LogWater(c *fiber.Ctx) error
		GetWater(c *fiber.Ctx) error
		LogExercise(c *fiber.Ctx) error
		GetExercises(c *fiber.Ctx) error
		DeleteExercise(c *fiber.Ctx) error
	}

	trackerHandler struct {
		trackerService tracker.TrackerService
		validator      *validator.Validate
	}
)

func NewTrackerHandler(trackerService tracker.TrackerService, validator *validator.Validate) TrackerHandler {
	return &trackerHandler{
		trackerService: trackerService,
		validator:      validator,
	}
}

func (h *trackerHandler) LogWeight(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddWeightRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWeight, err)
	}

	res, err := h.trackerService.LogWeight(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWeight, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWeight)
}

func (h *trackerHandler) GetWeightHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.trackerService.GetWeightHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeights, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeights)
}

func (h *trackerHandler) LogWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddWaterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWater, err)
	}

	res, err := h.trackerService.LogWater(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWater, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWater)
}

func (h *trackerHandler) GetWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWater, domain.ErrInvalidEntryDate)
		}
		date = parsed
	} else {
		y, m, d := date.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	res, err := h.trackerService.GetWater(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWater, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWater)
}

func (h *trackerHandler) LogExercise(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddExerciseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExercise, err)
	}

	res, err := h.trackerService.LogExercise(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExercise, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddExercise)
}

func (h *trackerHandler) GetExercises(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var start, end *time.Time
	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExercises, domain.ErrInvalidEntryDate)
		}
		start = &parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExercises, domain.ErrInvalidEntryDate)
		}
		parsed = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &parsed
	}

	res, err := h.trackerService.GetExercises(c.Context(), userID, start, end)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExercises, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExercises)
}

func (h *trackerHandler) DeleteExercise(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	exerciseID := c.Params("id")

	if err := h.trackerService.DeleteExercise(c.Context(), exerciseID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDelExercise, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDelExercise)
}
