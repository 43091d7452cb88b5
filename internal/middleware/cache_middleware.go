package middleware

import (
	"NutriSnap-Backend/internal/utils"
	"NutriSnap-Backend/internal/utils/cache"
	"NutriSnap-Backend/internal/utils/metrics"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// CacheMiddleware memoizes successful GET responses per user for the
// given duration. Entries are keyed by user, path and query string.
func CacheMiddleware(store cache.Cache, duration time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		userID, _ := c.Locals("user_id").(string)
		key := fmt.Sprintf("cache:%s:%s?%s", userID, c.Path(), string(c.Request().URI().QueryString()))

		var cached cachedResponse
		if err := store.Get(c.Context(), key, &cached); err == nil {
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			c.Set(fiber.HeaderContentType, cached.ContentType)
			return c.Status(cached.Status).Send(cached.Body)
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			utils.Logger.Warn("cache_get_failed", zap.Error(err), zap.String("key", key))
		}
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == http.StatusOK {
			entry := cachedResponse{
				Status:      c.Response().StatusCode(),
				ContentType: string(c.Response().Header.ContentType()),
				Body:        c.Response().Body(),
			}
			if err := store.Set(c.Context(), key, entry, duration); err != nil {
				utils.Logger.Warn("cache_set_failed", zap.Error(err), zap.String("key", key))
			}
		}
		return nil
	}
}

// InvalidateCache drops a user's cached responses after a successful
// write.
func InvalidateCache(store cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return c.Next()
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() < 400 {
			if userID, ok := c.Locals("user_id").(string); ok {
				pattern := fmt.Sprintf("cache:%s:*", userID)
				if err := store.DeletePattern(c.Context(), pattern); err != nil {
					utils.Logger.Warn("cache_invalidate_failed", zap.Error(err), zap.String("pattern", pattern))
				}
			}
		}
		return nil
	}
}
