package scheduler

import (
	"NutriSnap-Backend/internal/utils"
	"NutriSnap-Backend/internal/utils/mailing"
	"NutriSnap-Backend/pkg/stats"
	"NutriSnap-Backend/pkg/user"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Scheduler struct {
	cron           *cron.Cron
	userRepository user.UserRepository
	statsService   stats.StatsService
}

func NewScheduler(userRepository user.UserRepository, statsService stats.StatsService) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		userRepository: userRepository,
		statsService:   statsService,
	}
}

// Start registers the daily digest job and runs the cron loop in its
// own goroutine. The schedule comes from DIGEST_CRON, evenings by default.
func (s *Scheduler) Start() error {
	spec := utils.GetConfig("DIGEST_CRON")
	if spec == "" {
		spec = "0 20 * * *"
	}

	if _, err := s.cron.AddFunc(spec, s.SendDailyDigest); err != nil {
		return fmt.Errorf("failed to schedule daily digest: %w", err)
	}

	s.cron.Start()
	utils.Logger.Info("scheduler_started", zap.String("digest_cron", spec))
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// SendDailyDigest mails every verified user a summary of today's intake
// against their goals. Per-user failures are logged and skipped.
func (s *Scheduler) SendDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	users, err := s.userRepository.ListVerifiedUsers(ctx)
	if err != nil {
		utils.Logger.Error("digest_list_users_failed", zap.Error(err))
		return
	}

	now := time.Now()
	sent := 0
	for _, u := range users {
		dashboard, err := s.statsService.GetDashboard(ctx, u.ID.String(), now)
		if err != nil {
			utils.Logger.Warn("digest_dashboard_failed",
				zap.String("user_id", u.ID.String()), zap.Error(err))
			continue
		}

		subject := "Your NutriSnap daily summary"
		body := fmt.Sprintf(
			"Hi %s,<br><br>"+
				"Here is your day at a glance:<br>"+
				"Calories: %d / %d kcal<br>"+
				"Protein: %.1f / %.1f g<br>"+
				"Water: %d / %d glasses<br>"+
				"Meals logged: %d<br><br>"+
				"Keep it up!",
			u.Name,
			dashboard.Today.Calories, dashboard.Goals.Calories,
			dashboard.Today.Protein, dashboard.Goals.Protein,
			dashboard.Today.Water, dashboard.Goals.Water,
			dashboard.Today.Meals,
		)

		if err := mailing.SendMail(u.Email, subject, body); err != nil {
			utils.Logger.Warn("digest_mail_failed",
				zap.String("user_id", u.ID.String()), zap.Error(err))
			continue
		}
		sent++
	}

	utils.Logger.Info("digest_complete",
		zap.Int("sent", sent), zap.Int("users", len(users)))
}
