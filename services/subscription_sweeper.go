package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/utils"
)

// SubscriptionSweeper closes coaching subscriptions whose end date has passed.
type SubscriptionSweeper struct {
	db     *gorm.DB
	users  *UserService
	mailer utils.Mailer
	log    *zap.Logger
}

func NewSubscriptionSweeper(db *gorm.DB, users *UserService, mailer utils.Mailer, log *zap.Logger) *SubscriptionSweeper {
	return &SubscriptionSweeper{db: db, users: users, mailer: mailer, log: log}
}

// Sweep clears the payment window of every user whose subscription ended
// before now and returns how many were closed.
func (s *SubscriptionSweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	var expired []models.User
	if err := s.db.WithContext(ctx).
		Where("payment_end_date IS NOT NULL AND payment_end_date < ?", now).
		Find(&expired).Error; err != nil {
		return 0, fmt.Errorf("find expired subscriptions: %w", err)
	}

	closed := 0
	for i := range expired {
		u := &expired[i]
		u.PaymentStartDate = nil
		u.PaymentEndDate = nil
		if err := s.users.Save(ctx, u); err != nil {
			s.log.Error("subscription not closed", zap.Uint("user_id", u.ID), zap.Error(err))
			continue
		}
		closed++
		if err := utils.SendSubscriptionExpired(ctx, s.mailer, u.Email); err != nil {
			s.log.Warn("expiry mail not sent", zap.Uint("user_id", u.ID), zap.Error(err))
		}
	}
	return closed, nil
}

// Start schedules Sweep on the cron spec and starts the scheduler.
func (s *SubscriptionSweeper) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := s.Sweep(context.Background(), time.Now())
		if err != nil {
			s.log.Error("subscription sweep failed", zap.Error(err))
			return
		}
		s.log.Info("subscription sweep finished", zap.Int("closed", n))
	})
	if err != nil {
		return nil, fmt.Errorf("schedule subscription sweep %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
