package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/utils"
)

type PaymentInput struct {
	UserID   *uint            `json:"user_id"`
	Duration *int             `json:"duration"`
	Price    *decimal.Decimal `json:"price"`
}

type PaymentService struct {
	db     *gorm.DB
	mailer utils.Mailer
	log    *zap.Logger
	now    func() time.Time
}

func NewPaymentService(db *gorm.DB, mailer utils.Mailer, log *zap.Logger) *PaymentService {
	return &PaymentService{db: db, mailer: mailer, log: log, now: time.Now}
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).Order("id").Find(&payments).Error
	return payments, err
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Create records the payment and opens the payer's subscription window of
// Duration months starting now. The confirmation mail is best effort.
func (s *PaymentService) Create(ctx context.Context, payerID uint, in PaymentInput) (*models.Payment, error) {
	if in.UserID != nil {
		payerID = *in.UserID
	}
	if in.Duration == nil || *in.Duration < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one month", ErrInvalidInput)
	}
	if in.Price == nil || in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	var (
		payment *models.Payment
		user    *models.User
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := NewUserService(tx)
		u, err := users.Get(ctx, payerID)
		if err != nil {
			return err
		}

		start := s.now()
		end := start.AddDate(0, *in.Duration, 0)
		payment = &models.Payment{UserID: u.ID, Duration: *in.Duration, Price: in.Price.Round(2), CreatedAt: start}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		u.PaymentStartDate = &start
		u.PaymentEndDate = &end
		user = u
		return users.Save(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	if err := utils.SendPaymentConfirmation(ctx, s.mailer, user.Email, payment.Duration, user.PaymentEndDate.Format("2006-01-02")); err != nil {
		s.log.Warn("payment confirmation not sent", zap.Uint("payment_id", payment.ID), zap.Error(err))
	}
	return payment, nil
}

func (s *PaymentService) Update(ctx context.Context, id uint, in PaymentInput) (*models.Payment, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		p.UserID = *in.UserID
	}
	if in.Duration != nil {
		if *in.Duration < 1 {
			return nil, fmt.Errorf("%w: duration must be at least one month", ErrInvalidInput)
		}
		p.Duration = *in.Duration
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		p.Price = in.Price.Round(2)
	}
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(p).Error
}
