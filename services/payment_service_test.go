package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zeyadesperado/GymMaster/models"
)

type sentMail struct {
	to, subject string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

func TestPaymentService_CreateOpensSubscription(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mailer := &fakeMailer{}
	svc := NewPaymentService(db, mailer, zap.NewNop())
	now := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	user := createUser(t, db, "payer@example.com")
	price := decimal.RequireFromString("49.90")

	p, err := svc.Create(ctx, user.ID, PaymentInput{Duration: intp(3), Price: &price})
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.UserID)
	assert.Equal(t, 3, p.Duration)

	stored, err := NewUserService(db).Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaymentStartDate)
	require.NotNil(t, stored.PaymentEndDate)
	assert.True(t, now.Equal(*stored.PaymentStartDate))
	assert.True(t, now.AddDate(0, 3, 0).Equal(*stored.PaymentEndDate))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "payer@example.com", mailer.sent[0].to)
}

func TestPaymentService_CreateSurvivesMailFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, &fakeMailer{err: errors.New("ses down")}, zap.NewNop())
	user := createUser(t, db, "payer@example.com")
	price := decimal.RequireFromString("10")

	_, err := svc.Create(context.Background(), user.ID, PaymentInput{Duration: intp(1), Price: &price})
	assert.NoError(t, err)
}

func TestPaymentService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, &fakeMailer{}, zap.NewNop())
	user := createUser(t, db, "payer@example.com")
	price := decimal.RequireFromString("10")
	negative := decimal.RequireFromString("-1")
	missing := uint(999)

	_, err := svc.Create(context.Background(), user.ID, PaymentInput{Duration: intp(0), Price: &price})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(context.Background(), user.ID, PaymentInput{Duration: intp(1), Price: &negative})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(context.Background(), user.ID, PaymentInput{UserID: &missing, Duration: intp(1), Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)

	var n int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSubscriptionSweeper_Sweep(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserService(db)
	mailer := &fakeMailer{}
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	expired := createUser(t, db, "expired@example.com")
	start, end := now.AddDate(0, -2, 0), now.AddDate(0, 0, -1)
	male := models.GenderMale
	_, err := users.Update(ctx, expired.ID, ProfileInput{PaymentStartDate: &start, PaymentEndDate: &end, Weight: f64(80), Height: f64(180), Age: intp(35), Gender: &male})
	require.NoError(t, err)

	active := createUser(t, db, "active@example.com")
	later := now.AddDate(0, 1, 0)
	_, err = users.Update(ctx, active.ID, ProfileInput{PaymentStartDate: &start, PaymentEndDate: &later})
	require.NoError(t, err)

	createUser(t, db, "never@example.com")

	n, err := NewSubscriptionSweeper(db, users, mailer, zap.NewNop()).Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := users.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PaymentEndDate)
	assert.Nil(t, got.PaymentStartDate)
	assert.NotNil(t, got.CaloricNeeds, "derived fields survive the sweep")

	got, err = users.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.PaymentEndDate)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "expired@example.com", mailer.sent[0].to)
}

func TestSubscriptionSweeper_StartRejectsBadSpec(t *testing.T) {
	s := NewSubscriptionSweeper(newTestDB(t), nil, &fakeMailer{}, zap.NewNop())
	_, err := s.Start("not a cron spec")
	assert.Error(t, err)
}
