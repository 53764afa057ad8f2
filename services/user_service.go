package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/zeyadesperado/GymMaster/models"
	"github.com/zeyadesperado/GymMaster/utils"
)

const minPasswordLength = 5

// ProfileInput carries the user-settable profile fields. Nil means "leave
// unchanged".
type ProfileInput struct {
	Name     *string        `json:"name"`
	Password *string        `json:"password"`
	Age      *int           `json:"age" binding:"omitempty,min=0"`
	Weight   *float64       `json:"weight" binding:"omitempty,min=0"`
	Height   *float64       `json:"height" binding:"omitempty,min=0"`
	Gender   *models.Gender `json:"gender" binding:"omitempty,oneof=male female"`
	Phone    *string        `json:"phone" binding:"omitempty,max=15"`

	BodyFatPercentage  *float64 `json:"body_fat_percentage"`
	MuscleMass         *float64 `json:"muscle_mass"`
	BoneDensity        *float64 `json:"bone_density"`
	WaistCircumference *float64 `json:"waist_circumference"`
	HipCircumference   *float64 `json:"hip_circumference"`

	Picture          *string    `json:"picture"`
	PaymentStartDate *time.Time `json:"payment_start_date"`
	PaymentEndDate   *time.Time `json:"payment_end_date"`
}

type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name" binding:"max=255"`
	ProfileInput
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Save recomputes the derived health fields and persists u. Every write of a
// user goes through here.
func (s *UserService) Save(ctx context.Context, u *models.User) error {
	utils.ApplyHealthMetrics(u)
	return s.db.WithContext(ctx).Save(u).Error
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	email := utils.NormalizeEmail(in.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: user must have an email address", ErrInvalidInput)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	user := &models.User{Email: email, Name: in.Name, IsActive: true}
	in.ProfileInput.Password = &in.Password
	if err := applyProfile(user, in.ProfileInput); err != nil {
		return nil, err
	}

	utils.ApplyHealthMetrics(user)
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in ProfileInput) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProfile(user, in); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Authenticate checks the credentials of an active user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", utils.NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func applyProfile(u *models.User, in ProfileInput) error {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
		}
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.Password = hashed
	}
	if in.Age != nil {
		u.Age = in.Age
	}
	if in.Weight != nil {
		u.Weight = in.Weight
	}
	if in.Height != nil {
		u.Height = in.Height
	}
	if in.Gender != nil {
		u.Gender = *in.Gender
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.BodyFatPercentage != nil {
		u.BodyFatPercentage = in.BodyFatPercentage
	}
	if in.MuscleMass != nil {
		u.MuscleMass = in.MuscleMass
	}
	if in.BoneDensity != nil {
		u.BoneDensity = in.BoneDensity
	}
	if in.WaistCircumference != nil {
		u.WaistCircumference = in.WaistCircumference
	}
	if in.HipCircumference != nil {
		u.HipCircumference = in.HipCircumference
	}
	if in.Picture != nil {
		pic := strings.TrimSpace(*in.Picture)
		if u.Picture != "" && pic != u.Picture {
			return ErrPictureAlreadySet
		}
		u.Picture = pic
	}
	if in.PaymentStartDate != nil {
		u.PaymentStartDate = in.PaymentStartDate
	}
	if in.PaymentEndDate != nil {
		u.PaymentEndDate = in.PaymentEndDate
	}
	return nil
}
