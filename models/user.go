package models

import (
	"time"
)

// Gender only distinguishes the two branches of the caloric needs formula.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// BMIClass is the stored interpretation label for a user's BMI.
type BMIClass string

const (
	BMIUnderweight BMIClass = "Underweight"
	BMINormal      BMIClass = "Normal weight"
	BMIOverweight  BMIClass = "Overweight"
	BMIObesity     BMIClass = "Obesity"
)

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Name        string     `gorm:"size:255" json:"name"`
	IsActive    bool       `gorm:"default:true" json:"-"`
	IsStaff     bool       `gorm:"default:false" json:"-"`
	IsSuperuser bool       `gorm:"default:false" json:"-"`
	LastLogin   *time.Time `json:"-"`

	// physical attributes
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
	Gender Gender   `gorm:"size:10" json:"gender"`
	Phone  *string  `gorm:"size:15" json:"phone"`

	BodyFatPercentage  *float64 `json:"body_fat_percentage"`
	MuscleMass         *float64 `json:"muscle_mass"`
	BoneDensity        *float64 `json:"bone_density"`
	WaistCircumference *float64 `json:"waist_circumference"`
	HipCircumference   *float64 `json:"hip_circumference"`

	// derived, recomputed by utils.ApplyHealthMetrics before every save
	BMI               *float64  `json:"bmi"`
	BMIInterpretation *BMIClass `gorm:"size:15" json:"bmi_interpretation"`
	CaloricNeeds      *float64  `json:"caloric_needs"`

	Picture          string     `json:"picture"`
	PaymentStartDate *time.Time `json:"payment_start_date"`
	PaymentEndDate   *time.Time `json:"payment_end_date"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
