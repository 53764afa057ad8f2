package utils

import "github.com/zeyadesperado/GymMaster/models"

// HealthProfile holds the user attributes the derived metrics are computed from.
type HealthProfile struct {
	WeightKg *float64
	HeightCm *float64
	AgeYears *int
	Gender   models.Gender
}

type HealthMetrics struct {
	BMI          *float64
	BMIClass     *models.BMIClass
	CaloricNeeds *float64
}

func ProfileOf(u *models.User) HealthProfile {
	return HealthProfile{
		WeightKg: u.Weight,
		HeightCm: u.Height,
		AgeYears: u.Age,
		Gender:   u.Gender,
	}
}

// DeriveHealthMetrics is pure; both computations read only the profile.
func DeriveHealthMetrics(p HealthProfile) HealthMetrics {
	var m HealthMetrics
	if bmi := CalculateBMI(p.HeightCm, p.WeightKg); bmi != nil {
		class := ClassifyBMI(*bmi)
		m.BMI = bmi
		m.BMIClass = &class
	}
	m.CaloricNeeds = CalculateCaloricNeeds(p)
	return m
}

// ApplyHealthMetrics overwrites the derived fields of u. Call it right
// before every create or save of a user.
func ApplyHealthMetrics(u *models.User) {
	m := DeriveHealthMetrics(ProfileOf(u))
	u.BMI = m.BMI
	u.BMIInterpretation = m.BMIClass
	u.CaloricNeeds = m.CaloricNeeds
}
