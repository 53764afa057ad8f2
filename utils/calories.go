package utils

import "github.com/zeyadesperado/GymMaster/models"

// SedentaryActivityFactor is the only activity level supported.
const SedentaryActivityFactor = 1.2

// BasalMetabolicRate is the Mifflin-St Jeor estimate in kcal/day.
func BasalMetabolicRate(weightKg, heightCm float64, ageYears int, gender models.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}

// CalculateCaloricNeeds returns nil unless weight, height, age and gender
// are all set.
func CalculateCaloricNeeds(p HealthProfile) *float64 {
	if p.WeightKg == nil || p.HeightCm == nil || p.AgeYears == nil || p.Gender == models.GenderUnset {
		return nil
	}
	needs := BasalMetabolicRate(*p.WeightKg, *p.HeightCm, *p.AgeYears, p.Gender) * SedentaryActivityFactor
	return &needs
}
