package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeyadesperado/GymMaster/models"
)

func TestDeriveHealthMetrics(t *testing.T) {
	m := DeriveHealthMetrics(HealthProfile{WeightKg: f64(70), HeightCm: f64(175), AgeYears: intp(30), Gender: models.GenderMale})

	require.NotNil(t, m.BMI)
	require.NotNil(t, m.BMIClass)
	require.NotNil(t, m.CaloricNeeds)
	assert.InDelta(t, 22.857, *m.BMI, 1e-3)
	assert.Equal(t, models.BMINormal, *m.BMIClass)
	assert.InDelta(t, 1978.5, *m.CaloricNeeds, 1e-9)
}

func TestDeriveHealthMetrics_CaloriesIndependentOfBMI(t *testing.T) {
	// valid BMI, no gender
	m := DeriveHealthMetrics(HealthProfile{WeightKg: f64(70), HeightCm: f64(175), AgeYears: intp(30)})
	assert.NotNil(t, m.BMI)
	assert.Nil(t, m.CaloricNeeds)

	// zero height: BMI undefined, calories still computed from the raw inputs
	m = DeriveHealthMetrics(HealthProfile{WeightKg: f64(70), HeightCm: f64(0), AgeYears: intp(30), Gender: models.GenderFemale})
	assert.Nil(t, m.BMI)
	assert.Nil(t, m.BMIClass)
	require.NotNil(t, m.CaloricNeeds)
	assert.InDelta(t, (700.0-150-161)*1.2, *m.CaloricNeeds, 1e-9)
}

func TestApplyHealthMetrics_ClearsStaleValues(t *testing.T) {
	u := &models.User{Weight: f64(90), Height: f64(180), Age: intp(40), Gender: models.GenderMale}
	ApplyHealthMetrics(u)
	require.NotNil(t, u.BMIInterpretation)
	assert.Equal(t, models.BMIOverweight, *u.BMIInterpretation)

	u.Height = nil
	u.Gender = models.GenderUnset
	ApplyHealthMetrics(u)
	assert.Nil(t, u.BMI)
	assert.Nil(t, u.BMIInterpretation)
	assert.Nil(t, u.CaloricNeeds)
}

func TestApplyHealthMetrics_Idempotent(t *testing.T) {
	u := &models.User{Weight: f64(55), Height: f64(160), Age: intp(25), Gender: models.GenderFemale}
	ApplyHealthMetrics(u)
	first := *u.CaloricNeeds
	ApplyHealthMetrics(u)
	assert.Equal(t, first, *u.CaloricNeeds)
}
