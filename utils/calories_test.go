package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeyadesperado/GymMaster/models"
)

func intp(v int) *int { return &v }

func TestBasalMetabolicRate(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 = 1643.75
	assert.InDelta(t, 1648.75, BasalMetabolicRate(70, 175, 30, models.GenderMale), 1e-9)
	assert.InDelta(t, 1482.75, BasalMetabolicRate(70, 175, 30, models.GenderFemale), 1e-9)
}

func TestCalculateCaloricNeeds(t *testing.T) {
	male := CalculateCaloricNeeds(HealthProfile{WeightKg: f64(70), HeightCm: f64(175), AgeYears: intp(30), Gender: models.GenderMale})
	require.NotNil(t, male)
	assert.InDelta(t, 1978.5, *male, 1e-9)

	female := CalculateCaloricNeeds(HealthProfile{WeightKg: f64(70), HeightCm: f64(175), AgeYears: intp(30), Gender: models.GenderFemale})
	require.NotNil(t, female)
	assert.InDelta(t, 1779.3, *female, 1e-9)
}

func TestCalculateCaloricNeeds_NonMaleTakesFemaleBranch(t *testing.T) {
	other := CalculateCaloricNeeds(HealthProfile{WeightKg: f64(70), HeightCm: f64(175), AgeYears: intp(30), Gender: models.Gender("other")})
	require.NotNil(t, other)
	assert.InDelta(t, 1779.3, *other, 1e-9)
}

func TestCalculateCaloricNeeds_MissingInput(t *testing.T) {
	full := HealthProfile{WeightKg: f64(70), HeightCm: f64(175), AgeYears: intp(30), Gender: models.GenderMale}

	tests := map[string]func(p *HealthProfile){
		"weight": func(p *HealthProfile) { p.WeightKg = nil },
		"height": func(p *HealthProfile) { p.HeightCm = nil },
		"age":    func(p *HealthProfile) { p.AgeYears = nil },
		"gender": func(p *HealthProfile) { p.Gender = models.GenderUnset },
	}
	for name, drop := range tests {
		t.Run(name, func(t *testing.T) {
			p := full
			drop(&p)
			assert.Nil(t, CalculateCaloricNeeds(p))
		})
	}
}

func TestCalculateCaloricNeeds_AgeZeroIsDefined(t *testing.T) {
	needs := CalculateCaloricNeeds(HealthProfile{WeightKg: f64(70), HeightCm: f64(175), AgeYears: intp(0), Gender: models.GenderMale})
	require.NotNil(t, needs)
	assert.InDelta(t, (700+1093.75+5)*1.2, *needs, 1e-9)
}
