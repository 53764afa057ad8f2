package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeyadesperado/GymMaster/models"
)

func f64(v float64) *float64 { return &v }

func TestCalculateBMI(t *testing.T) {
	bmi := CalculateBMI(f64(175), f64(70))
	require.NotNil(t, bmi)
	assert.InDelta(t, 70/(1.75*1.75), *bmi, 1e-9)
}

func TestCalculateBMI_Undefined(t *testing.T) {
	tests := []struct {
		name   string
		height *float64
		weight *float64
	}{
		{"no height", nil, f64(70)},
		{"no weight", f64(175), nil},
		{"zero height", f64(0), f64(70)},
		{"zero weight", f64(175), f64(0)},
		{"nothing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, CalculateBMI(tt.height, tt.weight))
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want models.BMIClass
	}{
		{10, models.BMIUnderweight},
		{18.4, models.BMIUnderweight},
		{18.5, models.BMINormal},
		{22, models.BMINormal},
		{24.89, models.BMINormal},
		{24.9, models.BMIOverweight},
		{24.95, models.BMIOverweight},
		{25, models.BMIOverweight},
		{29.89, models.BMIOverweight},
		{29.9, models.BMIObesity},
		{45, models.BMIObesity},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBMI(tt.bmi), "bmi=%v", tt.bmi)
	}
}
