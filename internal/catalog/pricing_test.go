package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeEffectivePrice(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	start := timePtr(now.AddDate(0, 0, -5))
	end := timePtr(now.AddDate(0, 0, 5))

	tests := []struct {
		name            string
		basePrice       float64
		discountPercent *float64
		discountFixed   *float64
		windowStart     *time.Time
		windowEnd       *time.Time
		wantFinal       float64
		wantDiscount    float64
		wantActive      bool
	}{
		{
			name:       "sans fenêtre, prix de base inchangé",
			basePrice:  100,
			wantFinal:  100,
			wantActive: false,
		},
		{
			name:            "fenêtre absente ignore le pourcentage",
			basePrice:       100,
			discountPercent: floatPtr(20),
			wantFinal:       100,
			wantActive:      false,
		},
		{
			name:            "pourcentage actif",
			basePrice:       100,
			discountPercent: floatPtr(20),
			windowStart:     start,
			windowEnd:       end,
			wantFinal:       80,
			wantDiscount:    20,
			wantActive:      true,
		},
		{
			name:          "montant fixe actif",
			basePrice:     100,
			discountFixed: floatPtr(30),
			windowStart:   start,
			windowEnd:     end,
			wantFinal:     70,
			wantDiscount:  30,
			wantActive:    true,
		},
		{
			name:            "le fixe prime sur le pourcentage",
			basePrice:       100,
			discountPercent: floatPtr(50),
			discountFixed:   floatPtr(10),
			windowStart:     start,
			windowEnd:       end,
			wantFinal:       90,
			wantDiscount:    10,
			wantActive:      true,
		},
		{
			name:          "fixe supérieur au prix, borné à zéro",
			basePrice:     50,
			discountFixed: floatPtr(80),
			windowStart:   start,
			windowEnd:     end,
			wantFinal:     0,
			wantDiscount:  80,
			wantActive:    true,
		},
		{
			name:            "fenêtre expirée",
			basePrice:       100,
			discountPercent: floatPtr(20),
			windowStart:     timePtr(now.AddDate(0, 0, -10)),
			windowEnd:       timePtr(now.AddDate(0, 0, -1)),
			wantFinal:       100,
			wantActive:      false,
		},
		{
			name:            "fenêtre future",
			basePrice:       100,
			discountPercent: floatPtr(20),
			windowStart:     timePtr(now.AddDate(0, 0, 1)),
			windowEnd:       timePtr(now.AddDate(0, 0, 10)),
			wantFinal:       100,
			wantActive:      false,
		},
		{
			name:        "fenêtre sans remise renseignée",
			basePrice:   100,
			windowStart: start,
			windowEnd:   end,
			wantFinal:   100,
			wantActive:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ComputeEffectivePrice(tt.basePrice, tt.discountPercent, tt.discountFixed, tt.windowStart, tt.windowEnd, now)
			assert.Equal(t, tt.wantFinal, info.FinalPrice)
			assert.Equal(t, tt.wantDiscount, info.DiscountAmount)
			assert.Equal(t, tt.wantActive, info.IsActive)
			if info.IsActive {
				assert.LessOrEqual(t, info.FinalPrice, tt.basePrice)
			} else {
				assert.Equal(t, tt.basePrice, info.FinalPrice)
			}
		})
	}
}

func TestComputeEffectivePrice_BornesIncluses(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// now == windowStart : actif
	info := ComputeEffectivePrice(100, floatPtr(10), nil, &start, &end, start)
	assert.True(t, info.IsActive)
	assert.Equal(t, 90.0, info.FinalPrice)

	// now == windowEnd : encore actif
	info = ComputeEffectivePrice(100, floatPtr(10), nil, &start, &end, end)
	assert.True(t, info.IsActive)
	assert.Nil(t, info.RemainingDays, "pas de jours restants quand la fin n'est pas strictement future")
}

func TestComputeEffectivePrice_JoursRestants(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	start := timePtr(now.AddDate(0, 0, -1))
	end := timePtr(now.AddDate(0, 0, 3))

	info := ComputeEffectivePrice(100, floatPtr(10), nil, start, end, now)
	require.NotNil(t, info.RemainingDays)
	assert.Equal(t, 3, *info.RemainingDays)
}
