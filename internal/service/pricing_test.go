package service

import (
	"testing"

	"github.com/avc/starstore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceTable_StarsAmount(t *testing.T) {
	table := DefaultPriceTable()

	t.Run("Known packages", func(t *testing.T) {
		cases := map[int]float64{
			1000: 20,
			500:  10,
			100:  2,
			50:   1,
			25:   0.6,
			15:   0.35,
		}
		for stars, want := range cases {
			amount, err := table.StarsAmount(stars)
			require.NoError(t, err)
			assert.Equal(t, want, amount)
		}
	})

	t.Run("Unknown package", func(t *testing.T) {
		_, err := table.StarsAmount(42)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	})
}

func TestPriceTable_PremiumAmount(t *testing.T) {
	table := DefaultPriceTable()

	t.Run("Known durations", func(t *testing.T) {
		cases := map[int]float64{
			3:  19.31,
			6:  26.25,
			12: 44.79,
		}
		for months, want := range cases {
			amount, err := table.PremiumAmount(months)
			require.NoError(t, err)
			assert.Equal(t, want, amount)
		}
	})

	t.Run("Unknown duration", func(t *testing.T) {
		_, err := table.PremiumAmount(1)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	})
}
