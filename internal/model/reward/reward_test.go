package reward

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

func TestNoReward_Apply(t *testing.T) {
	for _, amount := range []int64{0, 100, 1550, 2_000_000} {
		got, err := NoReward{}.Apply(point.MustNew(amount))
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	}
}

func TestPercentage_Apply(t *testing.T) {
	tests := []struct {
		name   string
		rate   string
		amount int64
		want   int64
	}{
		{"1% of 1000", "0.01", 1000, 10},
		{"1% of 1550 truncates", "0.01", 1550, 15},
		{"1% of 500", "0.01", 500, 5},
		{"1% of 100", "0.01", 100, 1},
		{"1% of 99 is nothing", "0.01", 99, 0},
		{"5% of 1990", "0.05", 1990, 99},
		{"zero rate", "0", 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPercentage(decimal.RequireFromString(tt.rate))
			require.NoError(t, err)

			got, err := p.Apply(point.MustNew(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestOnePercent(t *testing.T) {
	p := OnePercent()
	assert.True(t, p.Rate().Equal(decimal.RequireFromString("0.01")))

	got, err := p.Apply(point.MustNew(1550))
	require.NoError(t, err)
	assert.Equal(t, int64(15), got.Int64())
}

func TestNewPercentage_negativeRate(t *testing.T) {
	_, err := NewPercentage(decimal.RequireFromString("-0.01"))
	require.ErrorIs(t, err, serviceerrs.ErrInvalidAmount)
}
