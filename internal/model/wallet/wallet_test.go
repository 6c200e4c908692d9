package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		wantErr error
	}{
		{"empty", 0, nil},
		{"regular", 1000, nil},
		{"at ceiling", MaxBalance, nil},
		{"negative", -1, serviceerrs.ErrNegativeBalance},
		{"above ceiling", MaxBalance + 1, serviceerrs.ErrBalanceCeilingExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(1, point.MustNew(tt.balance))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), w.UserID())
			assert.Equal(t, tt.balance, w.Balance().Int64())
		})
	}
}

func TestWallet_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		amount      int64
		wantBalance int64
		wantErr     error
	}{
		{"regular", 0, 1000, 1000, nil},
		{"up to ceiling", 1_900_000, 100_000, MaxBalance, nil},
		{"zero amount", 1000, 0, 1000, serviceerrs.ErrNonPositiveAmount},
		{"negative amount", 1000, -100, 1000, serviceerrs.ErrNonPositiveAmount},
		{"over ceiling", 1_900_000, 200_000, 1_900_000, serviceerrs.ErrBalanceCeilingExceeded},
		{"over ceiling by one", MaxBalance, 1, MaxBalance, serviceerrs.ErrBalanceCeilingExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(1, point.MustNew(tt.balance))
			require.NoError(t, err)

			err = w.Deposit(point.MustNew(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, w.Balance().Int64())
		})
	}
}

func TestWallet_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		amount      int64
		wantBalance int64
		wantErr     error
	}{
		{"regular", 1000, 300, 700, nil},
		{"whole balance", 1000, 1000, 0, nil},
		{"zero amount", 1000, 0, 1000, serviceerrs.ErrNonPositiveAmount},
		{"negative amount", 1000, -1, 1000, serviceerrs.ErrNonPositiveAmount},
		{"insufficient", 1000, 1100, 1000, serviceerrs.ErrInsufficientBalance},
		{"empty wallet", 0, 100, 0, serviceerrs.ErrInsufficientBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(1, point.MustNew(tt.balance))
			require.NoError(t, err)

			err = w.Withdraw(point.MustNew(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, w.Balance().Int64())
		})
	}
}

func TestWallet_errorsAreValidation(t *testing.T) {
	w, err := New(1, point.Zero)
	require.NoError(t, err)

	err = w.Withdraw(point.MustNew(100))
	assert.True(t, serviceerrs.IsValidation(err))
}

func TestWallet_Atomically(t *testing.T) {
	w, err := New(1, point.MustNew(1000))
	require.NoError(t, err)

	err = w.Atomically(func(draft *Wallet) error {
		if err := draft.Deposit(point.MustNew(500)); err != nil {
			return err
		}
		return draft.Withdraw(point.MustNew(5000))
	})
	require.ErrorIs(t, err, serviceerrs.ErrInsufficientBalance)
	assert.Equal(t, int64(1000), w.Balance().Int64())

	err = w.Atomically(func(draft *Wallet) error {
		if err := draft.Deposit(point.MustNew(500)); err != nil {
			return err
		}
		return draft.Withdraw(point.MustNew(200))
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1300), w.Balance().Int64())
}
