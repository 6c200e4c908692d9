package ledger

import (
	"fmt"

	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/model/reward"
	"github.com/talx-hub/point-ledger/internal/model/wallet"
)

// Result is the outcome of a single wallet transaction. Reward is point.Zero
// when the policy granted nothing.
type Result struct {
	Wallet *wallet.Wallet
	Reward point.Point
}

// TransactionHandler applies a principal mutation and its reward to a wallet.
// It keeps no state and touches nothing but the wallet it is given.
type TransactionHandler struct{}

// Charge deposits amount, then deposits the reward computed from amount.
// A nil policy grants no reward. On error the wallet keeps its balance.
func (TransactionHandler) Charge(w *wallet.Wallet, amount point.Point, policy reward.Policy,
) (Result, error) {
	return apply(w, amount, policy, (*wallet.Wallet).Deposit)
}

// Use withdraws amount, then deposits the reward computed from amount.
// A nil policy grants no reward. On error the wallet keeps its balance.
func (TransactionHandler) Use(w *wallet.Wallet, amount point.Point, policy reward.Policy,
) (Result, error) {
	return apply(w, amount, policy, (*wallet.Wallet).Withdraw)
}

func apply(w *wallet.Wallet,
	amount point.Point,
	policy reward.Policy,
	principal func(*wallet.Wallet, point.Point) error,
) (Result, error) {
	if policy == nil {
		policy = reward.NoReward{}
	}

	bonus := point.Zero
	err := w.Atomically(func(draft *wallet.Wallet) error {
		if err := principal(draft, amount); err != nil {
			return err
		}

		var err error
		bonus, err = policy.Apply(amount)
		if err != nil {
			return fmt.Errorf("failed to compute reward for %s: %w", amount, err)
		}
		if !bonus.IsPositive() {
			bonus = point.Zero
			return nil
		}
		if err = draft.Deposit(bonus); err != nil {
			return fmt.Errorf("reward %s: %w", bonus, err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err //nolint: wrapcheck // wallet errors carry context
	}

	return Result{
		Wallet: w,
		Reward: bonus,
	}, nil
}
