package wallet

import (
	"fmt"

	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

const MaxBalance = 2_000_000

var maxBalance = point.MustNew(MaxBalance)

// Wallet is one user's balance. A Wallet is not safe for concurrent use;
// callers serialize access per user.
type Wallet struct {
	userID  int64
	balance point.Point
}

func New(userID int64, balance point.Point) (*Wallet, error) {
	if err := checkBalance(balance); err != nil {
		return nil, err
	}
	return &Wallet{
		userID:  userID,
		balance: balance,
	}, nil
}

func (w *Wallet) UserID() int64 {
	return w.userID
}

func (w *Wallet) Balance() point.Point {
	return w.balance
}

// Deposit leaves the balance untouched on error.
func (w *Wallet) Deposit(amount point.Point) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit %s: %w", amount, serviceerrs.ErrNonPositiveAmount)
	}
	next, err := w.balance.Add(amount)
	if err != nil {
		return fmt.Errorf("deposit %s: %w", amount, err)
	}
	if next.GreaterThan(maxBalance) {
		return fmt.Errorf("deposit %s onto %s: %w",
			amount, w.balance, serviceerrs.ErrBalanceCeilingExceeded)
	}
	w.balance = next
	return nil
}

// Withdraw leaves the balance untouched on error.
func (w *Wallet) Withdraw(amount point.Point) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdraw %s: %w", amount, serviceerrs.ErrNonPositiveAmount)
	}
	next, err := w.balance.Subtract(amount)
	if err != nil {
		return fmt.Errorf("withdraw %s: %w", amount, err)
	}
	if next.IsNegative() {
		return fmt.Errorf("withdraw %s from %s: %w",
			amount, w.balance, serviceerrs.ErrInsufficientBalance)
	}
	w.balance = next
	return nil
}

// Atomically runs fn against a copy of the wallet and keeps the copy's
// balance only if fn succeeds.
func (w *Wallet) Atomically(fn func(draft *Wallet) error) error {
	draft := *w
	if err := fn(&draft); err != nil {
		return err
	}
	w.balance = draft.balance
	return nil
}

func checkBalance(balance point.Point) error {
	if balance.IsNegative() {
		return fmt.Errorf("balance %s: %w", balance, serviceerrs.ErrNegativeBalance)
	}
	if balance.GreaterThan(maxBalance) {
		return fmt.Errorf("balance %s: %w", balance, serviceerrs.ErrBalanceCeilingExceeded)
	}
	return nil
}
