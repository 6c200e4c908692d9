package history

import "time"

type TransactionType string

const (
	TypeCharge TransactionType = "CHARGE"
	TypeUse    TransactionType = "USE"
	TypeReward TransactionType = "REWARD"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeCharge, TypeUse, TypeReward:
		return true
	}
	return false
}

// Record is an immutable ledger entry.
type Record struct {
	CreatedAt time.Time       `json:"created_at"`
	Type      TransactionType `json:"type"`
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Amount    int64           `json:"amount"`
}

// UserPoint is the persisted current balance of a user.
type UserPoint struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        int64     `json:"id"`
	Point     int64     `json:"point"`
}
