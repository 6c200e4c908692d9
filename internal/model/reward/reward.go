package reward

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

// Policy computes the reward credited for a transacted amount.
// Implementations must be stateless.
type Policy interface {
	Apply(amount point.Point) (point.Point, error)
}

type NoReward struct{}

func (NoReward) Apply(point.Point) (point.Point, error) {
	return point.Zero, nil
}

func (NoReward) String() string {
	return "no-reward"
}

// Percentage rewards floor(amount * rate).
type Percentage struct {
	rate decimal.Decimal
}

var onePercent = decimal.New(1, -2)

func NewPercentage(rate decimal.Decimal) (Percentage, error) {
	if rate.IsNegative() {
		return Percentage{}, fmt.Errorf("%w: reward rate %s is negative",
			serviceerrs.ErrInvalidAmount, rate)
	}
	return Percentage{rate: rate}, nil
}

func OnePercent() Percentage {
	return Percentage{rate: onePercent}
}

func (p Percentage) Rate() decimal.Decimal {
	return p.rate
}

func (p Percentage) Apply(amount point.Point) (point.Point, error) {
	return amount.Multiply(p.rate)
}

func (p Percentage) String() string {
	return "percentage(" + p.rate.String() + ")"
}
