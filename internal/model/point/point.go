package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

// MaxSafeInteger is the largest integer a JSON number (IEEE-754 double)
// represents exactly.
const MaxSafeInteger = 1<<53 - 1

// Point is an immutable amount of loyalty points.
type Point struct {
	amount int64
}

var Zero = Point{}

func New(amount int64) (Point, error) {
	if amount > MaxSafeInteger || amount < -MaxSafeInteger {
		return Point{}, fmt.Errorf("%w: %d is out of the safe integer range",
			serviceerrs.ErrInvalidAmount, amount)
	}
	return Point{amount: amount}, nil
}

// MustNew panics on an invalid amount. Use it for constants only.
func MustNew(amount int64) Point {
	p, err := New(amount)
	if err != nil {
		panic(err)
	}
	return p
}

func FromFloat(amount float64) (Point, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Point{}, fmt.Errorf("%w: %v is not a number", serviceerrs.ErrInvalidAmount, amount)
	}
	if amount != math.Trunc(amount) {
		return Point{}, fmt.Errorf("%w: %v is not an integer", serviceerrs.ErrInvalidAmount, amount)
	}
	if math.Abs(amount) > MaxSafeInteger {
		return Point{}, fmt.Errorf("%w: %v is out of the safe integer range",
			serviceerrs.ErrInvalidAmount, amount)
	}
	return New(int64(amount))
}

// Parse accepts the textual form of a JSON number.
func Parse(n json.Number) (Point, error) {
	if i, err := n.Int64(); err == nil {
		return New(i)
	}
	f, err := n.Float64()
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", serviceerrs.ErrInvalidAmount, n.String())
	}
	return FromFloat(f)
}

func (p Point) Int64() int64 {
	return p.amount
}

func (p Point) String() string {
	return fmt.Sprintf("%d", p.amount)
}

func (p Point) Add(other Point) (Point, error) {
	return New(p.amount + other.amount)
}

func (p Point) Subtract(other Point) (Point, error) {
	return New(p.amount - other.amount)
}

// Multiply returns floor(p * rate).
func (p Point) Multiply(rate decimal.Decimal) (Point, error) {
	product := decimal.NewFromInt(p.amount).Mul(rate).Floor()
	if product.GreaterThan(decimal.NewFromInt(MaxSafeInteger)) ||
		product.LessThan(decimal.NewFromInt(-MaxSafeInteger)) {
		return Point{}, fmt.Errorf("%w: %s * %s is out of the safe integer range",
			serviceerrs.ErrInvalidAmount, p, rate)
	}
	return New(product.IntPart())
}

func (p Point) IsNegative() bool {
	return p.amount < 0
}

func (p Point) IsPositive() bool {
	return p.amount > 0
}

func (p Point) IsZero() bool {
	return p.amount == 0
}

func (p Point) Equal(other Point) bool {
	return p.amount == other.amount
}

func (p Point) GreaterThan(other Point) bool {
	return p.amount > other.amount
}

func (p Point) LessThan(other Point) bool {
	return p.amount < other.amount
}

func (p Point) GreaterThanOrEqual(other Point) bool {
	return p.amount >= other.amount
}

func (p Point) LessThanOrEqual(other Point) bool {
	return p.amount <= other.amount
}
