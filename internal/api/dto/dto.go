package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// jsonnumber rejects strings, booleans and null smuggled into a numeric field.
	if err := v.RegisterValidation("jsonnumber", func(fl validator.FieldLevel) bool {
		return isNumberToken(fl.Field().Bytes())
	}); err != nil {
		panic(fmt.Sprintf("failed to register jsonnumber validation: %v", err))
	}
	return v
}

// isNumberToken reports whether raw, a valid JSON value, is a number.
func isNumberToken(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || ('0' <= c && c <= '9')
}

type PointRequest struct {
	Amount json.RawMessage `json:"amount" validate:"required,jsonnumber"`
}

// Point validates the request and returns the amount. Errors wrap
// serviceerrs.ErrValidation.
func (r *PointRequest) Point() (point.Point, error) {
	if err := validate.Struct(r); err != nil {
		return point.Zero, fmt.Errorf("%w: %w", serviceerrs.ErrInvalidAmount, describe(err))
	}
	p, err := point.Parse(json.Number(bytes.TrimSpace(r.Amount)))
	if err != nil {
		return point.Zero, fmt.Errorf("amount: %w", err)
	}
	return p, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s is required", fe.Field()))
		case "jsonnumber":
			errs = append(errs, fmt.Errorf("%s must be a JSON number", fe.Field()))
		default:
			errs = append(errs, fmt.Errorf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.Join(errs...)
}

type UserPointResponse struct {
	ID           int64 `json:"id"`
	Point        int64 `json:"point"`
	UpdateMillis int64 `json:"updateMillis"`
}

func NewUserPointResponse(up history.UserPoint) UserPointResponse {
	return UserPointResponse{
		ID:           up.ID,
		Point:        up.Point,
		UpdateMillis: up.UpdatedAt.UnixMilli(),
	}
}

type HistoryResponse struct {
	Type       history.TransactionType `json:"type"`
	ID         int64                   `json:"id"`
	UserID     int64                   `json:"userId"`
	Amount     int64                   `json:"amount"`
	TimeMillis int64                   `json:"timeMillis"`
}

func NewHistoryResponses(records []history.Record) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, HistoryResponse{
			ID:         r.ID,
			UserID:     r.UserID,
			Type:       r.Type,
			Amount:     r.Amount,
			TimeMillis: r.CreatedAt.UnixMilli(),
		})
	}
	return out
}

type ErrorResponse struct {
	Message    string `json:"message"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}
