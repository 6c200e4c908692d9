package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

func decode(t *testing.T, body string) PointRequest {
	t.Helper()

	var req PointRequest
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&req))
	return req
}

func TestPointRequest_Point(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int64
		wantErr bool
	}{
		{"integer", `{"amount": 1000}`, 1000, false},
		{"integer in float notation", `{"amount": 1000.0}`, 1000, false},
		{"negative passes to the domain", `{"amount": -100}`, -100, false},
		{"missing", `{}`, 0, true},
		{"fraction", `{"amount": 150.5}`, 0, true},
		{"out of safe range", `{"amount": 9007199254740993}`, 0, true},
		{"quoted number", `{"amount": "1000"}`, 0, true},
		{"null", `{"amount": null}`, 0, true},
		{"boolean", `{"amount": true}`, 0, true},
		{"object", `{"amount": {"value": 1000}}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decode(t, tt.body)

			got, err := req.Point()
			if tt.wantErr {
				require.ErrorIs(t, err, serviceerrs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestPointRequest_Point_message(t *testing.T) {
	req := decode(t, `{}`)

	_, err := req.Point()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount is required")
}

func TestNewUserPointResponse(t *testing.T) {
	at := time.UnixMilli(1_717_243_200_123)

	got := NewUserPointResponse(history.UserPoint{ID: 1, Point: 500, UpdatedAt: at})
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"point":500,"updateMillis":1717243200123}`, string(raw))
}

func TestNewHistoryResponses(t *testing.T) {
	at := time.UnixMilli(1_717_243_200_000)

	got := NewHistoryResponses([]history.Record{
		{ID: 1, UserID: 2, Type: history.TypeCharge, Amount: 1000, CreatedAt: at},
		{ID: 2, UserID: 2, Type: history.TypeReward, Amount: 10, CreatedAt: at},
	})
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":1,"userId":2,"type":"CHARGE","amount":1000,"timeMillis":1717243200000},
		{"id":2,"userId":2,"type":"REWARD","amount":10,"timeMillis":1717243200000}
	]`, string(raw))

	empty, err := json.Marshal(NewHistoryResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(empty))
}

func TestPointRequest_Point_quotedNumberMessage(t *testing.T) {
	req := decode(t, `{"amount": "1000"}`)

	_, err := req.Point()
	require.ErrorIs(t, err, serviceerrs.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "amount must be a JSON number")
}
