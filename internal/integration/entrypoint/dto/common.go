// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/application/usecase/report"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// money renders an amount as a JSON number with two decimal places.
func money(amount decimal.Decimal) json.Number {
	return json.Number(amount.StringFixed(2))
}

func moneyList(amounts []decimal.Decimal) []json.Number {
	values := make([]json.Number, len(amounts))
	for i, amount := range amounts {
		values[i] = money(amount)
	}
	return values
}

// percent renders an undefined variation as null.
func percent(p report.Percent) *json.Number {
	if !p.Valid {
		return nil
	}
	value := money(p.Value)
	return &value
}

func date(t time.Time) string {
	return report.FormatDate(t)
}

func dateList(dates []time.Time) []string {
	values := make([]string, len(dates))
	for i, d := range dates {
		values[i] = date(d)
	}
	return values
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	value := id.String()
	return &value
}
