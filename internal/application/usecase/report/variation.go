package report

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent is an optional percentage. An invalid Percent means the variation
// is undefined because there is no prior baseline; it is never zero.
type Percent struct {
	Value decimal.Decimal
	Valid bool
}

// PercentOf returns a defined percentage.
func PercentOf(value decimal.Decimal) Percent {
	return Percent{Value: value, Valid: true}
}

// MarshalJSON renders an undefined percentage as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return p.Value.MarshalJSON()
}

// UnmarshalJSON reads null as an undefined percentage.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = Percent{}
		return nil
	}
	var value decimal.Decimal
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*p = PercentOf(value)
	return nil
}

// Variation returns the percentage change from previous to current, rounded
// to two digits half-up. A zero baseline yields 0 when current is also zero
// and an undefined percentage otherwise.
func Variation(current, previous decimal.Decimal) Percent {
	if previous.IsZero() {
		if current.IsZero() {
			return PercentOf(decimal.Zero)
		}
		return Percent{}
	}

	return PercentOf(current.Sub(previous).Mul(hundred).DivRound(previous.Abs(), 2))
}

// Metric pairs a current and previous value with their variation.
type Metric struct {
	CurrentValue     decimal.Decimal
	PreviousValue    decimal.Decimal
	VariationPercent Percent
}

// NewMetric builds a Metric through Variation.
func NewMetric(current, previous decimal.Decimal) Metric {
	return Metric{
		CurrentValue:     current,
		PreviousValue:    previous,
		VariationPercent: Variation(current, previous),
	}
}
