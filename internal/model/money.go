package model

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Money is an amount in cents. It is stored as BIGINT and rendered in JSON
// as a decimal number with two fractional digits.
type Money int64

var ErrInvalidMoney = errors.New("invalid monetary amount")

// MoneyFromUnits builds a Money value from whole currency units.
func MoneyFromUnits(units int64) Money {
	return Money(units * 100)
}

// String formats the amount as "225.00".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// ParseMoney parses a decimal string with at most two fractional digits.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidMoney
	}
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, ErrInvalidMoney
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: more than two decimal places", ErrInvalidMoney)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMoney, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || cents < 0 {
		return 0, fmt.Errorf("%w: bad fractional part", ErrInvalidMoney)
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money(total), nil
}

// Int64Value and ScanInt64 let the pgx int8 codec handle Money directly in
// both text and binary formats.
func (m Money) Int64Value() (pgtype.Int8, error) {
	return pgtype.Int8{Int64: int64(m), Valid: true}, nil
}

func (m *Money) ScanInt64(v pgtype.Int8) error {
	if !v.Valid {
		return fmt.Errorf("%w: NULL", ErrInvalidMoney)
	}
	*m = Money(v.Int64)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both numbers (75.5) and strings ("75.50").
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	v, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
