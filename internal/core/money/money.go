// Package money holds monetary amounts as integer cents so arithmetic on
// them is exact.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type Cents int64

var ErrInvalidAmount = errors.New("invalid monetary amount")

// ParseDecimal converts a decimal string to cents. It accepts both dot
// (12.34) and comma (12,34) separators and rounds half-up on the third
// decimal place. Negative amounts are rejected.
func ParseDecimal(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	return Cents(iv*100 + fracCents), nil
}

// Split divides total into n parts: each part is total/n truncated to whole
// cents, and the last part absorbs the residual so the parts always sum
// exactly to total. n must be positive and total non-negative.
func Split(total Cents, n int) []Cents {
	if n <= 0 {
		return nil
	}
	base := int64(total) / int64(n)

	parts := make([]Cents, n)
	var allocated int64
	for i := 0; i < n-1; i++ {
		parts[i] = Cents(base)
		allocated += base
	}
	parts[n-1] = total - Cents(allocated)
	return parts
}

// String renders the amount as a plain decimal with two fraction digits.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
