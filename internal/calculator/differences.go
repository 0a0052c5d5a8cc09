package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DifferencePlaces is the number of decimal places differences are rounded to.
const DifferencePlaces = 1

// ErrNoAmounts is returned when a mean is requested over zero amounts.
var ErrNoAmounts = errors.New("cannot average zero amounts")

// Mean returns the arithmetic mean of amounts.
func Mean(amounts []decimal.Decimal) (decimal.Decimal, error) {
	if len(amounts) == 0 {
		return decimal.Zero, ErrNoAmounts
	}
	sum := decimal.Sum(decimal.Zero, amounts...)
	return sum.Div(decimal.NewFromInt(int64(len(amounts)))), nil
}

// Differences computes how far each amount sits from the mean of all amounts.
// Based on: difference = round(amount - mean, 1), rounding half away from zero.
//
// The result has the same length and order as amounts. Because decimals have
// no signed zero, an amount that rounds to zero from below comes back as 0.
func Differences(amounts []decimal.Decimal) ([]decimal.Decimal, error) {
	mean, err := Mean(amounts)
	if err != nil {
		return nil, err
	}

	diffs := make([]decimal.Decimal, len(amounts))
	for i, amount := range amounts {
		diffs[i] = amount.Sub(mean).Round(DifferencePlaces)
	}
	return diffs, nil
}
