// README: Common money value object used across modules.
package types

import (
	"fmt"
	"math"
)

// Money holds an amount in the currency's minor unit (cents).
type Money struct {
	Amount   int64
	Currency string
}

// FromFloat converts a major-unit amount (e.g. 12.50 USD) into Money.
func FromFloat(amount float64, currency string) Money {
	return Money{Amount: int64(math.Round(amount * 100)), Currency: currency}
}

// Float returns the amount in major units.
func (m Money) Float() float64 {
	return float64(m.Amount) / 100
}

// Add returns the sum of two amounts. Mixing currencies is a programming
// error; the receiver's currency wins.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}
}

// Mul scales the amount by n (e.g. nightly rate times nights).
func (m Money) Mul(n int) Money {
	return Money{Amount: m.Amount * int64(n), Currency: m.Currency}
}

// Format renders the amount with its currency symbol.
// JPY has no minor unit and is printed without decimals.
func (m Money) Format() string {
	switch m.Currency {
	case "USD":
		return fmt.Sprintf("$%.2f", m.Float())
	case "EUR":
		return fmt.Sprintf("€%.2f", m.Float())
	case "GBP":
		return fmt.Sprintf("£%.2f", m.Float())
	case "JPY":
		return fmt.Sprintf("¥%d", m.Amount/100)
	default:
		return fmt.Sprintf("%.2f %s", m.Float(), m.Currency)
	}
}
