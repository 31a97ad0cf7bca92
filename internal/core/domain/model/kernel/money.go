package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyDisplayPlaces is the number of decimal places used by Money.String.
const MoneyDisplayPlaces = 2

// Rule names reported by Money arithmetic.
const (
	RuleCurrencyMismatch = "CurrencyMismatch"
	RuleNegativeResult   = "NegativeResult"
	RuleNegativeFactor   = "NegativeFactor"
)

var (
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or ParseMoney")

	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Money is an immutable non-negative amount in a currency. The currency is a
// three letter upper-case code; it is checked against the pattern only, not
// against an ISO list.
//
// The amount keeps full precision. Only String rounds, to MoneyDisplayPlaces.
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney validates amount and currency. Lower-case currencies are upper-cased.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setAmount(amount),
		m.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MustNewMoney is NewMoney for literals; it panics on invalid input.
func MustNewMoney(amount decimal.Decimal, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney reads the canonical "{amount} {CURRENCY}" form produced by String.
func ParseMoney(s string) (Money, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Money{}, errs.NewValidationError("money", "Invalid money format: "+s)
	}

	amount, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Money{}, errs.NewValidationErrorWithCause("money", "Invalid money format: "+s, err)
	}

	return NewMoney(amount, parts[1])
}

// Validate returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual reports whether both amount and currency match. Amounts are compared
// numerically, so 150.5 USD equals 150.50 USD.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Add returns m + other. Both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkOperand(other, "add"); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns m - other. Both must share a currency and the result may
// not be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkOperand(other, "subtract"); err != nil {
		return Money{}, err
	}

	if other.amount.GreaterThan(m.amount) {
		return Money{}, errs.NewBusinessRuleViolationError(
			RuleNegativeResult,
			fmt.Sprintf("Cannot subtract %s from %s: result would be negative", other, m),
		)
	}

	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply returns m * factor. The product is not rounded.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if factor.IsNegative() {
		return Money{}, errs.NewBusinessRuleViolationError(
			RuleNegativeFactor,
			fmt.Sprintf("Cannot multiply money by negative factor %s", factor),
		)
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// String formats the money as "{amount:F2} {CURRENCY}", e.g. "1234.57 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(MoneyDisplayPlaces), m.currency)
}

func (m Money) checkOperand(other Money, operation string) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}

	if m.currency != other.currency {
		return errs.NewBusinessRuleViolationError(
			RuleCurrencyMismatch,
			fmt.Sprintf("Cannot %s money with different currencies: %s and %s", operation, m.currency, other.currency),
		)
	}

	return nil
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValidationError("amount", "Amount cannot be negative")
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	normalized := strings.ToUpper(strings.TrimSpace(currency))
	if !currencyPattern.MatchString(normalized) {
		return errs.NewValidationError("currency", "Currency must be a 3-letter ISO code")
	}

	m.currency = normalized
	return nil
}
