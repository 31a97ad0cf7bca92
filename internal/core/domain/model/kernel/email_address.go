package kernel

import (
	"regexp"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// MaxEmailLength is the longest address accepted, per RFC 5321.
const MaxEmailLength = 254

var (
	ErrEmailAddressIsNotConstructed = errs.NewValueIsRequiredError("EmailAddress must be created via NewEmailAddress")

	// Labels separated by single dots on both sides of a single "@"; the
	// top-level label is alphabetic.
	emailPattern = regexp.MustCompile(`^[a-z0-9%+_-]+(\.[a-z0-9%+_-]+)*@([a-z0-9-]+\.)+[a-z]{2,}$`)
)

// EmailAddress is a lower-cased, well-formed local@domain address.
type EmailAddress struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmailAddress trims, lower-cases and validates value.
func NewEmailAddress(value string) (EmailAddress, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return EmailAddress{}, errs.NewValidationError("email", "Email address cannot be empty")
	}

	if len(trimmed) > MaxEmailLength {
		return EmailAddress{}, errs.NewValidationError("email", "Email address cannot exceed 254 characters")
	}

	normalized := strings.ToLower(trimmed)
	if !emailPattern.MatchString(normalized) {
		return EmailAddress{}, errs.NewValidationError("email", "Invalid email format: "+trimmed)
	}

	return EmailAddress{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewEmailAddress is NewEmailAddress for literals; it panics on invalid input.
func MustNewEmailAddress(value string) EmailAddress {
	e, err := NewEmailAddress(value)
	if err != nil {
		panic(err)
	}
	return e
}

func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

func (e EmailAddress) Value() string {
	return e.value
}

// LocalPart returns the part before "@".
func (e EmailAddress) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns the part after "@".
func (e EmailAddress) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

func (e EmailAddress) IsEqual(other EmailAddress) bool {
	return e.value == other.value
}

func (e EmailAddress) String() string {
	return e.value
}
