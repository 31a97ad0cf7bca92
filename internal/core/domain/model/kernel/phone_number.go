package kernel

import (
	"regexp"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError("PhoneNumber must be created via NewPhoneNumber")

	phonePattern    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// PhoneNumber holds digits with an optional leading "+". Common separators
// are stripped on construction.
type PhoneNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

func NewPhoneNumber(value string) (PhoneNumber, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return PhoneNumber{}, errs.NewValidationError("phone", "Phone number cannot be empty")
	}

	normalized := phoneSeparators.Replace(trimmed)
	if !phonePattern.MatchString(normalized) {
		return PhoneNumber{}, errs.NewValidationError("phone", "Invalid phone number format: "+trimmed)
	}

	return PhoneNumber{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}

func (p PhoneNumber) Value() string {
	return p.value
}

func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

func (p PhoneNumber) String() string {
	return p.value
}
