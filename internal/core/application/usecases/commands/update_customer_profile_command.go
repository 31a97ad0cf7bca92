package commands

// UpdateCustomerProfileCommand changes a customer's contact details and
// preferences. Nil fields are left unchanged; an empty Phone clears the
// phone number.
type UpdateCustomerProfileCommand struct {
	CustomerID  string         `json:"customerId"`
	Address     *AddressInput  `json:"address,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}
