package commands

// CreateCustomerCommand registers a new customer.
//
// Example:
//
//	cmd := commands.CreateCustomerCommand{
//	    Name:  "Jane Doe",
//	    Email: "jane@example.com",
//	    Preferences: map[string]any{"newsletter": true},
//	}
//	result := handler.Handle(ctx, cmd)
//	if result.IsFailure() {
//	    return result.Cause()
//	}
type CreateCustomerCommand struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Preferences map[string]any `json:"preferences,omitempty"`
	Address     *AddressInput  `json:"address,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
}
