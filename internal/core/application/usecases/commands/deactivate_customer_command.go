package commands

// DeactivateCustomerCommand permanently deactivates a customer.
type DeactivateCustomerCommand struct {
	CustomerID string `json:"customerId"`
	Reason     string `json:"reason"`
}
