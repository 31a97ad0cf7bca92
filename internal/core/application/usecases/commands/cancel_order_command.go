package commands

// CancelOrderCommand cancels a Pending or Confirmed order. An empty Reason
// becomes "Customer request".
type CancelOrderCommand struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason,omitempty"`
}
