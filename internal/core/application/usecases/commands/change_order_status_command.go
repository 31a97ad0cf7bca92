package commands

import (
	"strings"

	"tracking/internal/pkg/errs"
)

// OrderAction names a forward status transition.
type OrderAction string

const (
	ActionConfirm OrderAction = "confirm"
	ActionShip    OrderAction = "ship"
	ActionDeliver OrderAction = "deliver"
)

// ParseOrderAction accepts "confirm", "ship" or "deliver" in any letter case.
func ParseOrderAction(s string) (OrderAction, error) {
	switch action := OrderAction(strings.ToLower(strings.TrimSpace(s))); action {
	case ActionConfirm, ActionShip, ActionDeliver:
		return action, nil
	default:
		return "", errs.NewValidationError("action", "Unknown order action: "+s)
	}
}

// ChangeOrderStatusCommand moves an order forward in its lifecycle.
type ChangeOrderStatusCommand struct {
	OrderID string `json:"orderId"`
	Action  string `json:"action"`
}
