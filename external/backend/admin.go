package backend

import (
	"context"
	"net/http"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

// AdminOrders lists every order with buyer and shipping details.
func (c *Client) AdminOrders(ctx context.Context) ([]model.Order, error) {
	var raw []rawOrder
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/orders", nil, &raw, true); err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(raw))
	for _, o := range raw {
		out = append(out, o.toModel())
	}
	return out, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order to a new fulfilment status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/orders/"+orderID+"/status", updateStatusRequest{Status: status}, nil, true)
}

// ExportOrders downloads the backend's order export file.
func (c *Client) ExportOrders(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/api/admin/orders/export", true)
}

type rawAdminUser struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// AdminUsers lists all registered users.
func (c *Client) AdminUsers(ctx context.Context) ([]model.User, error) {
	var raw []rawAdminUser
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, &raw, true); err != nil {
		return nil, err
	}
	out := make([]model.User, 0, len(raw))
	for _, u := range raw {
		out = append(out, model.User{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Mobile:     u.Mobile,
			Role:       u.Role,
			IsVerified: u.IsVerified,
		})
	}
	return out, nil
}
