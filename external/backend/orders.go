package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

type rawOrder struct {
	ID              string            `json:"_id"`
	OrderedAt       time.Time         `json:"orderedAt"`
	User            *model.OrderUser  `json:"user,omitempty"`
	TotalAmount     float64           `json:"totalAmount"`
	OrderStatus     string            `json:"orderStatus"`
	Items           []model.OrderItem `json:"items"`
	ShippingAddress *rawAddress       `json:"shippingAddress,omitempty"`
}

func (o rawOrder) toModel() model.Order {
	out := model.Order{
		ID:          o.ID,
		OrderedAt:   o.OrderedAt,
		User:        o.User,
		TotalAmount: o.TotalAmount,
		OrderStatus: o.OrderStatus,
		Items:       o.Items,
	}
	if o.ShippingAddress != nil {
		addr := o.ShippingAddress.toModel()
		out.ShippingAddress = &addr
	}
	return out
}

type createOrderRequest struct {
	Amount float64 `json:"amount"`
}

type createOrderResponse struct {
	Data struct {
		ID       string  `json:"id"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"data"`
}

// CreateOrder asks the backend to open a payment-provider order for the
// payable amount. The returned reference is what the gateway checkout
// is run against.
func (c *Client) CreateOrder(ctx context.Context, amount float64) (model.PaymentOrder, error) {
	var out createOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders/create", createOrderRequest{Amount: amount}, &out, true); err != nil {
		return model.PaymentOrder{}, err
	}
	return model.PaymentOrder{
		ID:       out.Data.ID,
		Amount:   out.Data.Amount,
		Currency: out.Data.Currency,
	}, nil
}

type verifyPaymentRequest struct {
	model.PaymentConfirmation
	OrderItems      []model.CartItem `json:"orderItems"`
	ShippingAddress model.Address    `json:"shippingAddress"`
	TotalAmount     float64          `json:"totalAmount"`
}

type verifyPaymentResponse struct {
	Message string `json:"message"`
}

// VerifyPayment sends the gateway's proof of payment together with the
// item and address snapshot; on success the backend persists the order.
func (c *Client) VerifyPayment(ctx context.Context, conf model.PaymentConfirmation, items []model.CartItem, addr model.Address, total float64) (string, error) {
	req := verifyPaymentRequest{
		PaymentConfirmation: conf,
		OrderItems:          items,
		ShippingAddress:     addr,
		TotalAmount:         total,
	}
	var out verifyPaymentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders/verify", req, &out, true); err != nil {
		return "", err
	}
	return out.Message, nil
}

// OrderHistory lists the signed-in user's past orders.
func (c *Client) OrderHistory(ctx context.Context) ([]model.Order, error) {
	var raw []rawOrder
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders/history", nil, &raw, true); err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(raw))
	for _, o := range raw {
		out = append(out, o.toModel())
	}
	return out, nil
}
