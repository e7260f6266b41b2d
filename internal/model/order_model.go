package model

import "time"

// Order statuses as reported by the backend.
const (
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// OrderItem is the immutable line snapshot stored with a placed order.
type OrderItem struct {
	VariantID string  `json:"variantId"`
	Name      string  `json:"name"`
	Weight    string  `json:"weight"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// OrderUser is the buyer summary attached to admin order listings.
type OrderUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is a placed order. User and ShippingAddress are only populated
// on admin listings; the customer's own history omits them.
type Order struct {
	ID              string      `json:"id"`
	OrderedAt       time.Time   `json:"orderedAt"`
	User            *OrderUser  `json:"user,omitempty"`
	TotalAmount     float64     `json:"totalAmount"`
	OrderStatus     string      `json:"orderStatus"`
	Items           []OrderItem `json:"items"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty"`
}

// PaymentOrder is the payment-provider order reference created by the
// backend for a given payable amount. The gateway checkout happens
// outside this client; its result comes back as a PaymentConfirmation.
type PaymentOrder struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentConfirmation carries the gateway's proof of a completed payment
// back to the backend for verification.
type PaymentConfirmation struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}
