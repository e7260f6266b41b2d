package model

// CartItem is one line in the cart: a specific product variant and its
// quantity. There is at most one line per variant; repeated adds bump
// the quantity instead.
type CartItem struct {
	ProductID     string   `json:"productId"`
	VariantID     string   `json:"variantId"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Weight        string   `json:"weight"`
	Image         string   `json:"image"`
	Quantity      int      `json:"quantity"`
}

// Subtotal is the line total at the current sale price.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CartItemInput is what the catalog hands to the cart manager. Quantity
// is implied: a fresh line starts at 1.
type CartItemInput struct {
	ProductID     string
	VariantID     string
	Name          string
	Price         float64
	OriginalPrice *float64
	Weight        string
	Image         string
}

// PriceDetails is the checkout summary shown before payment. Savings is
// informational; Payable already reflects sale prices.
type PriceDetails struct {
	ItemCount   int     `json:"itemCount"`
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee"`
	Savings     float64 `json:"savings"`
	Payable     float64 `json:"payable"`
}
