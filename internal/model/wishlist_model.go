package model

// WishlistItem is a saved product reference. Price is a snapshot taken
// when the item was saved and may drift from the live catalog price.
type WishlistItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}
