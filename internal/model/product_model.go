package model

// Variant is one purchasable pack size of a product, with its own
// price and stock count.
type Variant struct {
	ID            string   `json:"id"`
	Weight        string   `json:"weight"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Quantity      int      `json:"quantity"`
}

// InStock reports whether the variant still has sellable units.
func (v Variant) InStock() bool {
	return v.Quantity > 0
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	Benefits    []string  `json:"benefits"`
	Usage       string    `json:"usage"`
	InStock     bool      `json:"inStock"`
	Variants    []Variant `json:"variants"`
}

// FindVariant returns the variant with the given id, or nil.
func (p *Product) FindVariant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	Benefits    []string  `json:"benefits"`
	Usage       string    `json:"usage"`
	Variants    []Variant `json:"variants"`
}
