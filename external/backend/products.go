package backend

import (
	"context"
	"net/http"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

// The catalog endpoints expose raw Mongo documents with _id fields;
// these raw types keep that detail out of the rest of the client.
type rawVariant struct {
	ID            string   `json:"_id"`
	Weight        string   `json:"weight"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Quantity      int      `json:"quantity"`
}

type rawProduct struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Category    string       `json:"category"`
	Rating      float64      `json:"rating"`
	Description string       `json:"description"`
	Benefits    []string     `json:"benefits"`
	Usage       string       `json:"usage"`
	InStock     bool         `json:"inStock"`
	Variants    []rawVariant `json:"variants"`
}

func (p rawProduct) toModel() model.Product {
	out := model.Product{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Category:    p.Category,
		Rating:      p.Rating,
		Description: p.Description,
		Benefits:    p.Benefits,
		Usage:       p.Usage,
		InStock:     p.InStock,
		Variants:    make([]model.Variant, 0, len(p.Variants)),
	}
	for _, v := range p.Variants {
		out.Variants = append(out.Variants, model.Variant{
			ID:            v.ID,
			Weight:        v.Weight,
			Price:         v.Price,
			OriginalPrice: v.OriginalPrice,
			Quantity:      v.Quantity,
		})
	}
	return out
}

// Products fetches the whole catalog.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var raw []rawProduct
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &raw, false); err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.toModel())
	}
	return out, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (model.Product, error) {
	var raw rawProduct
	if err := c.doJSON(ctx, http.MethodGet, "/api/products/"+id, nil, &raw, false); err != nil {
		return model.Product{}, err
	}
	return raw.toModel(), nil
}

// CreateProduct adds a product to the catalog (admin only).
func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) error {
	return c.doJSON(ctx, http.MethodPost, "/api/products", in, nil, true)
}

// UpdateProduct replaces a product's fields (admin only).
func (c *Client) UpdateProduct(ctx context.Context, id string, in model.ProductInput) error {
	return c.doJSON(ctx, http.MethodPut, "/api/products/"+id, in, nil, true)
}

// DeleteProduct removes a product from the catalog (admin only).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, true)
}
