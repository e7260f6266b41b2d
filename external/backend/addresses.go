package backend

import (
	"context"
	"net/http"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

type rawAddress struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Type   string `json:"type"`
}

func (a rawAddress) toModel() model.Address {
	return model.Address{
		ID:     a.ID,
		Name:   a.Name,
		Phone:  a.Phone,
		Street: a.Street,
		City:   a.City,
		State:  a.State,
		Zip:    a.Zip,
		Type:   a.Type,
	}
}

// Addresses lists the signed-in user's address book.
func (c *Client) Addresses(ctx context.Context) ([]model.Address, error) {
	var raw []rawAddress
	if err := c.doJSON(ctx, http.MethodGet, "/api/addresses", nil, &raw, true); err != nil {
		return nil, err
	}
	out := make([]model.Address, 0, len(raw))
	for _, a := range raw {
		out = append(out, a.toModel())
	}
	return out, nil
}

// CreateAddress saves a new shipping address and returns it with its
// server-assigned id.
func (c *Client) CreateAddress(ctx context.Context, in model.AddressInput) (model.Address, error) {
	var raw rawAddress
	if err := c.doJSON(ctx, http.MethodPost, "/api/addresses", in, &raw, true); err != nil {
		return model.Address{}, err
	}
	return raw.toModel(), nil
}

// UpdateAddress replaces an existing address.
func (c *Client) UpdateAddress(ctx context.Context, id string, in model.AddressInput) (model.Address, error) {
	var raw rawAddress
	if err := c.doJSON(ctx, http.MethodPut, "/api/addresses/"+id, in, &raw, true); err != nil {
		return model.Address{}, err
	}
	return raw.toModel(), nil
}
