package model

// Address types accepted by the backend.
const (
	AddressHome = "HOME"
	AddressWork = "WORK"
)

// Address is a shipping address from the user's address book.
type Address struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Type   string `json:"type"`
}

// AddressInput is the payload for creating or updating an address.
type AddressInput struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Type   string `json:"type"`
}
