package services

import (
	"math"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

// ComputePriceDetails derives the checkout summary from the cart lines
// and the shipping fee policy. It never mutates the lines.
//
// Unit prices are already the sale prices, so the payable amount is
// subtotal plus shipping. Savings compares against the original price
// where one is known and is shown for information only.
func ComputePriceDetails(items []model.CartItem, shippingFee float64) model.PriceDetails {
	var (
		count    int
		subtotal float64
		savings  float64
	)
	for _, it := range items {
		count += it.Quantity
		subtotal += it.Subtotal()
		if it.OriginalPrice != nil && *it.OriginalPrice > it.Price {
			savings += (*it.OriginalPrice - it.Price) * float64(it.Quantity)
		}
	}

	return model.PriceDetails{
		ItemCount:   count,
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Savings:     savings,
		Payable:     subtotal + shippingFee,
	}
}

// RoundDisplay rounds a money amount to two decimals for presentation.
// All internal math and comparisons stay unrounded.
func RoundDisplay(v float64) float64 {
	return math.Round(v*100) / 100
}
