package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
)

func checkoutCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "checkout",
			Usage: "pay for the cart",
			Subcommands: []*cli.Command{
				{
					Name:  "begin",
					Usage: "show the price details and open a payment order",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "address", Usage: "address id (defaults to the first saved address)"},
					},
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						items := a.cart.Items()
						if len(items) == 0 {
							return errors.New("your cart is empty")
						}

						addr, err := a.pickAddress(c, c.String("address"))
						if err != nil {
							return err
						}

						details := services.ComputePriceDetails(items, a.cfg.ShippingFee)
						printPriceDetails(details)
						fmt.Printf("Shipping to: %s, %s, %s %s\n",
							addr.Street, addr.City, addr.State, addr.Zip)

						order, err := a.api.CreateOrder(c.Context, details.Payable)
						if err != nil {
							return a.apiErr(err)
						}
						fmt.Printf("\nPayment order %s opened for ₹%.2f.\n",
							order.ID, services.RoundDisplay(details.Payable))
						fmt.Println("Complete the gateway payment, then run:")
						fmt.Printf("  dhanalaxmi checkout complete --order %s --payment <id> --signature <sig> --address %s\n",
							order.ID, addr.ID)
						return nil
					},
				},
				{
					Name:  "complete",
					Usage: "verify a finished gateway payment and place the order",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "order", Required: true, Usage: "gateway order id from checkout begin"},
						&cli.StringFlag{Name: "payment", Required: true, Usage: "gateway payment id"},
						&cli.StringFlag{Name: "signature", Required: true, Usage: "gateway signature"},
						&cli.StringFlag{Name: "address", Usage: "address id (defaults to the first saved address)"},
					},
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						items := a.cart.Items()
						if len(items) == 0 {
							return errors.New("your cart is empty")
						}

						addr, err := a.pickAddress(c, c.String("address"))
						if err != nil {
							return err
						}

						details := services.ComputePriceDetails(items, a.cfg.ShippingFee)
						conf := model.PaymentConfirmation{
							PaymentID: c.String("payment"),
							OrderID:   c.String("order"),
							Signature: c.String("signature"),
						}
						msg, err := a.api.VerifyPayment(c.Context, conf, items, addr, details.Payable)
						if err != nil {
							return a.apiErr(err)
						}

						a.cart.Clear()
						if msg == "" {
							msg = "Payment successful!"
						}
						fmt.Println(msg)
						return nil
					},
				},
			},
		},
	}
}

// pickAddress resolves the shipping address: an explicit id, or the
// first saved address when none was given.
func (a *app) pickAddress(c *cli.Context, id string) (model.Address, error) {
	addresses, err := a.api.Addresses(c.Context)
	if err != nil {
		return model.Address{}, a.apiErr(err)
	}
	if len(addresses) == 0 {
		return model.Address{}, errors.New("no saved addresses, add one with: dhanalaxmi address add")
	}
	if id == "" {
		return addresses[0], nil
	}
	for _, addr := range addresses {
		if addr.ID == id {
			return addr, nil
		}
	}
	return model.Address{}, errors.New("no such address")
}

func printPriceDetails(d model.PriceDetails) {
	fmt.Println("PRICE DETAILS")
	fmt.Printf("  Price (%d items)   ₹%.2f\n", d.ItemCount, services.RoundDisplay(d.Subtotal))
	if d.ShippingFee > 0 {
		fmt.Printf("  Shipping Fee       ₹%.2f\n", services.RoundDisplay(d.ShippingFee))
	} else {
		fmt.Println("  Shipping Fee       Free")
	}
	fmt.Printf("  Total Payable      ₹%.2f\n", services.RoundDisplay(d.Payable))
	if d.Savings > 0 {
		fmt.Printf("  Your total savings on this order: ₹%.2f\n", services.RoundDisplay(d.Savings))
	}
}
