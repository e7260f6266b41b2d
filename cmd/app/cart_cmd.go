package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
)

func cartCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "cart",
			Usage: "view and edit the cart",
			Subcommands: []*cli.Command{
				{
					Name:  "show",
					Usage: "list the cart lines",
					Action: func(c *cli.Context) error {
						items := a.cart.Items()
						if len(items) == 0 {
							fmt.Println("Your cart is empty.")
							return nil
						}
						for _, it := range items {
							fmt.Printf("%s  %-28s %-8s x%d  ₹%.2f\n",
								it.VariantID, it.Name, it.Weight, it.Quantity,
								services.RoundDisplay(it.Subtotal()))
						}
						fmt.Printf("Total: ₹%.2f (%d items)\n",
							services.RoundDisplay(a.cart.TotalPrice()), a.cart.ItemCount())
						return nil
					},
				},
				{
					Name:      "add",
					Usage:     "add one unit of a product variant",
					ArgsUsage: "<product-id> <variant-id>",
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						if c.NArg() != 2 {
							return cli.Exit("usage: cart add <product-id> <variant-id>", 1)
						}

						p, err := a.api.Product(c.Context, c.Args().Get(0))
						if err != nil {
							return a.apiErr(err)
						}
						v := p.FindVariant(c.Args().Get(1))
						if v == nil {
							return errors.New("no such variant")
						}
						// Stock is enforced here, at the catalog layer;
						// the cart itself accepts whatever it is given.
						if !p.InStock || !v.InStock() {
							return errors.New("this pack size is out of stock")
						}

						a.cart.Add(model.CartItemInput{
							ProductID:     p.ID,
							VariantID:     v.ID,
							Name:          p.Name,
							Price:         v.Price,
							OriginalPrice: v.OriginalPrice,
							Weight:        v.Weight,
							Image:         p.Image,
						})
						fmt.Printf("Added %s (%s) to your cart.\n", p.Name, v.Weight)
						return nil
					},
				},
				{
					Name:      "remove",
					Usage:     "remove a line from the cart",
					ArgsUsage: "<variant-id>",
					Action: func(c *cli.Context) error {
						if c.NArg() != 1 {
							return cli.Exit("usage: cart remove <variant-id>", 1)
						}
						a.cart.Remove(c.Args().First())
						fmt.Println("Removed.")
						return nil
					},
				},
				{
					Name:      "qty",
					Usage:     "set a line's quantity (0 removes it)",
					ArgsUsage: "<variant-id> <quantity>",
					Action: func(c *cli.Context) error {
						if c.NArg() != 2 {
							return cli.Exit("usage: cart qty <variant-id> <quantity>", 1)
						}
						n, err := strconv.Atoi(c.Args().Get(1))
						if err != nil {
							return errors.New("quantity must be a number")
						}
						a.cart.SetQuantity(c.Args().Get(0), n)
						fmt.Println("Updated.")
						return nil
					},
				},
				{
					Name:  "clear",
					Usage: "empty the cart",
					Action: func(c *cli.Context) error {
						a.cart.Clear()
						fmt.Println("Cart cleared.")
						return nil
					},
				},
			},
		},
	}
}
