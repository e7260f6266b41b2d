package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
)

func wishlistCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "wishlist",
			Usage: "view and edit saved products",
			Subcommands: []*cli.Command{
				{
					Name:  "show",
					Usage: "list saved products",
					Action: func(c *cli.Context) error {
						items := a.wishlist.Items()
						if len(items) == 0 {
							fmt.Println("Your wishlist is empty.")
							return nil
						}
						for _, it := range items {
							// Price is the snapshot taken when saved.
							fmt.Printf("%s  %-30s ₹%.2f\n",
								it.ProductID, it.Name, services.RoundDisplay(it.Price))
						}
						return nil
					},
				},
				{
					Name:      "add",
					Usage:     "save a product for later",
					ArgsUsage: "<product-id>",
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						if c.NArg() != 1 {
							return cli.Exit("usage: wishlist add <product-id>", 1)
						}
						p, err := a.api.Product(c.Context, c.Args().First())
						if err != nil {
							return a.apiErr(err)
						}
						price := 0.0
						if len(p.Variants) > 0 {
							price = p.Variants[0].Price
						}
						a.wishlist.Add(model.WishlistItem{
							ProductID: p.ID,
							Name:      p.Name,
							Price:     price,
							Image:     p.Image,
						})
						return nil
					},
				},
				{
					Name:      "remove",
					Usage:     "remove a saved product",
					ArgsUsage: "<product-id>",
					Action: func(c *cli.Context) error {
						if c.NArg() != 1 {
							return cli.Exit("usage: wishlist remove <product-id>", 1)
						}
						a.wishlist.Remove(c.Args().First())
						return nil
					},
				},
				{
					Name:      "move",
					Usage:     "move a saved product into the cart",
					ArgsUsage: "<product-id>",
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						if c.NArg() != 1 {
							return cli.Exit("usage: wishlist move <product-id>", 1)
						}
						productID := c.Args().First()
						if !a.wishlist.Contains(productID) {
							return errors.New("that product is not on your wishlist")
						}

						p, err := a.api.Product(c.Context, productID)
						if err != nil {
							return a.apiErr(err)
						}
						var picked *model.Variant
						for i := range p.Variants {
							if p.Variants[i].InStock() {
								picked = &p.Variants[i]
								break
							}
						}
						if !p.InStock || picked == nil {
							return errors.New("no pack size of this product is in stock")
						}

						a.cart.Add(model.CartItemInput{
							ProductID:     p.ID,
							VariantID:     picked.ID,
							Name:          p.Name,
							Price:         picked.Price,
							OriginalPrice: picked.OriginalPrice,
							Weight:        picked.Weight,
							Image:         p.Image,
						})
						a.wishlist.Remove(productID)
						fmt.Printf("Moved %s (%s) to your cart.\n", p.Name, picked.Weight)
						return nil
					},
				},
			},
		},
	}
}
