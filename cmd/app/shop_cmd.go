package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
)

func shopCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "products",
			Usage: "browse the catalog",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "category", Usage: "only show this category"},
			},
			Action: func(c *cli.Context) error {
				products, err := a.api.Products(c.Context)
				if err != nil {
					return a.apiErr(err)
				}

				category := c.String("category")
				for _, p := range products {
					if category != "" && !strings.EqualFold(p.Category, category) {
						continue
					}
					stock := "in stock"
					if !p.InStock {
						stock = "out of stock"
					}
					from := 0.0
					if len(p.Variants) > 0 {
						from = p.Variants[0].Price
					}
					saved := ""
					if a.wishlist.Contains(p.ID) {
						saved = "  [wishlisted]"
					}
					fmt.Printf("%s  %-30s %-12s from ₹%.2f  (%s)%s\n",
						p.ID, p.Name, p.Category, services.RoundDisplay(from), stock, saved)
				}
				return nil
			},
		},
		{
			Name:      "product",
			Usage:     "show one product with its variants",
			ArgsUsage: "<product-id>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return cli.Exit("usage: product <product-id>", 1)
				}
				p, err := a.api.Product(c.Context, c.Args().First())
				if err != nil {
					return a.apiErr(err)
				}

				fmt.Printf("%s (%s)  rating %.1f\n", p.Name, p.Category, p.Rating)
				fmt.Println(p.Description)
				if len(p.Benefits) > 0 {
					fmt.Println("Benefits:", strings.Join(p.Benefits, ", "))
				}
				if p.Usage != "" {
					fmt.Println("Usage:", p.Usage)
				}
				fmt.Println("Variants:")
				for _, v := range p.Variants {
					line := fmt.Sprintf("  %s  %-8s ₹%.2f", v.ID, v.Weight, services.RoundDisplay(v.Price))
					if v.OriginalPrice != nil {
						line += fmt.Sprintf(" (was ₹%.2f)", services.RoundDisplay(*v.OriginalPrice))
					}
					if !v.InStock() {
						line += "  OUT OF STOCK"
					}
					fmt.Println(line)
				}
				return nil
			},
		},
	}
}
