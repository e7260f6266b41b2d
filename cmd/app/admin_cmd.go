package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/export"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
)

func productFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "image", Usage: "image URL"},
		&cli.StringFlag{Name: "category", Required: true},
		&cli.Float64Flag{Name: "rating", Value: 4.5},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "benefits", Usage: "comma separated"},
		&cli.StringFlag{Name: "usage"},
		&cli.StringSliceFlag{
			Name:     "variant",
			Required: true,
			Usage:    "weight,price[,originalPrice],stock — repeatable",
		},
	}
}

// parseVariant reads "250g,120,150,40" (originalPrice may be empty:
// "250g,120,,40").
func parseVariant(s string) (model.Variant, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.Variant{}, fmt.Errorf("variant %q: want weight,price,originalPrice,stock", s)
	}
	price, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return model.Variant{}, fmt.Errorf("variant %q: bad price", s)
	}
	stock, err := strconv.Atoi(parts[3])
	if err != nil {
		return model.Variant{}, fmt.Errorf("variant %q: bad stock", s)
	}
	v := model.Variant{Weight: parts[0], Price: price, Quantity: stock}
	if parts[2] != "" {
		orig, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return model.Variant{}, fmt.Errorf("variant %q: bad original price", s)
		}
		v.OriginalPrice = &orig
	}
	return v, nil
}

func productInput(c *cli.Context) (model.ProductInput, error) {
	in := model.ProductInput{
		Name:        c.String("name"),
		Image:       c.String("image"),
		Category:    c.String("category"),
		Rating:      c.Float64("rating"),
		Description: c.String("description"),
		Usage:       c.String("usage"),
	}
	if b := c.String("benefits"); b != "" {
		for _, s := range strings.Split(b, ",") {
			in.Benefits = append(in.Benefits, strings.TrimSpace(s))
		}
	}
	for _, s := range c.StringSlice("variant") {
		v, err := parseVariant(s)
		if err != nil {
			return model.ProductInput{}, err
		}
		in.Variants = append(in.Variants, v)
	}
	return in, nil
}

func adminCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "admin",
			Usage: "store administration",
			Subcommands: []*cli.Command{
				{
					Name:  "product-add",
					Usage: "add a product to the catalog",
					Flags: productFlags(),
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						in, err := productInput(c)
						if err != nil {
							return err
						}
						if err := a.api.CreateProduct(c.Context, in); err != nil {
							return a.apiErr(err)
						}
						fmt.Println("Product added.")
						return nil
					},
				},
				{
					Name:      "product-update",
					Usage:     "replace a product's fields",
					ArgsUsage: "<product-id>",
					Flags:     productFlags(),
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						if c.NArg() != 1 {
							return cli.Exit("usage: admin product-update <product-id> [flags]", 1)
						}
						in, err := productInput(c)
						if err != nil {
							return err
						}
						if err := a.api.UpdateProduct(c.Context, c.Args().First(), in); err != nil {
							return a.apiErr(err)
						}
						fmt.Println("Product updated.")
						return nil
					},
				},
				{
					Name:      "product-delete",
					Usage:     "remove a product",
					ArgsUsage: "<product-id>",
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						if c.NArg() != 1 {
							return cli.Exit("usage: admin product-delete <product-id>", 1)
						}
						if err := a.api.DeleteProduct(c.Context, c.Args().First()); err != nil {
							return a.apiErr(err)
						}
						fmt.Println("Product deleted.")
						return nil
					},
				},
				{
					Name:  "orders",
					Usage: "list all orders",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "status", Usage: "Processing, Shipped, Delivered or Cancelled"},
					},
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						orders, err := a.api.AdminOrders(c.Context)
						if err != nil {
							return a.apiErr(err)
						}
						filter := c.String("status")
						for _, o := range orders {
							if filter != "" && o.OrderStatus != filter {
								continue
							}
							buyer := ""
							if o.User != nil {
								buyer = fmt.Sprintf("%s <%s>", o.User.Name, o.User.Email)
							}
							fmt.Printf("%s  %s  %-10s ₹%.2f  %s\n",
								o.ID, o.OrderedAt.Format("2006-01-02"), o.OrderStatus,
								services.RoundDisplay(o.TotalAmount), buyer)
						}
						return nil
					},
				},
				{
					Name:      "order-status",
					Usage:     "move an order to a new status",
					ArgsUsage: "<order-id> <status>",
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						if c.NArg() != 2 {
							return cli.Exit("usage: admin order-status <order-id> <status>", 1)
						}
						status := c.Args().Get(1)
						switch status {
						case model.OrderProcessing, model.OrderShipped, model.OrderDelivered, model.OrderCancelled:
						default:
							return errors.New("status must be Processing, Shipped, Delivered or Cancelled")
						}
						if err := a.api.UpdateOrderStatus(c.Context, c.Args().Get(0), status); err != nil {
							return a.apiErr(err)
						}
						fmt.Printf("Order status updated to %s.\n", status)
						return nil
					},
				},
				{
					Name:  "export",
					Usage: "export all orders to an .xlsx workbook",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "out", Value: "orders.xlsx", Usage: "output file"},
						&cli.BoolFlag{Name: "download", Usage: "download the backend's export file instead of building one locally"},
					},
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						out := c.String("out")

						if c.Bool("download") {
							raw, err := a.api.ExportOrders(c.Context)
							if err != nil {
								return a.apiErr(err)
							}
							if err := os.WriteFile(out, raw, 0o644); err != nil {
								return err
							}
							fmt.Printf("Wrote %s (%d bytes).\n", out, len(raw))
							return nil
						}

						orders, err := a.api.AdminOrders(c.Context)
						if err != nil {
							return a.apiErr(err)
						}
						if err := export.OrdersToExcel(orders, out); err != nil {
							return err
						}
						fmt.Printf("Wrote %s (%d orders).\n", out, len(orders))
						return nil
					},
				},
				{
					Name:  "users",
					Usage: "list registered users",
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						users, err := a.api.AdminUsers(c.Context)
						if err != nil {
							return a.apiErr(err)
						}
						for _, u := range users {
							verified := "unverified"
							if u.IsVerified {
								verified = "verified"
							}
							fmt.Printf("%s  %-24s %-30s %-12s %s (%s)\n",
								u.ID, u.Name, u.Email, u.Mobile, u.Role, verified)
						}
						return nil
					},
				},
				{
					Name:  "watch",
					Usage: "stream new orders as they come in",
					Action: func(c *cli.Context) error {
						if err := a.requireAdmin(); err != nil {
							return err
						}
						fmt.Println("Watching for new orders (ctrl-c to stop)...")
						err := a.api.WatchOrders(c.Context, func(o model.Order) {
							buyer := ""
							if o.User != nil {
								buyer = " from " + o.User.Name
							}
							fmt.Printf("New order %s%s: ₹%.2f\n",
								o.ID, buyer, services.RoundDisplay(o.TotalAmount))
						})
						if err != nil {
							return a.apiErr(err)
						}
						return nil
					},
				},
			},
		},
	}
}
