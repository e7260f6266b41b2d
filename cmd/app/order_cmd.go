package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
)

func orderCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "orders",
			Usage: "show your order history",
			Action: func(c *cli.Context) error {
				if err := a.requireUser(); err != nil {
					return err
				}
				orders, err := a.api.OrderHistory(c.Context)
				if err != nil {
					return a.apiErr(err)
				}
				if len(orders) == 0 {
					fmt.Println("No orders yet.")
					return nil
				}
				for _, o := range orders {
					fmt.Printf("%s  %s  %-10s ₹%.2f\n",
						o.ID, o.OrderedAt.Format("2006-01-02"), o.OrderStatus,
						services.RoundDisplay(o.TotalAmount))
					for _, it := range o.Items {
						fmt.Printf("    %s x%d  ₹%.2f\n", it.Name, it.Quantity,
							services.RoundDisplay(it.Price))
					}
				}
				return nil
			},
		},
	}
}
