package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

func addressFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "recipient name"},
		&cli.StringFlag{Name: "phone"},
		&cli.StringFlag{Name: "street"},
		&cli.StringFlag{Name: "city"},
		&cli.StringFlag{Name: "state"},
		&cli.StringFlag{Name: "zip"},
		&cli.BoolFlag{Name: "work", Usage: "mark as a work address"},
	}
}

func addressInput(c *cli.Context) (model.AddressInput, error) {
	in := model.AddressInput{
		Name:   c.String("name"),
		Phone:  c.String("phone"),
		Street: c.String("street"),
		City:   c.String("city"),
		State:  c.String("state"),
		Zip:    c.String("zip"),
		Type:   model.AddressHome,
	}
	if c.Bool("work") {
		in.Type = model.AddressWork
	}
	// Validation errors surface inline, never fatal.
	if in.Name == "" || in.Phone == "" || in.Street == "" || in.City == "" || in.State == "" || in.Zip == "" {
		return model.AddressInput{}, errors.New("all of --name --phone --street --city --state --zip are required")
	}
	return in, nil
}

func addressCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "address",
			Usage: "manage your shipping addresses",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "list saved addresses",
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						addresses, err := a.api.Addresses(c.Context)
						if err != nil {
							return a.apiErr(err)
						}
						if len(addresses) == 0 {
							fmt.Println("No saved addresses.")
							return nil
						}
						for _, addr := range addresses {
							fmt.Printf("%s  [%s] %s, %s, %s, %s %s (%s)\n",
								addr.ID, addr.Type, addr.Name, addr.Street,
								addr.City, addr.State, addr.Zip, addr.Phone)
						}
						return nil
					},
				},
				{
					Name:  "add",
					Usage: "save a new address",
					Flags: addressFlags(),
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						in, err := addressInput(c)
						if err != nil {
							return err
						}
						addr, err := a.api.CreateAddress(c.Context, in)
						if err != nil {
							return a.apiErr(err)
						}
						fmt.Printf("Address saved (%s).\n", addr.ID)
						return nil
					},
				},
				{
					Name:      "update",
					Usage:     "replace a saved address",
					ArgsUsage: "<address-id>",
					Flags:     addressFlags(),
					Action: func(c *cli.Context) error {
						if err := a.requireUser(); err != nil {
							return err
						}
						if c.NArg() != 1 {
							return cli.Exit("usage: address update <address-id> [flags]", 1)
						}
						in, err := addressInput(c)
						if err != nil {
							return err
						}
						addr, err := a.api.UpdateAddress(c.Context, c.Args().First(), in)
						if err != nil {
							return a.apiErr(err)
						}
						fmt.Printf("Address updated (%s).\n", addr.ID)
						return nil
					},
				},
			},
		},
	}
}
