package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func authCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "login",
			Usage:     "sign in with email and password",
			ArgsUsage: "<email> <password>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return cli.Exit("usage: login <email> <password>", 1)
				}
				token, user, err := a.api.Login(c.Context, c.Args().Get(0), c.Args().Get(1))
				if err != nil {
					return err
				}
				a.session.SignIn(token, user)
				fmt.Printf("Welcome back, %s!\n", user.Name)
				if !user.IsVerified {
					fmt.Println("Your email is not verified yet (dhanalaxmi send-verification).")
				}
				return nil
			},
		},
		{
			Name:  "logout",
			Usage: "sign out and clear the local cart and wishlist",
			Action: func(c *cli.Context) error {
				a.session.SignOut()
				fmt.Println("Signed out.")
				return nil
			},
		},
		{
			Name:  "register",
			Usage: "create a new account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "email", Required: true},
				&cli.StringFlag{Name: "mobile", Required: true},
				&cli.StringFlag{Name: "password", Required: true},
			},
			Action: func(c *cli.Context) error {
				err := a.api.Register(c.Context,
					c.String("name"), c.String("email"),
					c.String("mobile"), c.String("password"))
				if err != nil {
					return err
				}
				fmt.Println("Account created. Check your mail for the verification link, then log in.")
				return nil
			},
		},
		{
			Name:  "whoami",
			Usage: "show the signed-in user",
			Action: func(c *cli.Context) error {
				u, ok := a.session.User()
				if !ok {
					fmt.Println("Not signed in.")
					return nil
				}
				fmt.Printf("%s <%s> (%s, verified=%t)\n", u.Name, u.Email, u.Role, u.IsVerified)
				return nil
			},
		},
		{
			Name:      "send-verification",
			Usage:     "re-send the email verification mail",
			ArgsUsage: "<email>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return cli.Exit("usage: send-verification <email>", 1)
				}
				if err := a.api.SendVerification(c.Context, c.Args().First()); err != nil {
					return err
				}
				fmt.Println("Verification mail sent.")
				return nil
			},
		},
		{
			Name:      "forgot-password",
			Usage:     "request a password reset mail",
			ArgsUsage: "<email>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return cli.Exit("usage: forgot-password <email>", 1)
				}
				if err := a.api.ForgotPassword(c.Context, c.Args().First()); err != nil {
					return err
				}
				fmt.Println("If that account exists, a reset mail is on its way.")
				return nil
			},
		},
		{
			Name:      "reset-password",
			Usage:     "set a new password using the token from the reset mail",
			ArgsUsage: "<reset-token> <new-password>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return cli.Exit("usage: reset-password <reset-token> <new-password>", 1)
				}
				if err := a.api.ResetPassword(c.Context, c.Args().Get(0), c.Args().Get(1)); err != nil {
					return err
				}
				fmt.Println("Password updated, you can log in now.")
				return nil
			},
		},
	}
}
