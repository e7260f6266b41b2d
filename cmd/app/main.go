package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Vannalasai/dhanalaxmi-cli/external/backend"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/config"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/session"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/store"
)

// app is the composition root: everything the commands need, wired once.
type app struct {
	cfg      config.Config
	log      *logrus.Logger
	session  *session.Session
	cart     *services.CartService
	wishlist *services.WishlistService
	api      *backend.Client
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	// ======================
	// LOCAL STORE
	// ======================
	var st store.Store
	fileStore, err := store.NewFileStore(cfg.DataFile())
	if err != nil {
		// Persistence is best-effort: keep running on memory only.
		log.WithError(err).Warn("local data file unavailable, nothing will be saved")
		st = store.NewMemoryStore()
	} else {
		st = fileStore
	}

	// ======================
	// SESSION & BROADCAST
	// ======================
	bus := session.NewBroadcaster()
	sess := session.New(st, bus, log)
	sess.Restore()

	// ======================
	// SERVICES
	// ======================
	notifier := consoleNotifier{}
	cart := services.NewCartService(st, sess, bus, log)
	wishlist := services.NewWishlistService(st, sess, bus, notifier, log)
	api := backend.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sess)

	a := &app{
		cfg:      cfg,
		log:      log,
		session:  sess,
		cart:     cart,
		wishlist: wishlist,
		api:      api,
	}

	// ======================
	// COMMANDS (ONLY REGISTRATION)
	// ======================
	var commands []*cli.Command
	commands = append(commands, authCommands(a)...)
	commands = append(commands, shopCommands(a)...)
	commands = append(commands, cartCommands(a)...)
	commands = append(commands, wishlistCommands(a)...)
	commands = append(commands, checkoutCommands(a)...)
	commands = append(commands, orderCommands(a)...)
	commands = append(commands, addressCommands(a)...)
	commands = append(commands, adminCommands(a)...)

	cliApp := &cli.App{
		Name:     "dhanalaxmi",
		Usage:    "spice storefront and admin console",
		Commands: commands,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// consoleNotifier prints wishlist confirmations where the web
// storefront would show a toast.
type consoleNotifier struct{}

func (consoleNotifier) Notify(title, detail string) {
	if detail == "" {
		fmt.Println(title)
		return
	}
	fmt.Printf("%s: %s\n", title, detail)
}

// errSignInRequired is the route-guard answer to protected actions.
var errSignInRequired = errors.New("please log in first (dhanalaxmi login)")

// requireUser guards commands that need a signed-in user.
func (a *app) requireUser() error {
	if a.session.CurrentUserID() == "" {
		return errSignInRequired
	}
	return nil
}

// requireAdmin guards the admin console.
func (a *app) requireAdmin() error {
	u, ok := a.session.User()
	if !ok {
		return errSignInRequired
	}
	if !u.IsAdmin() {
		return errors.New("admin role required")
	}
	return nil
}

// apiErr translates a backend rejection of our token into a sign-out,
// so stale credentials never stick around. The attempted action is not
// replayed after the next login.
func (a *app) apiErr(err error) error {
	if errors.Is(err, backend.ErrUnauthorized) {
		a.session.SignOut()
		return errors.New("your session has expired, please log in again")
	}
	return err
}
