package cmd

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/gateways"
	"github.com/bprathamesh20/food-delivery/initializers"
	"github.com/bprathamesh20/food-delivery/store"
)

// app is the wiring every command shares: configuration, the local state
// database, the stores hydrated from it, and the API client fed by them.
type app struct {
	cfg          initializers.Config
	db           *badger.DB
	session      *store.SessionStore
	agentSession *store.AgentSessionStore
	cart         *store.CartStore
	client       *gateways.Client
}

var a *app

var rootCmd = &cobra.Command{
	Use:           "food-delivery",
	Short:         "Order food and run deliveries from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initializers.LoadEnv()
		cfg := initializers.LoadConfig()

		db, err := initializers.ConnectToDB(cfg.DataDir)
		if err != nil {
			return err
		}

		local := store.New(db)
		session := store.NewSessionStore(local)
		session.Init()
		agentSession := store.NewAgentSessionStore(local)
		agentSession.Init()
		cart := store.NewCartStore(local)
		cart.Init()

		client := gateways.NewClient(cfg)
		client.SetCustomerTokenSource(session)
		client.SetAgentTokenSource(agentSession)
		client.OnUnauthorized(func(scope gateways.Scope) {
			switch scope {
			case gateways.ScopeAgent:
				agentSession.Logout()
				fmt.Println("Agent session expired. Run `food-delivery agent login` to continue.")
			default:
				session.Logout()
				fmt.Println("Session expired. Run `food-delivery login` to continue.")
			}
		})

		a = &app{
			cfg:          cfg,
			db:           db,
			session:      session,
			agentSession: agentSession,
			cart:         cart,
			client:       client,
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a != nil && a.db != nil {
			_ = a.db.Close()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

var errNotLoggedIn = errors.New("please log in first (`food-delivery login`)")
var errAgentNotLoggedIn = errors.New("please log in as an agent first (`food-delivery agent login`)")

func requireCustomer() error {
	if !a.session.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

func requireAgent() error {
	if !a.agentSession.IsAuthenticated() {
		return errAgentNotLoggedIn
	}
	return nil
}
