package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	statePath string
	apiURL    string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "akwaba",
	Short: "Shop the Akwaba Bébé store from your terminal",
	Long: `A command-line client for the Akwaba Bébé baby-products store.

The tool talks to the store's REST API and keeps your cart and login
session in a local state database, so both survive between invocations.

Quick Start:
  akwaba products list               # Browse the catalog
  akwaba cart add 42                 # Put product 42 in your cart
  akwaba cart                        # Review the cart
  akwaba checkout --city Abidjan ... # Place the order

Admin accounts additionally manage products, categories, orders,
articles and the contact inbox.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Custom state database location")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Store API base URL (overrides config)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// env bundles everything a command needs: config, open state store,
// hydrated cart, current session and the API client.
type env struct {
	cfg     internal.Config
	store   *internal.LocalStore
	cart    *internal.CartStore
	session *internal.Session
	api     *internal.Client
}

// openEnv resolves config, opens the state database and wires the
// gateway. Every subcommand starts here.
func openEnv() (*env, error) {
	dir, err := internal.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	cfg := internal.LoadConfig(dir)

	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if statePath != "" {
		cfg.StatePath = statePath
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	store, err := internal.OpenLocalStore(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	cart := internal.NewCartStore(store)
	cart.Hydrate()

	session := internal.LoadSession(store)

	gw := internal.NewGateway(store)
	gw.OnSessionExpired = func() {
		fmt.Fprintln(os.Stderr, "Your session has expired. Run `akwaba login` to sign in again.")
	}

	token := ""
	if session != nil {
		token = session.Token
	}
	api := internal.NewClient(cfg.APIURL, gw, token)

	return &env{cfg: cfg, store: store, cart: cart, session: session, api: api}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		internal.LogWarn("Failed to close state database: %v", err)
	}
}

// requireSession fails fast when no credential is stored.
func (e *env) requireSession() error {
	if e.session == nil {
		return fmt.Errorf("not logged in: run `akwaba login` first")
	}
	return nil
}

// requireAdmin fails fast for non-admin sessions, matching the role
// gate the web back-office applies.
func (e *env) requireAdmin() error {
	if err := e.requireSession(); err != nil {
		return err
	}
	if !e.session.IsAdmin() {
		return fmt.Errorf("this command requires an admin account")
	}
	return nil
}
