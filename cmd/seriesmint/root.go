// Root command for the seriesmint CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/seriesmint/internal/paths"
	"github.com/mesh-intelligence/seriesmint/pkg/contract"
	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

const version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagCaller    string
	flagDeposit   string
	flagJSON      bool
	flagVerbose   bool
)

// Config values loaded from config.yaml by PersistentPreRunE.
var (
	configDataDir string
	configBackend string
)

// store and ledger are attached on startup and shared by all subcommands.
var (
	store  types.Store
	ledger *contract.Contract
)

var rootCmd = &cobra.Command{
	Use:   "seriesmint",
	Short: "seriesmint is a grouped-token ledger",
	Long: `seriesmint manages series of non-fungible tokens: tokens are minted
as instances of a named series, inherit the series metadata through a
back-reference, and non-transferable tokens move only to destinations on
the contract-wide allow-list.`,
	Version:            version,
	PersistentPreRunE:  attachLedger,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return detachLedger() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.seriesmint-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite or badger (default: config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagCaller, "as", "", "account id the call executes as")
	rootCmd.PersistentFlags().StringVar(&flagDeposit, "deposit", "", "attached storage deposit, decimal yocto")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log calls and events to stderr")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(allowedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(supplyCmd)
	rootCmd.AddCommand(receiptsCmd)
}

// attachLedger loads config, attaches the store, and builds the contract
// facade shared by all subcommands.
func attachLedger(cmd *cobra.Command, args []string) error {
	// Help and shell completion never touch the store.
	switch cmd.Name() {
	case "help", "completion":
		return nil
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)
	configBackend = cfg.GetString(cfgKeyBackend)

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	backend := flagBackend
	if backend == "" {
		backend = configBackend
	}

	store, err = newStore(backend)
	if err != nil {
		return err
	}
	if err := store.Attach(types.Config{Backend: backend, DataDir: dataDir}); err != nil {
		return fmt.Errorf("attach store: %w", err)
	}

	log := zap.NewNop()
	if flagVerbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
	}
	ledger = contract.New(store,
		contract.WithLogger(log),
		contract.WithEventSink(contract.NewLogSink(log)),
	)
	return nil
}

// detachLedger releases the store. Safe to call when attach was skipped.
func detachLedger() error {
	if store != nil {
		return store.Detach()
	}
	return nil
}

// resolveDataDir follows the precedence flag > config.yaml > env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir follows the precedence flag > env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
