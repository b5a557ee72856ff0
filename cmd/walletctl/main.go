// walletctl is a small admin CLI over the wallet document: inspect the
// balance and transaction log, or reset the store to sample data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geepay-ngn/wallet/internal/config"
	"github.com/geepay-ngn/wallet/internal/data/store"
	"github.com/geepay-ngn/wallet/internal/logger"
	"github.com/geepay-ngn/wallet/internal/money"
	"github.com/geepay-ngn/wallet/internal/platform/persistence"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "walletctl",
		Short: "Administer the local wallet document",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newTransactionsCommand())
	rootCmd.AddCommand(newResetCommand())

	return rootCmd
}

// openStore loads config and opens the account store over the file backend.
func openStore(ctx context.Context, seed bool) (*store.AccountStore, error) {
	cfg, err := config.LoadConfig("wallet_server")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewLogger(cfg)
	backend := persistence.NewFileStore(log, cfg.Storage.FilePath)
	return store.Open(ctx, log, backend, seed)
}

func newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the current account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := openStore(cmd.Context(), false)
			if err != nil {
				return err
			}

			acc := accounts.GetAccount()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): ₦%s\n",
				acc.DisplayName, acc.AccountNumber, money.FormatMinor(acc.Balance))
			return nil
		},
	}
}

func newTransactionsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Print the transaction log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := openStore(cmd.Context(), false)
			if err != nil {
				return err
			}

			for _, rec := range accounts.ListTransactions(limit, 0) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s  ₦%-12s  %s\n",
					rec.CreatedAt.Format("2006-01-02 15:04"),
					rec.Direction,
					money.FormatMinor(rec.Amount),
					rec.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of transactions to print")
	return cmd
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard all state and reseed the sample document",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := openStore(cmd.Context(), true)
			if err != nil {
				return err
			}

			if err := accounts.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wallet reset to sample data")
			return nil
		},
	}
}
