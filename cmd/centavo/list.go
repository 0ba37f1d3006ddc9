package main

import (
	"fmt"
	"os"

	"centavo/internal/cli"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long:  `List expenses, optionally filtered by category, date range, amount range, or keyword.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter, err := flags.build()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.ListExpenses(ctx, filter)
			if err != nil {
				return err
			}

			cli.PrintExpenses(os.Stdout, expenses)
			if len(expenses) > 0 {
				fmt.Printf("\n%d expense(s)\n", len(expenses))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
