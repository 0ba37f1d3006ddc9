package main

import (
	"fmt"

	"centavo/internal/cli"
	"centavo/internal/export"
	"centavo/internal/model"
	"centavo/internal/report"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		flags       filterFlags
		out         string
		withSummary bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to CSV",
		Long:  `Write the (optionally filtered) expense list to a CSV file, with an optional category breakdown section.`,
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

			s := report.Summarize(expenses, model.AllTime())
			if err := export.WriteFile(out, expenses, s, withSummary); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d expense(s) to %s", len(expenses), out)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "expenses.csv", "output CSV file")
	cmd.Flags().BoolVar(&withSummary, "summary", false, "append a category breakdown section")

	return cmd
}
