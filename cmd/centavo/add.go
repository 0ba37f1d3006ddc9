package main

import (
	"fmt"
	"time"

	"centavo/internal/cli"
	"centavo/internal/model"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		categoryName string
		dateStr      string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Record a new expense",
		Long:  `Record a new expense with an amount, a description, and a category.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			category, err := model.ParseCategory(categoryName)
			if err != nil {
				return err
			}

			var createdAt time.Time
			if dateStr != "" {
				createdAt, err = parseDay(dateStr)
				if err != nil {
					return err
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			exp, err := store.CreateExpense(ctx, model.NewExpense{
				Amount:      amount,
				Description: args[1],
				Category:    category,
				CreatedAt:   createdAt,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added expense #%d: %s - %s (%s)",
				exp.ID, cli.FormatAmount(exp.Amount), exp.Description, exp.Category)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryName, "category", "c", string(model.CategoryOther),
		fmt.Sprintf("expense category (%s)", model.CategoryNames()))
	cmd.Flags().StringVar(&dateStr, "date", "", "expense date (YYYY-MM-DD, default: now)")

	return cmd
}
