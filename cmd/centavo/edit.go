package main

import (
	"fmt"
	"strconv"

	"centavo/internal/cli"
	"centavo/internal/model"

	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	var (
		amountStr    string
		description  string
		categoryName string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Long:  `Change any subset of an expense's amount, description, and category.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%q is not a valid expense id", args[0])
			}

			var upd model.ExpenseUpdate
			if cmd.Flags().Changed("amount") {
				amount, err := parseAmount(amountStr)
				if err != nil {
					return err
				}
				upd.Amount = &amount
			}
			if cmd.Flags().Changed("description") {
				upd.Description = &description
			}
			if cmd.Flags().Changed("category") {
				category, err := model.ParseCategory(categoryName)
				if err != nil {
					return err
				}
				upd.Category = &category
			}
			if upd.Empty() {
				return fmt.Errorf("nothing to change: pass --amount, --description, or --category")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			exp, err := store.UpdateExpense(ctx, id, upd)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated expense #%d: %s - %s (%s)",
				exp.ID, cli.FormatAmount(exp.Amount), exp.Description, exp.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVarP(&categoryName, "category", "c", "", "new category")

	return cmd
}
