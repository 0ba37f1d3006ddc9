package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"centavo/internal/cli"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long:  `Delete an expense after confirmation. Use --yes to skip the prompt.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%q is not a valid expense id", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			exp, err := store.GetExpense(ctx, id)
			if err != nil {
				return err
			}

			if !skipConfirm {
				fmt.Printf("Delete expense #%d: %s - %s (%s)? [y/N] ",
					exp.ID, cli.FormatAmount(exp.Amount), exp.Description, exp.Category)

				answer, err := cli.NewLineReader(os.Stdin).ReadLine(ctx)
				if err != nil {
					return err
				}
				if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
					fmt.Println(cli.FormatWarning("Deletion canceled."))
					return nil
				}
			}

			if err := store.DeleteExpense(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense #%d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "delete without confirmation")

	return cmd
}
