package main

import (
	"os"

	"centavo/internal/cli"

	"github.com/spf13/cobra"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long:  `Start the classic numbered menu loop: add, list, totals, reports, and charts from one prompt.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			menu := cli.NewMenu(store, chartRenderer(), os.Stdin, os.Stdout)
			return menu.Run(ctx)
		},
	}
}
