package main

import (
	"fmt"

	"centavo/internal/model"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories",
		Long:  `Display the fixed set of categories an expense can belong to.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, c := range model.Categories() {
				fmt.Println(c)
			}
			return nil
		},
	}
}
