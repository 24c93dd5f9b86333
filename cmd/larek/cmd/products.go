package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weblarek/weblarek/pkg/api"
	"github.com/weblarek/weblarek/pkg/logging"
	"github.com/weblarek/weblarek/pkg/view"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Fetch and print the product catalog",
	RunE: func(c *cobra.Command, _ []string) error {
		client := api.New(viper.GetString("api_url"),
			api.WithCDN(viper.GetString("cdn_url")),
			api.WithLogger(logging.Default()),
		)

		products := client.CatalogOrEmpty(c.Context())
		if len(products) == 0 {
			fmt.Println("Каталог пуст.")
			return nil
		}

		for _, p := range products {
			card := view.BuildCard(p, false)
			fmt.Printf("%-40s  %-16s  %s\n", card.Title, card.CategoryLabel, card.PriceLabel)
		}
		fmt.Printf("\n%d products\n", len(products))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
}
