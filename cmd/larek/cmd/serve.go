package cmd

import (
	"github.com/spf13/cobra"

	"github.com/weblarek/weblarek/internal/server"
	"github.com/weblarek/weblarek/pkg/logging"
)

var (
	serveAddr    string
	serveCatalog string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local mock of the shop API",
	Long: `Serve the product-list and order endpoints locally, backed by a YAML
catalog file or the embedded sample catalog. Point the other commands at it
with --api-url http://localhost:8081/api.`,
	RunE: func(c *cobra.Command, _ []string) error {
		cfg := server.DefaultConfig()
		cfg.Addr = serveAddr
		cfg.CatalogPath = serveCatalog

		srv, err := server.New(cfg, logging.Default())
		if err != nil {
			return err
		}
		return srv.ListenAndServe(c.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8081", "listen address")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "YAML catalog file (default: embedded sample)")
	rootCmd.AddCommand(serveCmd)
}
