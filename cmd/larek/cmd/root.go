// Package cmd implements the larek CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weblarek/weblarek/pkg/logging"
)

// Default endpoints of the production shop API.
const (
	DefaultAPIURL = "https://larek-api.nomoreparties.co/api/weblarek"
	DefaultCDNURL = "https://larek-api.nomoreparties.co/content/weblarek"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "larek",
	Short: "Веб-ларёк storefront CLI",
	Long: `Larek is the command-line face of the Веб-ларёк storefront: browse the
product catalog, walk a basket through the two-step checkout, or run a local
mock of the shop API for development.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.SetDefault(logging.NewLoggerFromConfig(&logging.Config{
			Level:   logLevel(),
			Format:  viper.GetString("log_format"),
			Output:  viper.GetString("log_output"),
			NoColor: os.Getenv("NO_COLOR") != "",
		}))
	},
}

// Execute adds all child commands to the root command and runs it with a
// signal-aware context for graceful shutdown.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.larek.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "warnings and errors only")
	rootCmd.PersistentFlags().String("api-url", DefaultAPIURL, "shop API base URL")
	rootCmd.PersistentFlags().String("cdn-url", DefaultCDNURL, "shop content root for product images")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")

	for flag, key := range map[string]string{
		"api-url":   "api_url",
		"cdn-url":   "cdn_url",
		"log-level": "log_level",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	// .env files load first so viper's env binding sees them.
	_ = godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".larek")
		}
	}

	viper.SetEnvPrefix("larek")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

// logLevel resolves the level with flag precedence:
// --log-level, then -v, then -q, then LAREK_LOG_LEVEL, then info.
func logLevel() string {
	if lvl := viper.GetString("log_level"); lvl != "" {
		return lvl
	}
	if verbose && quiet {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if verbose {
		return "debug"
	}
	if quiet {
		return "warn"
	}
	return "info"
}
