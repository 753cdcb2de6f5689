package cli

import (
	"os"

	"github.com/paydaycal/paydaycal/internal/app"
	"github.com/paydaycal/paydaycal/internal/config"
	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:          "paydaycal",
	Short:        "Daily allowance across a pay period",
	Long:         "Splits a monthly budget into a flat daily allowance with a reduced Saturday budget, from one pay day to the next.",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the allowance schedule over HTTP",
	RunE:  runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultPath, "Path to the YAML configuration file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	return app.NewApplication(cfg).Run()
}
