package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/briis/secspy/internal/config"
	"github.com/briis/secspy/pkg/secspy"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "secspy",
	Short: "A CLI for the SecuritySpy webserver API",
	Long: `Inspect cameras, watch motion events, and control PTZ and arming
on a SecuritySpy server. Demonstrates the pkg/secspy client library.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient builds a client from the loaded configuration.
func newClient() *secspy.Client {
	settings := config.Load()
	if settings.Host == "" || settings.Username == "" {
		fmt.Println("Error: IPADDRESS and USERNAME must be set (via --config, ./.env or $HOME/.secspy.yaml).")
		os.Exit(1)
	}

	return secspy.New(secspy.Config{
		Host:     settings.Host,
		Port:     settings.Port,
		Username: settings.Username,
		Password: settings.Password,
		UseSSL:   settings.UseSSL,
	})
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.env or $HOME/.secspy.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}
