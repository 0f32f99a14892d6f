package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// InitConfig reads in a config file and ENV variables if set. Lookup
// order: the --config flag, a .env file in the working directory
// (USERNAME, PASSWORD, IPADDRESS, PORT, USE_SSL), then
// $HOME/.secspy.yaml.
func InitConfig(cfgFile string) {
	switch {
	case cfgFile != "":
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	case fileExists(".env"):
		viper.SetConfigFile(".env")
		viper.SetConfigType("env")
	default:
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".secspy")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// A missing file is fine; settings may come from the environment.
	_ = viper.ReadInConfig()
}

// Settings are the server connection values the commands need.
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
	UseSSL   bool
}

// Load pulls the connection settings out of viper. The port defaults
// to SecuritySpy's stock 8000.
func Load() Settings {
	port := viper.GetInt("port")
	if port == 0 {
		port = 8000
	}
	return Settings{
		Host:     viper.GetString("ipaddress"),
		Port:     port,
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
		UseSSL:   viper.GetBool("use_ssl"),
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
