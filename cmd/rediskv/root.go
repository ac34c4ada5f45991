package main

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/M-AnasGit/rediskv"
	redisstore "github.com/M-AnasGit/rediskv/store/redis"
)

var (
	kv rediskv.Client

	rootCmd = &cobra.Command{
		Use:               "rediskv",
		Short:             "Uniform client for a Redis-shaped key-value store",
		PersistentPreRunE: setupClient,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("addr", "localhost:6379", "address of the store server")
	rootCmd.PersistentFlags().String("username", "", "username for the store server")
	rootCmd.PersistentFlags().String("password", "", "password for the store server")
	rootCmd.PersistentFlags().Int("db", 0, "logical database to select")
	rootCmd.PersistentFlags().Bool("dev", false, "enable development diagnostics")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(delCmd)
	rootCmd.AddCommand(lpushCmd)
	rootCmd.AddCommand(lpopCmd)
	rootCmd.AddCommand(lrangeCmd)
	rootCmd.AddCommand(hsetCmd)
	rootCmd.AddCommand(hgetCmd)
	rootCmd.AddCommand(hgetallCmd)
	rootCmd.AddCommand(hdelCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(ttlCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(getAllCmd)
	rootCmd.AddCommand(flushCmd)
}

// initConfig initializes configuration from environment variables
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("rediskv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// setupClient builds the facade client from flags and environment
func setupClient(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	st, err := redisstore.New(redisstore.Config{
		Addrs:    []string{viper.GetString("addr")},
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
		DB:       viper.GetInt("db"),
	})
	if err != nil {
		return err
	}

	kv, err = rediskv.New(rediskv.Options{
		Store:       st,
		Development: viper.GetBool("dev"),
	})
	if err != nil {
		return err
	}

	return kv.Connect(cmd.Context())
}
