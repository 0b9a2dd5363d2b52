package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	outputFmt   string
	levelFilter string
	msgPatterns []string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "pagespy",
	Short: "PageSpy — remote debugging console",
	Long: `PageSpy attaches to one live debugging session on a remote
instrumented target, folds its telemetry stream (console, network,
system, page, storage, database) into a consistent in-memory snapshot,
and serves that snapshot to your terminal and a live web dashboard.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.pagespy.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().StringVarP(&levelFilter, "level", "l", "", "display filter by severity (comma-separated: info,warn,error)")
	rootCmd.PersistentFlags().StringSliceVarP(&msgPatterns, "filter", "f", nil, "display filter glob patterns matched against messages (e.g. 'api/**')")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".pagespy")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
