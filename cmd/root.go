/*
	Copyright 2023 Markus Papenbrock
*/

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mpapenbr/f1stats-go/pkg/cmd/query"
	"github.com/mpapenbr/f1stats-go/pkg/cmd/server"
	"github.com/mpapenbr/f1stats-go/pkg/config"
	"github.com/mpapenbr/f1stats-go/version"
)

const envPrefix = "F1S"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "f1s",
	Short:   "Statistics over the historical Formula 1 dataset",
	Long:    ``,
	Version: version.FullVersion,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.f1s.yml)")

	rootCmd.PersistentFlags().StringVar(&config.DataSource, "data",
		"./data",
		"Location of the csv files (directory, http(s)://, s3://bucket/prefix, gs://bucket/prefix)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"zapfilter rules for log output, e.g. \"warn+:* debug+:store.*\"")
	rootCmd.PersistentFlags().IntVar(&config.LoadConcurrency,
		"load-concurrency",
		4,
		"max number of tables loaded in parallel (0: unlimited)")
	rootCmd.PersistentFlags().DurationVar(&config.LoadTimeout,
		"load-timeout",
		0,
		"timeout for loading a single table (0: none)")
	rootCmd.PersistentFlags().StringVarP(&config.Output,
		"output",
		"o",
		"json",
		"output format of query results (json, yaml)")
	rootCmd.PersistentFlags().StringVar(&config.S3Region,
		"s3-region",
		"",
		"region used for s3:// data sources")
	rootCmd.PersistentFlags().StringVar(&config.S3Endpoint,
		"s3-endpoint",
		"",
		"custom endpoint for s3:// data sources")

	// add commands here
	for _, c := range query.NewQueryCmds() {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(server.NewServerCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".f1s" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".f1s")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --load-timeout to F1S_LOAD_TIMEOUT
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
