package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kass/go-route-analyzer/pkg/config"
	"github.com/kass/go-route-analyzer/pkg/log"
)

const envPrefix = "ROUTECTL"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "routectl",
	Short: "Route file analysis for event route maps",
	Long: `Parses GPX, TCX, KML and CSV track files into a route summary: distance,
estimated elevation gain and riding time, plus hydration stop placement.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if config.OutputFormat != config.OutputJSON && config.OutputFormat != config.OutputText {
			return fmt.Errorf("invalid output format %q", config.OutputFormat)
		}
		return log.Init(config.LogLevel, config.LogFormat)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.routectl.yml)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", "text",
		"log format (text, json)")
	rootCmd.PersistentFlags().StringVarP(&config.OutputFormat, "output", "o", config.OutputJSON,
		"output format (json, text)")

	rootCmd.AddCommand(newAnalyzeCmd(), newSnapCmd(), newBatchCmd(), newBenchCmd())
}

func main() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render(err.Error()))
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".routectl")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	cobra.CheckErr(bindFlags(rootCmd, viper.GetViper()))
}

var envKeyReplacer = strings.NewReplacer("-", "_")

// envKey maps a flag name to its environment variable, e.g. --log-level
// to ROUTECTL_LOG_LEVEL
func envKey(flag string) string {
	return envPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(flag))
}

// bindFlags fills every flag of cmd and its subcommands that was not set on
// the command line from v (config file or environment)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	apply := func(f *pflag.Flag) {
		if err := v.BindEnv(f.Name, envKey(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("bind %s: %w", f.Name, err))
			return
		}
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.LocalNonPersistentFlags().VisitAll(apply)

	for _, sub := range cmd.Commands() {
		errs = append(errs, bindFlags(sub, v))
	}
	return errors.Join(errs...)
}
