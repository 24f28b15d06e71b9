package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "dfe",
	Short: "Dependent-function embedding scheduling comparator",
	Long:  "dfe synthesizes edge-computing scenarios and dependent-function workloads, then compares DPE, FixDoc, and HEFT placements.",
}

func Execute() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("config", "", "config file (default .dfe.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".dfe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("DFE")
	viper.AutomaticEnv()

	// No config file is required; built-in defaults in internal/config cover
	// every field.
	_ = viper.ReadInConfig()
}
