/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var optVerbose bool
var optQuiet bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gazed",
	Short: "Clean and summarize eye-gaze recordings",
	Long: `gazed ingests raw eye-tracker sample exports (SMI iView),
repairs short dropout runs by linear interpolation, and summarizes
fixation paths for analysis.`,
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gazed.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&optVerbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&optQuiet, "quiet", "q", false, "warnings and errors only")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gazed" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gazed")
	}

	viper.SetEnvPrefix("GAZED")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if optVerbose {
		level = slog.LevelDebug
	}
	if optQuiet {
		level = slog.LevelWarn
	}
	slog.SetLogLoggerLevel(level)
}
