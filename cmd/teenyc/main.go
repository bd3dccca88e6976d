// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/zerolog"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultOutDir = "./tinycode/"

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "teenyc",
		Short:         "Compile teeny programs to C",
		Long:          "teenyc translates programs written in teeny, a small BASIC-like language, into C source.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cfgFile); err != nil {
				return err
			}
			processGlobalFlags()
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.teenyc.yaml)")
	flags.String("out-dir", defaultOutDir, "Directory compiled .c files are written to")
	flags.Int("max-depth", 256, "Maximum nesting depth of if and while blocks")
	flags.Int("indent", 4, "Indentation width of the generated C")
	flags.Bool("no-color", false, "Disable colored output")
	flags.CountP("verbose", "v", "Increase log verbosity (repeat for debug output)")
	flags.String("log", "", "Write logs to this file instead of stderr")

	for _, name := range []string{"out-dir", "max-depth", "indent", "no-color", "verbose", "log"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newCompileCmd(),
		newTokensCmd(),
		newAstCmd(),
		newFmtCmd(),
		newReplCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// initConfig layers the optional config file and TEENY_* environment
// variables underneath the command line flags.
func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".teenyc")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("teeny")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return err
		}
	}
	return nil
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") || !isTerminalIO() {
		color.NoColor = true
	}

	var logPath *string
	if path := viper.GetString("log"); path != "" {
		logPath = &path
	}
	// Notice level and above by default; -v adds info, -vv adds debug.
	commonlog.Configure(viper.GetInt("verbose"), logPath)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func init() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color.NoColor = true
	}
}
