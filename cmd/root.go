package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/commentcheck/cmd/check"
	"github.com/scan-io-git/commentcheck/cmd/version"
	"github.com/scan-io-git/commentcheck/pkg/shared/config"
	"github.com/scan-io-git/commentcheck/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "commentcheck [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Commentcheck enforces comment placement rules on parsed source files.",
		Long: `Commentcheck consumes the token stream of parsed source files and reports
	block comments written on a single line and line comments inside method bodies.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./commentcheck.yml or $COMMENTCHECK_CONFIG)")
	rootCmd.AddCommand(check.CheckCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return errors.ExitCode(err)
	}
	return errors.ExitOK
}

func initConfig() {
	var err error

	explicit := true
	if cfgFile == "" {
		cfgFile = os.Getenv(config.ConfigEnvVar)
	}
	if cfgFile == "" {
		cfgFile = config.DefaultConfigFile
		explicit = false
	}
	AppConfig, err = config.LoadConfig(cfgFile, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing config file function is crashed - %v \n", err)
		os.Exit(errors.ExitFailure)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errors.ExitFailure)
	}

	check.Init(AppConfig)
}
