// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the soversion CLI, which reports the
// SOMAJOR/SOMINOR/SOREV version block of a build configuration file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/soversion/internal/extract"
	"github.com/pdiddy/soversion/internal/logging"
	"github.com/pdiddy/soversion/internal/report"
	"github.com/pdiddy/soversion/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedConfig holds the run settings resolved at startup.
var loadedConfig types.ExtractorConfig

// rootCmd extracts the version block from the single path argument.
var rootCmd = &cobra.Command{
	Use:   "soversion <path-to-build-config>",
	Short: "Extract the shared-object version from a build configuration file",
	Long: `soversion reads a build configuration file (conventionally http-parser's
Makefile) and reports the SOMAJOR, SOMINOR, and SOREV assignments, which
must appear on three consecutive lines in that order.

A file that cannot be read is treated as empty and reported as having no
version information.`,
	Version: version,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return &extract.UsageError{Program: os.Args[0]}
		}
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := extractorConfig()
		if err != nil {
			return err
		}
		loadedConfig = cfg
		slog.SetDefault(logging.NewStructuredLogger(cmd.ErrOrStderr(), "soversion", version, cfg.LogLevel))
		return nil
	},
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	m, err := extract.File(args[0])
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), m, loadedConfig.Format)
}

// extractorConfig resolves the run settings from flags, environment, and
// config file.
func extractorConfig() (types.ExtractorConfig, error) {
	format, err := types.ParseOutputFormat(viper.GetString("format"))
	if err != nil {
		return types.ExtractorConfig{}, err
	}
	return types.ExtractorConfig{
		Format:   format,
		LogLevel: viper.GetString("log_level"),
	}, nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("soversion {{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./soversion.yaml or ~/.config/soversion/config.yaml)")
	rootCmd.PersistentFlags().String("format", string(types.OutputText), "output format: text, json, or yaml")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic log level: debug, info, warn, or error (default warn, or $LOG_LEVEL)")
}

func initConfig() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))

	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("soversion")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "soversion"))
		}
	}

	viper.SetEnvPrefix("SOVERSION")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// execute runs the CLI with args and returns the process exit code.
// Errors are printed to stderr as-is.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
