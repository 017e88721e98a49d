// Package main is the readinessctl CLI: it talks to a running gymready
// service and evaluates readiness offline.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/gymready/internal/gymstats/remote"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "readinessctl",
		Short: "Query and feed the gymready progression service",
		Long: `readinessctl submits recovery surveys and session logs to a gymready service,
asks it for progression suggestions, and computes readiness scores offline.

Connection settings come from flags, GYMREADY_* environment variables, or a
readinessctl.yaml config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./readinessctl.yaml or ~/.config/readinessctl/readinessctl.yaml)")
	rootCmd.PersistentFlags().String("server", "http://localhost:9000", "gymready service base URL")
	rootCmd.PersistentFlags().String("token", "", "app secret sent in the auth header")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	_ = v.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = v.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = v.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	clientFn := func() *remote.Client {
		timeout := v.GetDuration("timeout")
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		return remote.NewClient(v.GetString("server"), v.GetString("token"), &http.Client{Timeout: timeout})
	}

	rootCmd.AddCommand(
		newSuggestCmd(clientFn),
		newSurveyCmd(clientFn),
		newSessionCmd(clientFn),
		newScoreCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("readinessctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "readinessctl"))
		}
	}

	v.SetEnvPrefix("GYMREADY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of readinessctl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "readinessctl %s\n", version)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
