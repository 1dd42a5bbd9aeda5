// Package cmd implements the turmas command line: the terminal UI and
// scripted access to groups and rosters, against a local SQLite file or
// a remote turmas API.
package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys double as flag names, TURMAS_* env vars and YAML keys
const (
	keyConfig   = "config"
	keyServer   = "server"
	keyToken    = "token"
	keyDevice   = "device"
	keyDB       = "db"
	keyLogLevel = "log-level"
	keyLogFile  = "log-file"
)

// NewRootCmd builds the command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "turmas",
		Short: "Organize groups of players into two teams",
		Long: `Turmas keeps named groups of players split into "Time A" and "Time B".

Without --server the data lives in a local SQLite file (--db).
With --server every operation goes to a turmas API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP(keyConfig, "c", "", "config file (default is $HOME/.config/turmas/turmas.yaml)")
	flags.String(keyServer, "", "turmas API base URL (empty: local store)")
	flags.String(keyToken, "", "bearer token for the API")
	flags.String(keyDevice, "", "device id to log in with when no token is set")
	flags.String(keyDB, defaultDBPath(), "path of the local SQLite database")
	flags.String(keyLogLevel, "info", "log level: debug, info, warn, error")

	for _, key := range []string{keyConfig, keyServer, keyToken, keyDevice, keyDB, keyLogLevel} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newUICmd(v),
		newGroupsCmd(v),
		newPlayersCmd(v),
	)

	return root
}

func initConfig(v *viper.Viper) error {
	if cfgFile := v.GetString(keyConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("turmas")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "turmas"))
		}
		v.AddConfigPath(".")
	}

	// log-level reads TURMAS_LOG_LEVEL
	v.SetEnvPrefix("TURMAS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && v.GetString(keyConfig) == "" {
			return nil
		}
		return err
	}
	return nil
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("data", "turmas.db")
	}
	return filepath.Join(dir, "turmas", "turmas.db")
}
