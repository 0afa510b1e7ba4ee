/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"

	"entgo.io/ent/dialect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
	"github.com/eslsoft/toeicprep/internal/infrastructure/database"
	"github.com/eslsoft/toeicprep/internal/infrastructure/server"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "toeicprep",
	Short:         "TOEIC assessment and adaptive review engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("db-driver", "", "database driver (postgres, pgx, sqlite3, sqlite)")
	rootCmd.PersistentFlags().String("db-path", "", "database file for the sqlite drivers")

	bindFlagToViper("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlagToViper("database.driver", rootCmd.PersistentFlags().Lookup("db-driver"))
	bindFlagToViper("database.path", rootCmd.PersistentFlags().Lookup("db-path"))
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// openDatabase loads the configuration and opens the configured database.
func openDatabase() (*config.Config, dialect.Driver, *logrus.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	drv, cleanup, err := database.Open(cfg, logger)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, drv, logger, cleanup, nil
}
