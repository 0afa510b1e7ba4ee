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

	"github.com/spf13/cobra"

	"github.com/eslsoft/toeicprep/internal/adapter/repository"
	"github.com/eslsoft/toeicprep/internal/infrastructure/database"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

// migrateCmd creates or upgrades the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		seedScores, _ := cmd.Flags().GetBool("seed-scores")
		ctx := cmd.Context()

		_, drv, logger, cleanup, err := openDatabase()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := database.Migrate(ctx, drv); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("schema is up to date")

		if seedScores {
			if err := usecase.SeedScoreTable(ctx, repository.NewScoreTableRepository(drv)); err != nil {
				return err
			}
			logger.Info("stored the built-in score conversion table")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Bool("seed-scores", false, "store the built-in score conversion table, replacing any stored one")
}
