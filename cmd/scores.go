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
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/toeicprep/internal/adapter/repository"
	"github.com/eslsoft/toeicprep/internal/adapter/scoresheet"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

const (
	scoresImportInputKey  = "scores.import.input"
	scoresExportOutputKey = "scores.export.output"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Import or export the score conversion table",
}

var scoresImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the stored score conversion table with a CSV or XLSX sheet",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		inputPath := viper.GetString(scoresImportInputKey)
		if inputPath == "" {
			return fmt.Errorf("--input is required; use - for standard input")
		}
		format, err := scoresheet.FormatFromPath(inputPath)
		if err != nil {
			return err
		}

		reader := cmd.InOrStdin()
		if inputPath != "-" {
			file, openErr := os.Open(filepath.Clean(inputPath))
			if openErr != nil {
				return fmt.Errorf("open score sheet: %w", openErr)
			}
			defer file.Close()
			reader = file
		}

		rows, err := scoresheet.Read(reader, format)
		if err != nil {
			return err
		}

		_, drv, _, cleanup, err := openDatabase()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := usecase.ImportScoreTable(cmd.Context(), repository.NewScoreTableRepository(drv), rows); err != nil {
			return err
		}
		cmd.Printf("imported %d conversions from %s\n", len(rows), inputPath)
		return nil
	},
}

var scoresExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the score conversion table as a CSV or XLSX sheet",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		outputPath := viper.GetString(scoresExportOutputKey)
		if outputPath == "" {
			outputPath = "-"
		}
		format, err := scoresheet.FormatFromPath(outputPath)
		if err != nil {
			return err
		}

		_, drv, _, cleanup, err := openDatabase()
		if err != nil {
			return err
		}
		defer cleanup()

		rows, err := usecase.ExportScoreTable(cmd.Context(), repository.NewScoreTableRepository(drv))
		if err != nil {
			return err
		}

		var writer io.Writer = cmd.OutOrStdout()
		if outputPath != "-" {
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			file, createErr := os.Create(outputPath)
			if createErr != nil {
				return fmt.Errorf("create score sheet: %w", createErr)
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			writer = file
		}
		return scoresheet.Write(writer, format, rows)
	},
}

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.AddCommand(scoresImportCmd, scoresExportCmd)

	scoresImportCmd.Flags().StringP("input", "i", "", "score sheet (.csv or .xlsx), - for CSV on standard input")
	scoresExportCmd.Flags().StringP("output", "o", "-", "score sheet (.csv or .xlsx), - for CSV on standard output")

	bindFlagToViper(scoresImportInputKey, scoresImportCmd.Flags().Lookup("input"))
	bindFlagToViper(scoresExportOutputKey, scoresExportCmd.Flags().Lookup("output"))
}
