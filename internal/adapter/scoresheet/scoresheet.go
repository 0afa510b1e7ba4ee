// Package scoresheet reads and writes score conversion tables as CSV or XLSX sheets
// with a section,raw,scaled header.
package scoresheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// Format is a sheet encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet written to and preferred when reading XLSX files.
const SheetName = "scores"

var header = []string{"section", "raw", "scaled"}

// ErrUnknownFormat is returned for extensions other than .csv and .xlsx.
var ErrUnknownFormat = errors.New("unknown score sheet format")

// FormatFromPath picks the format from a file extension. "-" means CSV on stdio.
func FormatFromPath(path string) (Format, error) {
	if path == "-" {
		return FormatCSV, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Read parses every data row of the sheet. It checks cell syntax only; completeness of
// the table is up to the caller.
func Read(r io.Reader, format Format) ([]entity.ScoreConversion, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		records, err = reader.ReadAll()
	case FormatXLSX:
		records, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s score sheet: %w", format, err)
	}
	return parseRecords(records)
}

// Write encodes rows with a header line.
func Write(w io.Writer, format Format, rows []entity.ScoreConversion) error {
	switch format {
	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write(header); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writer.Write([]string{string(row.Section), strconv.Itoa(row.Raw), strconv.Itoa(row.Scaled)}); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	case FormatXLSX:
		return writeXLSX(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := SheetName
	if idx, _ := f.GetSheetIndex(SheetName); idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	return f.GetRows(sheet)
}

func writeXLSX(w io.Writer, rows []entity.ScoreConversion) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{string(row.Section), row.Raw, row.Scaled}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func parseRecords(records [][]string) ([]entity.ScoreConversion, error) {
	rows := make([]entity.ScoreConversion, 0, len(records))
	for i, rec := range records {
		line := i + 1
		if isBlank(rec) {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), header[0]) {
			continue
		}
		if len(rec) < len(header) {
			return nil, entity.InvalidArgumentf("line %d: want %d columns, got %d", line, len(header), len(rec))
		}
		section := entity.Section(strings.ToLower(strings.TrimSpace(rec[0])))
		if section != entity.SectionListening && section != entity.SectionReading {
			return nil, entity.InvalidArgumentf("line %d: unknown section %q", line, rec[0])
		}
		raw, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, entity.InvalidArgumentf("line %d: raw %q is not a number", line, rec[1])
		}
		scaled, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, entity.InvalidArgumentf("line %d: scaled %q is not a number", line, rec[2])
		}
		rows = append(rows, entity.ScoreConversion{Section: section, Raw: raw, Scaled: scaled})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
