package usecase

import (
	"context"
	"fmt"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/internal/scoring"
)

// Score table sources.
const (
	ScoreSourceBuiltin  = "builtin"
	ScoreSourceDatabase = "database"
)

// LoadScoreConverter builds the converter from the configured table source.
func LoadScoreConverter(ctx context.Context, source string, repo repository.ScoreTableRepository) (*scoring.Converter, error) {
	switch source {
	case "", ScoreSourceBuiltin:
		return scoring.NewConverter(scoring.DefaultTable()), nil
	case ScoreSourceDatabase:
		rows, err := repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load score table: %w", err)
		}
		table, err := scoring.TableFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("load score table: %w", err)
		}
		return scoring.NewConverter(table), nil
	default:
		return nil, fmt.Errorf("unknown score table source %q", source)
	}
}

// SeedScoreTable stores the built-in table, replacing any stored one.
func SeedScoreTable(ctx context.Context, repo repository.ScoreTableRepository) error {
	if err := repo.Replace(ctx, scoring.DefaultTable().Rows()); err != nil {
		return fmt.Errorf("seed score table: %w", err)
	}
	return nil
}

// ImportScoreTable stores rows after checking they form a complete table.
func ImportScoreTable(ctx context.Context, repo repository.ScoreTableRepository, rows []entity.ScoreConversion) error {
	table, err := scoring.TableFromRows(rows)
	if err != nil {
		return fmt.Errorf("import score table: %w", err)
	}
	if err := repo.Replace(ctx, table.Rows()); err != nil {
		return fmt.Errorf("import score table: %w", err)
	}
	return nil
}

// ExportScoreTable returns the stored table, or the built-in one when none is stored.
func ExportScoreTable(ctx context.Context, repo repository.ScoreTableRepository) ([]entity.ScoreConversion, error) {
	rows, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("export score table: %w", err)
	}
	if len(rows) == 0 {
		return scoring.DefaultTable().Rows(), nil
	}
	return rows, nil
}
