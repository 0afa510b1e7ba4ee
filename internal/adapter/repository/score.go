package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"github.com/samber/lo"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
)

const tableScoreConversions = "score_conversions"

type scoreConversionRow struct {
	Section string `sql:"section"`
	Raw     int    `sql:"raw"`
	Scaled  int    `sql:"scaled"`
}

type scoreTableRepository struct {
	store
}

// NewScoreTableRepository constructs the SQL-backed score conversion table.
func NewScoreTableRepository(drv dialect.Driver) repository.ScoreTableRepository {
	return &scoreTableRepository{store: newStore(drv)}
}

func (r *scoreTableRepository) Load(ctx context.Context) ([]entity.ScoreConversion, error) {
	b := r.builder()
	t := b.Table(tableScoreConversions)
	var rows []scoreConversionRow
	err := scanAll(ctx, r.drv, b.Select(t.Columns("section", "raw", "scaled")...).
		From(t).
		OrderBy(t.C("section"), t.C("raw")), &rows)
	if err != nil {
		return nil, fmt.Errorf("load score table: %w", err)
	}
	return lo.Map(rows, func(row scoreConversionRow, _ int) entity.ScoreConversion {
		return entity.ScoreConversion{Section: entity.Section(row.Section), Raw: row.Raw, Scaled: row.Scaled}
	}), nil
}

func (r *scoreTableRepository) Replace(ctx context.Context, rows []entity.ScoreConversion) error {
	err := r.tx(ctx, func(tx dialect.Tx) error {
		b := r.builder()
		if _, err := exec(ctx, tx, b.Delete(tableScoreConversions)); err != nil {
			return err
		}
		for _, chunk := range lo.Chunk(rows, 100) {
			ins := b.Insert(tableScoreConversions).Columns("section", "raw", "scaled")
			for _, row := range chunk {
				ins.Values(string(row.Section), row.Raw, row.Scaled)
			}
			if _, err := exec(ctx, tx, ins); err != nil {
				return translateError(err, entity.ErrNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace score table: %w", err)
	}
	return nil
}
