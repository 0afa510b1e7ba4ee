package scoring

import (
	"fmt"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// Rows flattens the table into one conversion per section and raw count.
func (t *Table) Rows() []entity.ScoreConversion {
	rows := make([]entity.ScoreConversion, 0, 2*tableSize)
	for _, section := range []entity.Section{entity.SectionListening, entity.SectionReading} {
		for raw, scaled := range t.Column(section) {
			rows = append(rows, entity.ScoreConversion{Section: section, Raw: raw, Scaled: scaled})
		}
	}
	return rows
}

// TableFromRows rebuilds a table from stored conversions. Every raw count of both
// sections must appear exactly once.
func TableFromRows(rows []entity.ScoreConversion) (*Table, error) {
	columns := map[entity.Section][]int{
		entity.SectionListening: make([]int, tableSize),
		entity.SectionReading:   make([]int, tableSize),
	}
	seen := make(map[entity.ScoreConversion]bool, len(rows))
	for _, row := range rows {
		column, ok := columns[row.Section]
		if !ok {
			return nil, &entity.InconsistentDataError{Entity: "score table", Reason: fmt.Sprintf("unknown section %q", row.Section)}
		}
		if row.Raw < 0 || row.Raw >= tableSize {
			return nil, &entity.InconsistentDataError{Entity: "score table", Reason: fmt.Sprintf("%s raw %d outside [0,%d]", row.Section, row.Raw, entity.MaxRawCount)}
		}
		key := entity.ScoreConversion{Section: row.Section, Raw: row.Raw}
		if seen[key] {
			return nil, &entity.InconsistentDataError{Entity: "score table", Reason: fmt.Sprintf("%s raw %d appears twice", row.Section, row.Raw)}
		}
		seen[key] = true
		column[row.Raw] = row.Scaled
	}
	if len(seen) != 2*tableSize {
		return nil, &entity.InconsistentDataError{Entity: "score table", Reason: fmt.Sprintf("%d of %d conversions present", len(seen), 2*tableSize)}
	}
	return NewTable(columns[entity.SectionListening], columns[entity.SectionReading])
}
