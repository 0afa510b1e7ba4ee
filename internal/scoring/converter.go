package scoring

import "github.com/eslsoft/toeicprep/internal/entity"

// Converter turns raw correct counts into scaled scores.
type Converter struct {
	table *Table
}

// NewConverter builds a converter over table, falling back to DefaultTable when nil.
func NewConverter(table *Table) *Converter {
	if table == nil {
		table = DefaultTable()
	}
	return &Converter{table: table}
}

// Convert looks up each section independently; Total is their sum.
func (c *Converter) Convert(listeningCorrect, readingCorrect int) (entity.ScaledScore, error) {
	listening, err := c.table.Lookup(entity.SectionListening, listeningCorrect)
	if err != nil {
		return entity.ScaledScore{}, err
	}
	reading, err := c.table.Lookup(entity.SectionReading, readingCorrect)
	if err != nil {
		return entity.ScaledScore{}, err
	}
	return entity.ScaledScore{
		Listening: listening,
		Reading:   reading,
		Total:     listening + reading,
	}, nil
}

// ConvertRaw is Convert over a RawScore.
func (c *Converter) ConvertRaw(raw entity.RawScore) (entity.ScaledScore, error) {
	return c.Convert(raw.ListeningCorrect, raw.ReadingCorrect)
}
