package scoring

import (
	"fmt"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// MaxSectionScore is the highest scaled score of one section.
const MaxSectionScore = 495

// tableSize covers raw counts 0..MaxRawCount inclusive.
const tableSize = entity.MaxRawCount + 1

// Table maps raw correct counts to scaled section scores.
type Table struct {
	listening []int
	reading   []int
}

// NewTable validates and copies the two section columns.
func NewTable(listening, reading []int) (*Table, error) {
	if err := validateColumn(entity.SectionListening, listening); err != nil {
		return nil, err
	}
	if err := validateColumn(entity.SectionReading, reading); err != nil {
		return nil, err
	}
	return &Table{
		listening: append([]int(nil), listening...),
		reading:   append([]int(nil), reading...),
	}, nil
}

// DefaultTable returns the built-in conversion chart.
func DefaultTable() *Table {
	return &Table{listening: defaultListening[:], reading: defaultReading[:]}
}

// Lookup returns the scaled score for raw correct answers in section.
func (t *Table) Lookup(section entity.Section, raw int) (int, error) {
	if raw < 0 || raw > entity.MaxRawCount {
		return 0, &entity.RangeError{Section: section, Raw: raw}
	}
	switch section {
	case entity.SectionListening:
		return t.listening[raw], nil
	case entity.SectionReading:
		return t.reading[raw], nil
	default:
		return 0, entity.InvalidArgumentf("unknown section %q", section)
	}
}

// Column returns a copy of one section's column, indexed by raw count.
func (t *Table) Column(section entity.Section) []int {
	if section == entity.SectionListening {
		return append([]int(nil), t.listening...)
	}
	return append([]int(nil), t.reading...)
}

func validateColumn(section entity.Section, column []int) error {
	if len(column) != tableSize {
		return &entity.InconsistentDataError{
			Entity: "score table",
			Reason: fmt.Sprintf("%s column has %d rows, want %d", section, len(column), tableSize),
		}
	}
	prev := 0
	for raw, scaled := range column {
		switch {
		case scaled < 0 || scaled > MaxSectionScore:
			return &entity.InconsistentDataError{
				Entity: "score table",
				Reason: fmt.Sprintf("%s raw %d maps to %d, outside [0,%d]", section, raw, scaled, MaxSectionScore),
			}
		case scaled%5 != 0:
			return &entity.InconsistentDataError{
				Entity: "score table",
				Reason: fmt.Sprintf("%s raw %d maps to %d, not a multiple of 5", section, raw, scaled),
			}
		case scaled < prev:
			return &entity.InconsistentDataError{
				Entity: "score table",
				Reason: fmt.Sprintf("%s raw %d maps to %d, below raw %d (%d)", section, raw, scaled, raw-1, prev),
			}
		}
		prev = scaled
	}
	return nil
}

// Approximation of the publicly circulated TOEIC Listening & Reading conversion chart.
var defaultListening = [tableSize]int{
	5, 5, 5, 5, 5, 5, 5, 10, 15, 20, // 0-9
	25, 30, 35, 40, 45, 50, 55, 60, 65, 70, // 10-19
	75, 80, 85, 90, 95, 100, 110, 115, 120, 125, // 20-29
	130, 135, 140, 145, 150, 160, 165, 170, 175, 180, // 30-39
	185, 190, 195, 200, 210, 215, 220, 230, 240, 245, // 40-49
	250, 255, 260, 270, 275, 280, 290, 295, 300, 310, // 50-59
	315, 320, 325, 330, 340, 345, 350, 360, 365, 370, // 60-69
	380, 385, 390, 395, 400, 405, 410, 420, 425, 430, // 70-79
	440, 445, 450, 460, 465, 470, 475, 480, 485, 490, // 80-89
	495, 495, 495, 495, 495, 495, 495, 495, 495, 495, // 90-99
	495, // 100
}

var defaultReading = [tableSize]int{
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, // 0-9
	10, 15, 20, 25, 30, 35, 40, 45, 50, 55, // 10-19
	60, 65, 70, 75, 80, 85, 90, 95, 100, 105, // 20-29
	115, 120, 125, 130, 135, 140, 145, 150, 160, 165, // 30-39
	170, 175, 180, 185, 190, 195, 200, 210, 215, 220, // 40-49
	225, 230, 235, 240, 250, 255, 260, 265, 270, 280, // 50-59
	285, 290, 300, 305, 310, 320, 325, 330, 335, 340, // 60-69
	350, 355, 360, 365, 370, 380, 385, 390, 395, 400, // 70-79
	405, 410, 415, 420, 425, 430, 435, 445, 450, 455, // 80-89
	465, 470, 480, 485, 490, 495, 495, 495, 495, 495, // 90-99
	495, // 100
}
