package scoring

import (
	"errors"
	"testing"

	"github.com/eslsoft/toeicprep/internal/entity"
)

func TestConvertIsMonotonicPerSection(t *testing.T) {
	c := NewConverter(nil)
	prevL, prevR := -1, -1
	for raw := 0; raw <= entity.MaxRawCount; raw++ {
		got, err := c.Convert(raw, raw)
		if err != nil {
			t.Fatalf("Convert(%d,%d) returned error: %v", raw, raw, err)
		}
		if got.Listening < prevL {
			t.Fatalf("listening not monotonic at raw %d: %d < %d", raw, got.Listening, prevL)
		}
		if got.Reading < prevR {
			t.Fatalf("reading not monotonic at raw %d: %d < %d", raw, got.Reading, prevR)
		}
		prevL, prevR = got.Listening, got.Reading
	}
}

func TestConvertTotalIsSum(t *testing.T) {
	c := NewConverter(nil)
	for l := 0; l <= entity.MaxRawCount; l += 7 {
		for r := 0; r <= entity.MaxRawCount; r += 11 {
			got, err := c.Convert(l, r)
			if err != nil {
				t.Fatalf("Convert(%d,%d) returned error: %v", l, r, err)
			}
			if got.Total != got.Listening+got.Reading {
				t.Fatalf("Convert(%d,%d) total %d != %d+%d", l, r, got.Total, got.Listening, got.Reading)
			}
			if got.Total < 0 || got.Total > 2*MaxSectionScore {
				t.Fatalf("Convert(%d,%d) total %d out of range", l, r, got.Total)
			}
		}
	}
}

func TestConvertExample(t *testing.T) {
	got, err := NewConverter(nil).Convert(95, 90)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got.Listening%5 != 0 || got.Reading%5 != 0 {
		t.Fatalf("expected multiples of 5, got %+v", got)
	}
	if got.Total != got.Listening+got.Reading {
		t.Fatalf("total mismatch: %+v", got)
	}
	if got.Listening != 495 || got.Reading != 465 {
		t.Fatalf("unexpected scaled score %+v", got)
	}
}

func TestConvertRejectsOutOfRange(t *testing.T) {
	c := NewConverter(nil)
	cases := []struct {
		name      string
		listening int
		reading   int
		section   entity.Section
	}{
		{name: "negative listening", listening: -1, reading: 10, section: entity.SectionListening},
		{name: "listening above max", listening: 101, reading: 10, section: entity.SectionListening},
		{name: "reading above max", listening: 10, reading: 150, section: entity.SectionReading},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Convert(tc.listening, tc.reading)
			if !errors.Is(err, entity.ErrScoreOutOfRange) {
				t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
			}
			var rangeErr *entity.RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected *RangeError, got %T", err)
			}
			if rangeErr.Section != tc.section {
				t.Fatalf("expected section %s, got %s", tc.section, rangeErr.Section)
			}
		})
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	c := NewConverter(nil)
	first, _ := c.Convert(42, 77)
	for i := 0; i < 10; i++ {
		again, _ := c.Convert(42, 77)
		if again != first {
			t.Fatalf("conversion changed between calls: %+v vs %+v", first, again)
		}
	}
}

func TestNewTableValidation(t *testing.T) {
	valid := DefaultTable().Column(entity.SectionListening)

	if _, err := NewTable(valid, valid); err != nil {
		t.Fatalf("NewTable rejected a valid table: %v", err)
	}

	short := valid[:50]
	if _, err := NewTable(short, valid); !errors.Is(err, entity.ErrInconsistentData) {
		t.Fatalf("expected ErrInconsistentData for short column, got %v", err)
	}

	decreasing := append([]int(nil), valid...)
	decreasing[60] = decreasing[59] - 5
	if _, err := NewTable(valid, decreasing); !errors.Is(err, entity.ErrInconsistentData) {
		t.Fatalf("expected ErrInconsistentData for decreasing column, got %v", err)
	}

	notMultiple := append([]int(nil), valid...)
	notMultiple[100] = 493
	if _, err := NewTable(notMultiple, valid); !errors.Is(err, entity.ErrInconsistentData) {
		t.Fatalf("expected ErrInconsistentData for non multiple of 5, got %v", err)
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	column := DefaultTable().Column(entity.SectionReading)
	table, err := NewTable(column, column)
	if err != nil {
		t.Fatalf("NewTable returned error: %v", err)
	}
	column[100] = 0
	got, _ := table.Lookup(entity.SectionReading, 100)
	if got != MaxSectionScore {
		t.Fatalf("table shares caller slice: got %d", got)
	}
}
