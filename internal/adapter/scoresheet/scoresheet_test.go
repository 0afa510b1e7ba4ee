package scoresheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/scoring"
)

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"-":                FormatCSV,
		"table.csv":        FormatCSV,
		"/tmp/Table.XLSX":  FormatXLSX,
		"exports/2024.csv": FormatCSV,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Fatalf("%s: expected %s, got %s (%v)", path, want, got, err)
		}
	}
	if _, err := FormatFromPath("table.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteThenReadDefaultTable(t *testing.T) {
	want := scoring.DefaultTable().Rows()
	for _, format := range []Format{FormatCSV, FormatXLSX} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, format, want); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := Read(&buf, format)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if _, err := scoring.TableFromRows(got); err != nil {
				t.Fatalf("expected a complete table, got %v", err)
			}
			if len(got) != len(want) || got[0] != want[0] || got[len(got)-1] != want[len(want)-1] {
				t.Fatalf("rows differ: first %+v last %+v", got[0], got[len(got)-1])
			}
		})
	}
}

func TestReadCSVLenient(t *testing.T) {
	in := "Section,Raw,Scaled\n Listening , 0, 5\n\nreading,1,10\n"
	rows, err := Read(strings.NewReader(in), FormatCSV)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []entity.ScoreConversion{
		{Section: entity.SectionListening, Raw: 0, Scaled: 5},
		{Section: entity.SectionReading, Raw: 1, Scaled: 10},
	}
	if len(rows) != len(want) || rows[0] != want[0] || rows[1] != want[1] {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReadCSVRejectsBadCells(t *testing.T) {
	cases := map[string]string{
		"section": "writing,0,5\n",
		"raw":     "listening,zero,5\n",
		"scaled":  "listening,0,five\n",
		"columns": "listening,0\n",
	}
	for name, in := range cases {
		if _, err := Read(strings.NewReader(in), FormatCSV); !errors.Is(err, entity.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}
}
