package repository

import (
	"time"

	"github.com/eslsoft/toeicprep/pkg/filterexpr"
)

// listAttemptsParams receives the literals of an attempt list filter.
type listAttemptsParams struct {
	TestID        *int64
	TestIDs       []int64
	CompletedFrom *time.Time
	CompletedTo   *time.Time
	MinTotal      *int
	MaxTotal      *int
	MinListening  *int
	MaxListening  *int
	MinReading    *int
	MaxReading    *int
}

var listAttemptsSchema = filterexpr.Schema{
	Filter: map[string]filterexpr.Field{
		"test_id": {
			Kind: filterexpr.KindNumber,
			Targets: map[filterexpr.Op]string{
				filterexpr.OpEQ: "TestID",
				filterexpr.OpIN: "TestIDs",
			},
		},
		"completed_at": {
			Kind: filterexpr.KindTimestamp,
			Targets: map[filterexpr.Op]string{
				filterexpr.OpGTE: "CompletedFrom",
				filterexpr.OpLTE: "CompletedTo",
			},
		},
		"total": {
			Kind: filterexpr.KindNumber,
			Targets: map[filterexpr.Op]string{
				filterexpr.OpGTE: "MinTotal",
				filterexpr.OpLTE: "MaxTotal",
			},
		},
		"listening": {
			Kind: filterexpr.KindNumber,
			Targets: map[filterexpr.Op]string{
				filterexpr.OpGTE: "MinListening",
				filterexpr.OpLTE: "MaxListening",
			},
		},
		"reading": {
			Kind: filterexpr.KindNumber,
			Targets: map[filterexpr.Op]string{
				filterexpr.OpGTE: "MinReading",
				filterexpr.OpLTE: "MaxReading",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		Columns: map[string]string{
			"completed_at": "completed_at",
			"total":        "scaled_total",
			"listening":    "listening_scaled",
			"reading":      "reading_scaled",
			"id":           "id",
		},
		Default:  []filterexpr.Term{{Key: "completed_at", Desc: true}},
		Tiebreak: "id",
	},
}
