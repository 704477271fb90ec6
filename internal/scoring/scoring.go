// Package scoring turns an evaluation record into a weighted score and a
// High/Medium/Low category.
package scoring

import (
	"math"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/evaluation"
)

// Category thresholds. Fixed regardless of the rubric weights.
const (
	HighThreshold   = 11.0
	MediumThreshold = 6.0
)

// Category is the tri-level classification of a score.
type Category string

const (
	CategoryLow    Category = "Low"
	CategoryMedium Category = "Medium"
	CategoryHigh   Category = "High"
)

// Score is a computed weighted score.
type Score struct {
	Value    float64
	Category Category
}

// Result is one project's entry on the scoreboard. Score is meaningful only when
// Complete is true.
type Result struct {
	Score
	Complete bool
}

// Categorize maps a score value to its category.
func Categorize(v float64) Category {
	switch {
	case v >= HighThreshold:
		return CategoryHigh
	case v >= MediumThreshold:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// Compute sums ordinal*weight over criteria in order. Any Unset rating yields
// (Score{}, false); there are no partial scores.
//
// Weights are applied in whole tenths so a total of exactly 11 or 6 lands on its
// threshold instead of a hair below it.
func Compute(criteria []catalog.Criterion, rec evaluation.Record) (Score, bool) {
	var tenths int64
	for _, c := range criteria {
		if !c.ID.Valid() {
			return Score{}, false
		}
		r := rec[c.ID]
		if !r.Ok() {
			return Score{}, false
		}
		tenths += int64(r.Ordinal()) * weightTenths(c.Weight)
	}
	total := float64(tenths) / 10
	return Score{Value: total, Category: Categorize(total)}, true
}

func weightTenths(w float64) int64 {
	return int64(math.Round(w * 10))
}

// Board scores every record in order.
func Board(criteria []catalog.Criterion, recs []evaluation.Record) []Result {
	out := make([]Result, len(recs))
	for i, rec := range recs {
		s, ok := Compute(criteria, rec)
		out[i] = Result{Score: s, Complete: ok}
	}
	return out
}
