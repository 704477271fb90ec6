// Package evaluation stores the per-project rubric ratings.
package evaluation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/nyfeval/internal/catalog"
)

var (
	ErrInvalidRating = errors.New("invalid rating")
	ErrOutOfRange    = errors.New("project index out of range")
)

// Rating is a qualitative score for one criterion. The zero value is Unset.
type Rating int

const (
	Unset Rating = iota
	Low
	Medium
	High
)

// Ordinal is the arithmetic value of r. Unset has none and reports 0.
func (r Rating) Ordinal() int {
	switch r {
	case Low:
		return 1
	case Medium:
		return 2
	case High:
		return 3
	default:
		return 0
	}
}

// Ok reports whether r is a set, known rating.
func (r Rating) Ok() bool {
	return r == Low || r == Medium || r == High
}

// Valid reports whether r is in the enumeration, Unset included.
func (r Rating) Valid() bool {
	return r == Unset || r.Ok()
}

func (r Rating) String() string {
	switch r {
	case Unset:
		return ""
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// ParseRating accepts the rating names, their first letter, or the ordinal digit.
// An empty string parses as Unset.
func ParseRating(s string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unset, nil
	case "low", "l", "1":
		return Low, nil
	case "medium", "med", "m", "2":
		return Medium, nil
	case "high", "h", "3":
		return High, nil
	}
	return Unset, fmt.Errorf("%w: %q (want High, Medium or Low)", ErrInvalidRating, s)
}

// Record holds one rating per criterion. The zero value has every criterion Unset.
type Record [catalog.NumCriteria]Rating

// Complete reports whether every criterion has a rating.
func (r Record) Complete() bool {
	for _, v := range r {
		if !v.Ok() {
			return false
		}
	}
	return true
}

// Missing lists the criteria still Unset, in rubric order.
func (r Record) Missing() []catalog.CriterionID {
	var out []catalog.CriterionID
	for i, v := range r {
		if !v.Ok() {
			out = append(out, catalog.CriterionID(i))
		}
	}
	return out
}

// Store keeps one Record per catalog project.
type Store struct {
	records []Record
}

// NewStore returns a store with n all-Unset records.
func NewStore(n int) *Store {
	return &Store{records: make([]Record, n)}
}

func (s *Store) Len() int { return len(s.records) }

// Set writes a rating. Writing Unset clears the criterion.
func (s *Store) Set(project int, id catalog.CriterionID, r Rating) error {
	if err := s.check(project); err != nil {
		return err
	}
	if !id.Valid() {
		return fmt.Errorf("%w: id %d", catalog.ErrUnknownCriterion, int(id))
	}
	if !r.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	s.records[project][id] = r
	return nil
}

// Get returns the rating for one criterion.
func (s *Store) Get(project int, id catalog.CriterionID) (Rating, error) {
	if err := s.check(project); err != nil {
		return Unset, err
	}
	if !id.Valid() {
		return Unset, fmt.Errorf("%w: id %d", catalog.ErrUnknownCriterion, int(id))
	}
	return s.records[project][id], nil
}

// Record returns a copy of the project's record.
func (s *Store) Record(project int) (Record, error) {
	if err := s.check(project); err != nil {
		return Record{}, err
	}
	return s.records[project], nil
}

// Records returns a copy of every record in catalog order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Complete reports whether the project's record has no Unset criterion.
func (s *Store) Complete(project int) bool {
	if s.check(project) != nil {
		return false
	}
	return s.records[project].Complete()
}

func (s *Store) check(project int) error {
	if project < 0 || project >= len(s.records) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, project, len(s.records))
	}
	return nil
}
