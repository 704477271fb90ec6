// Package selection tracks which projects are funded and checks the total request
// against the grant window.
package selection

import (
	"errors"
	"fmt"

	"github.com/jask/nyfeval/internal/catalog"
)

// Inclusive bounds of the acceptable total request, in dollars.
const (
	MinBudget int64 = 6_000_000
	MaxBudget int64 = 8_000_000
)

var ErrOutOfRange = errors.New("project index out of range")

// Submitter identifies who is submitting the selection.
type Submitter struct {
	Name  string
	Email string
}

// Ready reports whether both fields are non-empty. Whitespace counts as content and
// email format is not checked.
func (s Submitter) Ready() bool {
	return s.Name != "" && s.Email != ""
}

// Selection is the funded/not-funded flag per catalog project.
type Selection struct {
	cat    *catalog.Catalog
	picked []bool
}

func New(cat *catalog.Catalog) *Selection {
	return &Selection{cat: cat, picked: make([]bool, cat.ProjectCount())}
}

// Toggle flips project i.
func (s *Selection) Toggle(i int) error {
	if i < 0 || i >= len(s.picked) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(s.picked))
	}
	s.picked[i] = !s.picked[i]
	return nil
}

// Selected reports whether project i is funded. Out of range reports false.
func (s *Selection) Selected(i int) bool {
	return i >= 0 && i < len(s.picked) && s.picked[i]
}

// Indexes lists the funded projects in catalog order.
func (s *Selection) Indexes() []int {
	var out []int
	for i, ok := range s.picked {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// TotalRequested sums the requests of funded projects.
func (s *Selection) TotalRequested() int64 {
	var total int64
	for i, ok := range s.picked {
		if ok {
			total += s.cat.ProjectAt(i).Request
		}
	}
	return total
}

// BudgetValid reports whether the total is inside [MinBudget, MaxBudget].
func (s *Selection) BudgetValid() bool {
	return InWindow(s.TotalRequested())
}

// Shortfall reports how far the total is below MinBudget or above MaxBudget. At most
// one of the two is non-zero.
func (s *Selection) Shortfall() (under, over int64) {
	total := s.TotalRequested()
	switch {
	case total < MinBudget:
		return MinBudget - total, 0
	case total > MaxBudget:
		return 0, total - MaxBudget
	}
	return 0, 0
}

// CanSubmit reports whether the budget is valid and the submitter is complete.
func (s *Selection) CanSubmit(sub Submitter) bool {
	return s.BudgetValid() && sub.Ready()
}

// InWindow reports whether total is inside [MinBudget, MaxBudget].
func InWindow(total int64) bool {
	return total >= MinBudget && total <= MaxBudget
}
