// Package wizard sequences the two phases of a session: walking the projects to
// rate them, then choosing which to fund and submitting.
//
// A Controller owns all session state. It is not safe for concurrent use; each
// session gets its own.
package wizard

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/evaluation"
	"github.com/jask/nyfeval/internal/scoring"
	"github.com/jask/nyfeval/internal/selection"
)

var (
	ErrInvalidState = errors.New("invalid operation for current state")
	// ErrIncomplete wraps ErrInvalidState.
	ErrIncomplete = fmt.Errorf("%w: current project has unrated criteria", ErrInvalidState)
)

// Phase is the wizard step. It only moves forward.
type Phase string

const (
	PhaseEvaluating Phase = "evaluating"
	PhaseSelecting  Phase = "selecting"
)

// Submission is the immutable result of a successful Submit.
type Submission struct {
	ID        string
	Submitter selection.Submitter
	Funded    []FundedProject
	Total     int64
	Scores    []scoring.Result
	CreatedAt time.Time
}

// FundedProject is a selected project as it looked at submission time.
type FundedProject struct {
	Index    int
	Title    string
	Request  int64
	Category scoring.Category
}

// Controller is the session state machine.
type Controller struct {
	cat       *catalog.Catalog
	evals     *evaluation.Store
	picks     *selection.Selection
	submitter selection.Submitter

	phase     Phase
	current   int
	scores    []scoring.Result
	submitted bool

	now func() time.Time
}

// New starts a session at the first project in the evaluating phase.
func New(cat *catalog.Catalog) *Controller {
	return &Controller{
		cat:   cat,
		evals: evaluation.NewStore(cat.ProjectCount()),
		picks: selection.New(cat),
		phase: PhaseEvaluating,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (c *Controller) Catalog() *catalog.Catalog { return c.cat }
func (c *Controller) Phase() Phase { return c.phase }
func (c *Controller) CurrentIndex() int { return c.current }
func (c *Controller) Submitted() bool { return c.submitted }

// CurrentProject is the project being rated.
func (c *Controller) CurrentProject() catalog.Project {
	return c.cat.ProjectAt(c.current)
}

// IsLastProject reports whether advancing will finish the evaluation.
func (c *Controller) IsLastProject() bool {
	return c.current == c.evals.Len()-1
}

// Rating returns the current project's rating for id.
func (c *Controller) Rating(id catalog.CriterionID) evaluation.Rating {
	r, err := c.evals.Get(c.current, id)
	if err != nil {
		return evaluation.Unset
	}
	return r
}

// CurrentRecord returns a copy of the current project's ratings.
func (c *Controller) CurrentRecord() evaluation.Record {
	rec, _ := c.evals.Record(c.current)
	return rec
}

// Record returns a copy of project i's ratings.
func (c *Controller) Record(i int) (evaluation.Record, error) {
	return c.evals.Record(i)
}

// Rate sets a rating on the current project. Only valid while evaluating.
func (c *Controller) Rate(id catalog.CriterionID, r evaluation.Rating) error {
	if c.phase != PhaseEvaluating {
		return fmt.Errorf("rate %s: %w", id, ErrInvalidState)
	}
	if err := c.evals.Set(c.current, id, r); err != nil {
		return fmt.Errorf("rate: %w", err)
	}
	return nil
}

// RateByName resolves the criterion by name, then behaves like Rate.
func (c *Controller) RateByName(name string, r evaluation.Rating) error {
	crit, err := catalog.LookupCriterion(name)
	if err != nil {
		return fmt.Errorf("rate: %w", err)
	}
	return c.Rate(crit.ID, r)
}

// CanAdvance reports whether Advance would succeed.
func (c *Controller) CanAdvance() bool {
	return c.phase == PhaseEvaluating && c.evals.Complete(c.current)
}

// CanRetreat reports whether Retreat would succeed.
func (c *Controller) CanRetreat() bool {
	return c.phase == PhaseEvaluating && c.current > 0
}

// Advance moves to the next project, or into the selecting phase from the last one.
func (c *Controller) Advance() error {
	if c.phase != PhaseEvaluating {
		return fmt.Errorf("advance: %w", ErrInvalidState)
	}
	if !c.evals.Complete(c.current) {
		return fmt.Errorf("advance: %w", ErrIncomplete)
	}
	if !c.IsLastProject() {
		c.current++
		return nil
	}
	c.phase = PhaseSelecting
	c.RefreshScores()
	return nil
}

// Retreat moves back one project. Ratings are kept.
func (c *Controller) Retreat() error {
	if !c.CanRetreat() {
		return fmt.Errorf("retreat from %d in %s: %w", c.current, c.phase, ErrInvalidState)
	}
	c.current--
	return nil
}

// RefreshScores recomputes the scoreboard from the current ratings.
func (c *Controller) RefreshScores() []scoring.Result {
	c.scores = scoring.Board(c.cat.Criteria(), c.evals.Records())
	return c.scores
}

// Scores refreshes the scoreboard and returns a copy of it, so it always reflects the
// latest ratings.
func (c *Controller) Scores() []scoring.Result {
	c.RefreshScores()
	return slices.Clone(c.scores)
}

// Toggle flips the funding flag of project i. It has no phase precondition.
func (c *Controller) Toggle(i int) error {
	return c.picks.Toggle(i)
}

func (c *Controller) Selected(i int) bool { return c.picks.Selected(i) }
func (c *Controller) SelectedIndexes() []int { return c.picks.Indexes() }
func (c *Controller) TotalRequested() int64 { return c.picks.TotalRequested() }
func (c *Controller) BudgetValid() bool { return c.picks.BudgetValid() }
func (c *Controller) Shortfall() (under, over int64) { return c.picks.Shortfall() }

func (c *Controller) Submitter() selection.Submitter { return c.submitter }

func (c *Controller) SetName(name string) { c.submitter.Name = name }
func (c *Controller) SetEmail(email string) { c.submitter.Email = email }

// CanSubmit reports whether the budget is valid and name and email are filled in.
func (c *Controller) CanSubmit() bool {
	return c.picks.CanSubmit(c.submitter)
}

// Submit finalizes the session. It requires the selecting phase and CanSubmit, and
// succeeds only once.
func (c *Controller) Submit() (Submission, error) {
	if c.phase != PhaseSelecting || c.submitted {
		return Submission{}, fmt.Errorf("submit: %w", ErrInvalidState)
	}
	if !c.CanSubmit() {
		return Submission{}, fmt.Errorf("submit: selection or submitter not ready: %w", ErrInvalidState)
	}
	scores := c.Scores()
	sub := Submission{
		ID:        uuid.NewString(),
		Submitter: c.submitter,
		Total:     c.picks.TotalRequested(),
		Scores:    scores,
		CreatedAt: c.now(),
	}
	for _, i := range c.picks.Indexes() {
		p := c.cat.ProjectAt(i)
		sub.Funded = append(sub.Funded, FundedProject{
			Index:    i,
			Title:    p.Title,
			Request:  p.Request,
			Category: scores[i].Category,
		})
	}
	c.submitted = true
	return sub, nil
}
