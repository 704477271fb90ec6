package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/evaluation"
	"github.com/jask/nyfeval/internal/money"
	"github.com/jask/nyfeval/internal/selection"
	"github.com/jask/nyfeval/internal/service"
	"github.com/jask/nyfeval/internal/wizard"
)

// App renders a wizard.Controller and forwards key presses to it.
type App struct {
	ctx      context.Context
	ctrl     *wizard.Controller
	services Services
	money    money.Formatter
	log      *slog.Logger
	keys     keyMap

	critCursor int
	focus      focusRow
	rowCursor  int
	nameInput  textinput.Model
	emailInput textinput.Model

	pending      *wizard.Submission
	confirmation *service.Confirmation
	status       string
	width        int
	height       int
}

// Services are the side-effecting collaborators the App calls from commands.
type Services struct {
	Submissions *service.SubmissionService
}

// focusRow is which part of the selection screen has focus.
type focusRow string

const (
	focusProjects focusRow = "projects"
	focusName     focusRow = "name"
	focusEmail    focusRow = "email"
	focusSubmit   focusRow = "submit"
)

var focusOrder = []focusRow{focusProjects, focusName, focusEmail, focusSubmit}

func New(ctx context.Context, ctrl *wizard.Controller, services Services, fmtr money.Formatter, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	name := textinput.New()
	name.Placeholder = "Your Name"
	name.CharLimit = 120
	email := textinput.New()
	email.Placeholder = "Your Email"
	email.CharLimit = 254
	return &App{
		ctx:        ctx,
		ctrl:       ctrl,
		services:   services,
		money:      fmtr,
		log:        log,
		keys:       newKeyMap(),
		focus:      focusProjects,
		nameInput:  name,
		emailInput: email,
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.confirmation != nil {
			if key.Matches(m, a.keys.Dismiss) {
				return a, tea.Quit
			}
			return a, nil
		}
		if a.ctrl.Phase() == wizard.PhaseEvaluating {
			return a.handleEvaluateKey(m)
		}
		return a.handleSelectKey(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case submittedMsg:
		conf := m.Confirmation
		a.confirmation = &conf
		a.pending = nil
		a.status = conf.Message
	default:
		// cursor blink and similar input-owned messages
		if a.focus == focusName || a.focus == focusEmail {
			var cmd tea.Cmd
			if a.focus == focusName {
				a.nameInput, cmd = a.nameInput.Update(msg)
			} else {
				a.emailInput, cmd = a.emailInput.Update(msg)
			}
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleEvaluateKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.critCursor > 0 {
			a.critCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.critCursor < catalog.NumCriteria-1 {
			a.critCursor++
		}
	case key.Matches(m, a.keys.High):
		a.rate(evaluation.High)
	case key.Matches(m, a.keys.Medium):
		a.rate(evaluation.Medium)
	case key.Matches(m, a.keys.Low):
		a.rate(evaluation.Low)
	case key.Matches(m, a.keys.Clear):
		a.rate(evaluation.Unset)
	case key.Matches(m, a.keys.Next):
		if !a.ctrl.CanAdvance() {
			a.status = "rate every criterion before continuing"
			return a, nil
		}
		from := a.ctrl.CurrentIndex()
		if err := a.ctrl.Advance(); err != nil {
			return a, errCmd(err)
		}
		a.critCursor = 0
		a.status = ""
		if a.ctrl.Phase() == wizard.PhaseSelecting {
			a.log.Info("evaluation finished", "projects", a.ctrl.Catalog().ProjectCount())
			a.rowCursor = 0
		} else {
			a.log.Debug("advanced", "from", from, "to", a.ctrl.CurrentIndex())
		}
	case key.Matches(m, a.keys.Prev):
		if !a.ctrl.CanRetreat() {
			return a, nil
		}
		if err := a.ctrl.Retreat(); err != nil {
			return a, errCmd(err)
		}
		a.critCursor = 0
		a.status = ""
	}
	return a, nil
}

func (a *App) rate(r evaluation.Rating) {
	c, err := catalog.CriterionByID(catalog.CriterionID(a.critCursor))
	if err == nil {
		err = a.ctrl.Rate(c.ID, r)
	}
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.log.Debug("rated", "project", a.ctrl.CurrentIndex(), "criterion", c.Name, "rating", r.String())
	a.status = ""
	// one key per row
	if r.Ok() && a.critCursor < catalog.NumCriteria-1 {
		a.critCursor++
	}
}

func (a *App) handleSelectKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.ctrl.Submitted() {
		// waiting on, or retrying, the receipt write
		switch {
		case key.Matches(m, a.keys.Submit):
			return a, a.submit()
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		}
		return a, nil
	}
	switch {
	case key.Matches(m, a.keys.Submit):
		return a, a.submit()
	case key.Matches(m, a.keys.NextField):
		return a, a.moveFocus(1)
	case key.Matches(m, a.keys.PrevField):
		return a, a.moveFocus(-1)
	}

	switch a.focus {
	case focusName, focusEmail:
		switch m.Type {
		case tea.KeyUp:
			return a, a.moveFocus(-1)
		case tea.KeyDown, tea.KeyEnter:
			return a, a.moveFocus(1)
		}
		return a, a.updateInput(m)
	case focusSubmit:
		switch {
		case m.Type == tea.KeyEnter:
			return a, a.submit()
		case key.Matches(m, a.keys.Up):
			return a, a.moveFocus(-1)
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.rowCursor > 0 {
			a.rowCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.rowCursor < a.ctrl.Catalog().ProjectCount()-1 {
			a.rowCursor++
			return a, nil
		}
		return a, a.moveFocus(1)
	case key.Matches(m, a.keys.Toggle):
		if err := a.ctrl.Toggle(a.rowCursor); err != nil {
			return a, errCmd(err)
		}
		a.status = ""
	}
	return a, nil
}

func (a *App) moveFocus(delta int) tea.Cmd {
	idx := 0
	for i, f := range focusOrder {
		if f == a.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(focusOrder)) % len(focusOrder)
	a.focus = focusOrder[idx]

	a.nameInput.Blur()
	a.emailInput.Blur()
	switch a.focus {
	case focusName:
		return a.nameInput.Focus()
	case focusEmail:
		return a.emailInput.Focus()
	}
	return nil
}

func (a *App) updateInput(m tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if a.focus == focusName {
		a.nameInput, cmd = a.nameInput.Update(m)
		a.ctrl.SetName(a.nameInput.Value())
	} else {
		a.emailInput, cmd = a.emailInput.Update(m)
		a.ctrl.SetEmail(a.emailInput.Value())
	}
	return cmd
}

func (a *App) submit() tea.Cmd {
	if a.pending != nil {
		// the session is already final; only the receipt needs another try
		return a.recordCmd(*a.pending)
	}
	if !a.ctrl.CanSubmit() {
		a.status = a.submitBlocker()
		return nil
	}
	sub, err := a.ctrl.Submit()
	if err != nil {
		return errCmd(err)
	}
	a.pending = &sub
	a.status = "submitting..."
	return a.recordCmd(sub)
}

func (a *App) submitBlocker() string {
	switch {
	case !a.ctrl.BudgetValid():
		return "total request must be between " + a.money.Format(selection.MinBudget) + " and " + a.money.Format(selection.MaxBudget)
	case !a.ctrl.Submitter().Ready():
		return "enter your name and email to submit"
	}
	return "cannot submit yet"
}

func (a *App) recordCmd(sub wizard.Submission) tea.Cmd {
	svc := a.services.Submissions
	if svc == nil {
		svc = &service.SubmissionService{Log: a.log}
	}
	ctx := a.ctx
	return func() tea.Msg {
		conf, err := svc.Record(ctx, sub)
		if err != nil {
			return errMsg{fmt.Errorf("submitted, but the receipt was not saved (ctrl+s to retry): %w", err)}
		}
		return submittedMsg{Confirmation: conf}
	}
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

type errMsg struct{ error }

type submittedMsg struct {
	Confirmation service.Confirmation
}
