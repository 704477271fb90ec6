package tui

import (
	"fmt"
	"strings"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/evaluation"
	"github.com/jask/nyfeval/internal/selection"
	"github.com/jask/nyfeval/internal/wizard"
)

func (a *App) View() string {
	var body string
	if a.ctrl.Phase() == wizard.PhaseEvaluating {
		body = a.renderEvaluate()
	} else {
		body = a.renderSelect()
	}
	if a.confirmation != nil {
		body = renderPopup(body, a.renderConfirmation(), a.width, a.height)
	}
	return body
}

func (a *App) renderEvaluate() string {
	cat := a.ctrl.Catalog()
	p := a.ctrl.CurrentProject()
	title := titleStyle.Render(fmt.Sprintf("Step 1: Project Evaluation (Project %d of %d)", a.ctrl.CurrentIndex()+1, cat.ProjectCount()))

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString(headingStyle.Render(p.Title) + "\n")
	if p.Description != "" {
		b.WriteString(a.wrap(p.Description) + "\n")
	}
	b.WriteString("NYF Request: " + a.money.Format(p.Request) + "\n\n")

	for _, c := range cat.Criteria() {
		marker := "  "
		// pad before styling; escape bytes would count toward the width
		name := fmt.Sprintf("%-42s", c.Name)
		if int(c.ID) == a.critCursor {
			marker = cursorStyle.Render("▶ ")
			name = cursorStyle.Render(name)
		}
		b.WriteString(marker + name + " " + ratingLabel(a.ctrl.Rating(c.ID)) + "\n")
	}

	next := a.keys.Next
	if a.ctrl.IsLastProject() {
		next.SetHelp("n", "Finish evaluation")
	} else {
		next.SetHelp("n", "Next project")
	}
	next.SetEnabled(a.ctrl.CanAdvance())
	prev := a.keys.Prev
	prev.SetEnabled(a.ctrl.CanRetreat())

	b.WriteString("\n" + helpLine(a.keys.High, a.keys.Medium, a.keys.Low, a.keys.Clear, prev, next, a.keys.Quit))
	if missing := len(a.ctrl.CurrentRecord().Missing()); missing > 0 {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d of %d criteria still to rate", missing, catalog.NumCriteria)))
	}
	return a.withStatus(b.String())
}

func ratingLabel(r evaluation.Rating) string {
	if !r.Ok() {
		return mutedStyle.Render("Select...")
	}
	return r.String()
}

func (a *App) renderSelect() string {
	cat := a.ctrl.Catalog()
	scores := a.ctrl.Scores()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Step 2: Project Selection") + "\n\n")
	for i, p := range cat.Projects() {
		marker := "  "
		if a.focus == focusProjects && i == a.rowCursor {
			marker = cursorStyle.Render("▶ ")
		}
		box := "[ ]"
		if a.ctrl.Selected(i) {
			box = "[x]"
		}
		badge := mutedStyle.Render("unrated")
		if scores[i].Complete {
			badge = categoryStyle(scores[i].Category).Render(string(scores[i].Category))
		}
		b.WriteString(fmt.Sprintf("%s%s %-40s %12s  Your Ranking: %s\n", marker, box, p.Title, a.money.Format(p.Request), badge))
	}

	total := "Total NY Forward Request: " + a.money.Format(a.ctrl.TotalRequested())
	if a.ctrl.BudgetValid() {
		b.WriteString("\n" + validStyle.Render(total) + "\n")
	} else {
		b.WriteString("\n" + invalidStyle.Render(total) + "\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("The Total NY Forward Request should be between %s to %s.",
			a.money.Format(selection.MinBudget), a.money.Format(selection.MaxBudget))) + "\n")
	}

	b.WriteString("\n" + a.fieldLabel("Name", focusName) + a.nameInput.View() + "\n")
	b.WriteString(a.fieldLabel("Email", focusEmail) + a.emailInput.View() + "\n\n")

	button := disabledStyle
	if a.ctrl.CanSubmit() && !a.ctrl.Submitted() {
		button = buttonStyle
	}
	if a.focus == focusSubmit {
		button = button.BorderForeground(colorWarning)
	}
	b.WriteString(button.Render("Submit") + "\n")

	toggle := a.keys.Toggle
	toggle.SetEnabled(a.focus == focusProjects)
	b.WriteString(helpLine(a.keys.Up, a.keys.Down, toggle, a.keys.NextField, a.keys.Submit, a.keys.ForceQuit))
	return a.withStatus(b.String())
}

func (a *App) fieldLabel(label string, row focusRow) string {
	text := fmt.Sprintf("%-6s ", label+":")
	if a.focus == row {
		return cursorStyle.Render("▶ " + text)
	}
	return "  " + text
}

func (a *App) renderConfirmation() string {
	c := a.confirmation
	lines := []string{headingStyle.Render(c.Message)}
	if c.ReceiptID != "" {
		lines = append(lines, mutedStyle.Render("Receipt "+c.ReceiptID))
	}
	if c.Recorded {
		lines = append(lines, mutedStyle.Render("Saved to the receipts ledger."))
	}
	lines = append(lines, "", helpLine(a.keys.Dismiss))
	return strings.Join(lines, "\n")
}

func (a *App) withStatus(s string) string {
	if a.status == "" {
		return s
	}
	style := statusStyle
	if strings.HasPrefix(a.status, "error: ") {
		style = errorStyle
	}
	return s + "\n" + style.Render(a.status)
}

func (a *App) wrap(s string) string {
	if a.width <= 4 {
		return mutedStyle.Render(s)
	}
	return mutedStyle.Width(a.width - 2).Render(s)
}
