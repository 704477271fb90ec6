// Package ballot runs a whole session from a TOML file instead of the terminal UI.
package ballot

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/evaluation"
	"github.com/jask/nyfeval/internal/wizard"
)

// Ballot is a pre-filled session.
type Ballot struct {
	Name     string          `mapstructure:"name"`
	Email    string          `mapstructure:"email"`
	Fund     []string        `mapstructure:"fund"`
	Projects []ProjectRating `mapstructure:"projects"`
}

// ProjectRating rates one project. Without a title, entries apply in catalog order.
type ProjectRating struct {
	Title   string            `mapstructure:"title"`
	Ratings map[string]string `mapstructure:"ratings"`
}

// Load parses a ballot file.
func Load(path string) (Ballot, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		return Ballot{}, fmt.Errorf("read ballot: %w", err)
	}
	var b Ballot
	if err := v.Unmarshal(&b); err != nil {
		return Ballot{}, fmt.Errorf("unmarshal ballot: %w", err)
	}
	return b, nil
}

// Run drives c through both phases with the ballot's answers. It stops at the first
// error, leaving c wherever it got to.
func Run(c *wizard.Controller, b Ballot) error {
	cat := c.Catalog()
	byIndex, err := assign(cat, b.Projects)
	if err != nil {
		return err
	}

	for c.Phase() == wizard.PhaseEvaluating {
		i := c.CurrentIndex()
		pr, ok := byIndex[i]
		if !ok {
			return fmt.Errorf("project %q: no ratings given", cat.ProjectAt(i).Title)
		}
		if err := rateProject(c, pr); err != nil {
			return fmt.Errorf("project %q: %w", cat.ProjectAt(i).Title, err)
		}
		if !c.CanAdvance() {
			return fmt.Errorf("project %q: missing ratings for %s", cat.ProjectAt(i).Title, missingNames(c.CurrentRecord()))
		}
		if err := c.Advance(); err != nil {
			return err
		}
	}

	for _, title := range b.Fund {
		i, err := cat.LookupProject(title)
		if err != nil {
			return fmt.Errorf("fund: %w", err)
		}
		if c.Selected(i) {
			continue
		}
		if err := c.Toggle(i); err != nil {
			return fmt.Errorf("fund: %w", err)
		}
	}
	c.SetName(b.Name)
	c.SetEmail(b.Email)
	return nil
}

func assign(cat *catalog.Catalog, entries []ProjectRating) (map[int]ProjectRating, error) {
	out := make(map[int]ProjectRating, len(entries))
	for pos, pr := range entries {
		i := pos
		if strings.TrimSpace(pr.Title) != "" {
			found, err := cat.LookupProject(pr.Title)
			if err != nil {
				return nil, err
			}
			i = found
		}
		if i >= cat.ProjectCount() {
			return nil, fmt.Errorf("ballot has %d project entries, catalog has %d", len(entries), cat.ProjectCount())
		}
		if _, dup := out[i]; dup {
			return nil, fmt.Errorf("project %q rated twice", cat.ProjectAt(i).Title)
		}
		out[i] = pr
	}
	return out, nil
}

func rateProject(c *wizard.Controller, pr ProjectRating) error {
	names := make([]string, 0, len(pr.Ratings))
	for name := range pr.Ratings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r, err := evaluation.ParseRating(pr.Ratings[name])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := c.RateByName(name, r); err != nil {
			return err
		}
	}
	return nil
}

func missingNames(rec evaluation.Record) string {
	ids := rec.Missing()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	return strings.Join(names, ", ")
}
