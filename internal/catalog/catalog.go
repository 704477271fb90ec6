// Package catalog holds the immutable list of funding candidates and the rubric
// criteria they are scored against.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownCriterion = errors.New("unknown criterion")
	ErrUnknownProject   = errors.New("unknown project")
	ErrInvalidProject   = errors.New("invalid project")
)

// Project is a funding candidate. Request is in whole dollars.
type Project struct {
	Title       string
	Description string
	Request     int64
}

// CriterionID identifies a rubric criterion. The set is fixed at compile time so
// evaluation records can be plain arrays.
type CriterionID int

const (
	LevelOfImpact CriterionID = iota
	CommunityBenefits
	CostEffectiveness
	Readiness
	ImprovingConnectivity
	BeautifyingDowntown
	SupportingEvents
	QualityOfLife
	PromotingSustainability

	NumCriteria = int(PromotingSustainability) + 1
)

// Valid reports whether id names one of the rubric criteria.
func (id CriterionID) Valid() bool {
	return id >= 0 && int(id) < NumCriteria
}

func (id CriterionID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("CriterionID(%d)", int(id))
	}
	return rubric[id].Name
}

// Criterion is a weighted rubric dimension.
type Criterion struct {
	ID     CriterionID
	Name   string
	Weight float64
}

var rubric = [NumCriteria]Criterion{
	{ID: LevelOfImpact, Name: "Level of Impact", Weight: 1},
	{ID: CommunityBenefits, Name: "Benefits to the Community", Weight: 1},
	{ID: CostEffectiveness, Name: "Cost-Effectiveness", Weight: 1},
	{ID: Readiness, Name: "Readiness", Weight: 1},
	{ID: ImprovingConnectivity, Name: "Improving Connectivity", Weight: 0.2},
	{ID: BeautifyingDowntown, Name: "Beautifying Downtown", Weight: 0.2},
	{ID: SupportingEvents, Name: "Supporting Events and Programming", Weight: 0.2},
	{ID: QualityOfLife, Name: "Enhancing Quality of Life for All", Weight: 0.2},
	{ID: PromotingSustainability, Name: "Promoting Sustainability", Weight: 0.2},
}

// DefaultProjects returns the Village's NY Forward candidates.
func DefaultProjects() []Project {
	return []Project{
		{
			Title:       "Enhance Veterans Memorial Park for Events and Community Use",
			Description: "Create signature performance structure, relocate and enhance memorial, and improve access and circulation through the park",
			Request:     1700000,
		},
		{
			Title:       "Create a sense of place through Streetscape Enhancements on Main Street",
			Description: "Enhance crosswalks, lighting, and sidewalks on Main Street from Corning Park to Kircher Park",
			Request:     1300000,
		},
		{
			Title:       "Create a Celebration Plaza and Village Market Square",
			Description: "Transform entry drive into Celebration Plaza adjacent to Village Office that acts as a public gathering space and gateway to flexible open space for markets and events.",
			Request:     1125000,
		},
		{
			Title:       "Establish Harmony Square on Main Street",
			Description: "Create a flexible open space adjacent to Harmony House that incorporates public art and ties in to a connected network of public spaces",
			Request:     325000,
		},
		{
			Title:       "Create a Hojack Trail Gateway and Enhance the Trail",
			Description: "Add amenities and enhance the crossing at North Avenue; pave the trail from Phillips Road to western Village boundary and add lighting, landscaping, and benches",
			Request:     2052000,
		},
	}
}

// Catalog is read-only after construction.
type Catalog struct {
	projects []Project
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{projects: DefaultProjects()}
}

// New builds a catalog from projects. Every project needs a title and a positive
// request.
func New(projects []Project) (*Catalog, error) {
	if len(projects) == 0 {
		return nil, fmt.Errorf("%w: catalog has no projects", ErrInvalidProject)
	}
	for i, p := range projects {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("%w: project %d has no title", ErrInvalidProject, i)
		}
		if p.Request <= 0 {
			return nil, fmt.Errorf("%w: project %q request must be positive", ErrInvalidProject, p.Title)
		}
	}
	return &Catalog{projects: slices.Clone(projects)}, nil
}

func (c *Catalog) ProjectCount() int { return len(c.projects) }

// ProjectAt panics when i is outside [0, ProjectCount()).
func (c *Catalog) ProjectAt(i int) Project {
	if i < 0 || i >= len(c.projects) {
		panic(fmt.Sprintf("catalog: project index %d out of range [0,%d)", i, len(c.projects)))
	}
	return c.projects[i]
}

// Projects returns a copy of the projects in catalog order.
func (c *Catalog) Projects() []Project {
	return slices.Clone(c.projects)
}

// Criteria returns the rubric in its fixed order.
func (c *Catalog) Criteria() []Criterion {
	return Criteria()
}

// Criteria returns the rubric in its fixed order.
func Criteria() []Criterion {
	return slices.Clone(rubric[:])
}

// CriterionByID returns the criterion for id.
func CriterionByID(id CriterionID) (Criterion, error) {
	if !id.Valid() {
		return Criterion{}, fmt.Errorf("%w: id %d", ErrUnknownCriterion, int(id))
	}
	return rubric[id], nil
}

// TotalWeight is the sum of all criterion weights.
func TotalWeight() float64 {
	var sum float64
	for _, c := range rubric {
		sum += c.Weight
	}
	return sum
}

// LookupCriterion resolves a criterion by name, ignoring case and surrounding space.
// Misses report the closest known name.
func LookupCriterion(name string) (Criterion, error) {
	want := normalize(name)
	names := make([]string, 0, NumCriteria)
	for _, c := range rubric {
		if normalize(c.Name) == want {
			return c, nil
		}
		names = append(names, c.Name)
	}
	return Criterion{}, fmt.Errorf("%w: %q%s", ErrUnknownCriterion, name, suggestion(want, names))
}

// LookupProject resolves a project index by title. An exact (case-insensitive) match
// wins; otherwise a unique title prefix or substring is accepted.
func (c *Catalog) LookupProject(title string) (int, error) {
	want := normalize(title)
	if want == "" {
		return -1, fmt.Errorf("%w: empty title", ErrUnknownProject)
	}
	titles := make([]string, 0, len(c.projects))
	for i, p := range c.projects {
		if normalize(p.Title) == want {
			return i, nil
		}
		titles = append(titles, p.Title)
	}
	match := -1
	for i, p := range c.projects {
		if strings.Contains(normalize(p.Title), want) {
			if match >= 0 {
				return -1, fmt.Errorf("%w: %q matches more than one project", ErrUnknownProject, title)
			}
			match = i
		}
	}
	if match >= 0 {
		return match, nil
	}
	return -1, fmt.Errorf("%w: %q%s", ErrUnknownProject, title, suggestion(want, titles))
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// suggestion returns a "did you mean" hint when a candidate is reasonably close.
func suggestion(want string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(want, normalize(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(3, len(want)/2) {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
