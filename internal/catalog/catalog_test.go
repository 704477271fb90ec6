package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.ProjectCount())
	require.Equal(t, int64(1700000), c.ProjectAt(0).Request)
	require.Equal(t, int64(2052000), c.ProjectAt(4).Request)

	crit := c.Criteria()
	require.Len(t, crit, NumCriteria)
	for i, cr := range crit {
		require.Equal(t, CriterionID(i), cr.ID)
	}
	require.InDelta(t, 5.0, TotalWeight(), 1e-9)
}

func TestProjectAtOutOfRangePanics(t *testing.T) {
	c := Default()
	require.Panics(t, func() { c.ProjectAt(-1) })
	require.Panics(t, func() { c.ProjectAt(c.ProjectCount()) })
}

func TestCriteriaReturnsCopy(t *testing.T) {
	got := Criteria()
	got[0].Weight = 99
	require.Equal(t, 1.0, Criteria()[0].Weight)
}

func TestNewValidatesProjects(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidProject)

	_, err = New([]Project{{Title: "A", Request: 0}})
	require.ErrorIs(t, err, ErrInvalidProject)

	_, err = New([]Project{{Title: "  ", Request: 10}})
	require.ErrorIs(t, err, ErrInvalidProject)

	in := []Project{{Title: "A", Request: 10}}
	c, err := New(in)
	require.NoError(t, err)
	in[0].Title = "mutated"
	require.Equal(t, "A", c.ProjectAt(0).Title)
}

func TestLookupCriterion(t *testing.T) {
	c, err := LookupCriterion("  readiness ")
	require.NoError(t, err)
	require.Equal(t, Readiness, c.ID)

	_, err = LookupCriterion("Readyness")
	require.True(t, errors.Is(err, ErrUnknownCriterion))
	require.Contains(t, err.Error(), `did you mean "Readiness"`)

	_, err = LookupCriterion("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	require.ErrorIs(t, err, ErrUnknownCriterion)
	require.NotContains(t, err.Error(), "did you mean")
}

func TestLookupProject(t *testing.T) {
	c := Default()

	i, err := c.LookupProject("Establish Harmony Square on Main Street")
	require.NoError(t, err)
	require.Equal(t, 3, i)

	i, err = c.LookupProject("hojack")
	require.NoError(t, err)
	require.Equal(t, 4, i)

	_, err = c.LookupProject("Main Street")
	require.ErrorIs(t, err, ErrUnknownProject)
	require.Contains(t, err.Error(), "more than one")

	_, err = c.LookupProject("")
	require.ErrorIs(t, err, ErrUnknownProject)
}

func TestCriterionIDString(t *testing.T) {
	require.Equal(t, "Readiness", Readiness.String())
	require.Equal(t, "CriterionID(42)", CriterionID(42).String())
	_, err := CriterionByID(CriterionID(NumCriteria))
	require.ErrorIs(t, err, ErrUnknownCriterion)
}
