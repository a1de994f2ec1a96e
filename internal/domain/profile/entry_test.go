package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	for _, k := range Kinds {
		e := NewEntry(k)
		require.NotNil(t, e, "kind %s", k)
		assert.Equal(t, k, e.Kind())
		assert.True(t, k.Known())
	}
	assert.Nil(t, NewEntry("award"))
	assert.False(t, CollectionKind("award").Known())
}

func TestWithField(t *testing.T) {
	e, err := WithField(Project{}, "title", "Demo")
	require.NoError(t, err)
	e, err = WithField(e, "description", "x")
	require.NoError(t, err)
	assert.Equal(t, Project{Title: "Demo", Description: "x"}, e)

	e, err = WithField(Experience{Company: "Acme"}, "years", "2.5")
	require.NoError(t, err)
	assert.Equal(t, Experience{Company: "Acme", Years: 2.5}, e)

	e, err = WithField(EducationEntry(""), "entry", "BSc Physics")
	require.NoError(t, err)
	assert.Equal(t, EducationEntry("BSc Physics"), e)

	e, err = WithField(Certificate{}, "completion_date", "2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, Certificate{CompletionDate: "2023-05-01"}, e)
}

func TestWithField_Errors(t *testing.T) {
	orig := Experience{Company: "Acme", Years: 1}
	e, err := WithField(orig, "years", "many")
	assert.ErrorIs(t, err, ErrInvalidEntryValue)
	assert.Equal(t, orig, e)

	_, err = WithField(Project{}, "stack", "go")
	assert.ErrorIs(t, err, ErrUnknownEntryField)

	_, err = WithField(EducationEntry(""), "title", "x")
	assert.ErrorIs(t, err, ErrUnknownEntryField)
}

func TestProfileClone_DoesNotShareCollections(t *testing.T) {
	p := Empty()
	p.Skills = append(p.Skills, "Go")
	p.Projects = append(p.Projects, Project{Title: "a"})

	c := p.Clone()
	c.Skills[0] = "Rust"
	c.Projects[0].Title = "b"

	assert.Equal(t, SkillLabel("Go"), p.Skills[0])
	assert.Equal(t, "a", p.Projects[0].Title)
}

func TestProfileClone_KeepsNilAndEmptyApart(t *testing.T) {
	p := Profile{Bio: "x", Education: []string{}}

	c := p.Clone()
	assert.Nil(t, c.Skills)
	assert.Nil(t, c.Projects)
	assert.NotNil(t, c.Education)
	assert.Empty(t, c.Education)
	assert.Equal(t, p, c)
}
