package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficulty_IsKnown(t *testing.T) {
	assert.True(t, DifficultyEasy.IsKnown())
	assert.True(t, Difficulty("MEDIUM").IsKnown())
	assert.True(t, DifficultyHard.IsKnown())
	assert.False(t, Difficulty("").IsKnown())
	assert.False(t, Difficulty("Insane").IsKnown())
}

func TestProblem_HasDescription(t *testing.T) {
	assert.False(t, (&Problem{}).HasDescription())
	assert.False(t, (&Problem{Description: "  \n\t"}).HasDescription())
	assert.True(t, (&Problem{Description: "Given an array"}).HasDescription())
}

func TestProblem_Clone(t *testing.T) {
	orig := Problem{Title: "Two Sum", Topics: []string{"Array", "Hash Table"}}
	clone := orig.Clone()
	clone.Topics[0] = "Changed"

	assert.Equal(t, "Array", orig.Topics[0])
	assert.Equal(t, "Two Sum", clone.Title)

	empty := Problem{Title: "No topics"}.Clone()
	assert.Nil(t, empty.Topics)
}

func TestProblem_TopTopics(t *testing.T) {
	p := Problem{Topics: []string{"a", "b", "c", "d", "e"}}
	assert.Equal(t, []string{"a", "b", "c", "d"}, p.TopTopics(4))
	assert.Len(t, p.TopTopics(10), 5)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0))
	assert.Equal(t, 80, Percent(0.8))
	assert.Equal(t, 67, Percent(2.0/3.0))
	assert.Equal(t, 155, Percent(1.55))
	assert.Equal(t, 1, Percent(0.005))
}
