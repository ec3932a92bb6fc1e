package rod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "  Two Sum  ", want: "Two Sum"},
		{name: "glyph", input: "Two Sum 🔍", want: "Two Sum"},
		{name: "inline svg", input: `Two Sum<svg width="16"><path d="M0"/></svg>`, want: "Two Sum"},
		{name: "only decoration", input: "🔍", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.input))
		})
	}
}

func TestPageContent_Text(t *testing.T) {
	tests := []struct {
		name    string
		content PageContent
		want    string
	}{
		{
			name: "all parts",
			content: PageContent{
				Title:       "Two Sum 🔍",
				Paragraphs:  []string{" Given an array. ", "", "  ", "Return indices."},
				Constraints: []string{"2 <= nums.length", " -10^9 <= nums[i] "},
			},
			want: "Two Sum Given an array. Return indices. 2 <= nums.length -10^9 <= nums[i]",
		},
		{
			name:    "title only",
			content: PageContent{Title: "Two Sum"},
			want:    "Two Sum",
		},
		{
			name:    "paragraphs only",
			content: PageContent{Paragraphs: []string{"a", "b"}},
			want:    "a b",
		},
		{
			name:    "blank constraint items are kept as separators",
			content: PageContent{Constraints: []string{"x", "", "y"}},
			want:    "x  y",
		},
		{
			name: "nothing",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.content.Text())
		})
	}
}

func TestSelectors_WithDefaults(t *testing.T) {
	got := Selectors{Title: "h1"}.withDefaults()

	assert.Equal(t, "h1", got.Title)
	assert.Equal(t, DefaultDescriptionSelector, got.Description)
	assert.Equal(t, DefaultConstraintsSelector, got.Constraints)
}
