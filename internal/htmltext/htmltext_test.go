package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"paragraph", "<p>Given an array</p>", true},
		{"code inline", "Return <code>nums</code>", true},
		{"self closing break", "line<br/>next", true},
		{"comment", "<!-- x -->", true},
		{"plain text", "Given an array of integers", false},
		{"comparison", "0 < i < n and a > b", false},
		{"generic type", "List<Integer>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHTML(tt.in))
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs become lines",
			in:   "<p>Given an array of integers <code>nums</code>.</p><p>Return indices.</p>",
			want: "Given an array of integers nums.\nReturn indices.",
		},
		{
			name: "entities decoded",
			in:   "<p>1 &lt;= nums.length &lt;= 10<sup>4</sup>&nbsp;&amp; more</p>",
			want: "1 <= nums.length <= 104 & more",
		},
		{
			name: "scripts styles and comments dropped",
			in:   "<style>p{}</style><script>var x=1</script><!-- note --><div>kept</div>",
			want: "kept",
		},
		{
			name: "list items",
			in:   "<ul><li>a</li><li>b</li></ul>",
			want: "a\nb",
		},
		{
			name: "header element is not the head section",
			in:   "<header>Top</header><p>Body</p>",
			want: "Top\nBody",
		},
		{
			name: "plain text unchanged",
			in:   "  Two   Sum  ",
			want: "Two Sum",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"title element", "<html><head><title>Two Sum - LeetCode</title></head></html>", "Two Sum - LeetCode"},
		{"falls back to h1", "<body><h1><span>Two Sum</span></h1></body>", "Two Sum"},
		{"empty title uses h1", "<title> </title><h1>Valid Parentheses</h1>", "Valid Parentheses"},
		{"strips search icon", "<h1>Two Sum \U0001F50D</h1>", "Two Sum"},
		{"none", "<p>text</p>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.in))
		})
	}
}

func TestPageText(t *testing.T) {
	page := `<html><head><title>Two Sum</title><style>.x{}</style></head>
<body><h2>Description</h2><p>Given an array of integers.</p>
<h2>Constraints</h2><ul><li>2 &lt;= n</li></ul></body></html>`

	assert.Equal(t, "Two Sum Description Given an array of integers. Constraints 2 <= n", PageText(page))
	assert.Empty(t, PageText(""))
}

func TestPageText_TitleNotRepeated(t *testing.T) {
	assert.Equal(t, "Two Sum Given nums.", PageText("<h1>Two Sum</h1><p>Given nums.</p>"))
	assert.Equal(t, "Two Sum", PageText("<title>Two Sum</title>"))
}
