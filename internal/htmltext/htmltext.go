// Package htmltext turns HTML fragments and saved pages into plain text.
//
// Catalog datasets often carry problem descriptions as HTML, and a problem
// page saved from a browser is HTML too. Markup words such as "p" or "code"
// would otherwise leak into word-overlap scores.
package htmltext

import (
	"html"
	"regexp"
	"strings"
)

var (
	titleTag        = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Tag           = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	scriptTag       = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag        = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag     = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag         = regexp.MustCompile(`(?is)<head(\s[^>]*)?>.*?</head>`)
	svgTag          = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments    = regexp.MustCompile(`(?s)<!--.*?-->`)
	closeBlock      = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|ul|ol|tr|blockquote|pre|table|section|article)>`)
	openBlock       = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|ul|ol|tr|blockquote|pre|table|section|article)(\s[^>]*)?>`)
	lineBreaks      = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	allTags         = regexp.MustCompile(`<[^>]+>`)
	markupHint      = regexp.MustCompile(`(?i)<(/?(p|div|span|br|ul|ol|li|pre|code|strong|em|sup|sub|img|html|body|h[1-6])\b[^>]*|!--)`)
	multiSpaces     = regexp.MustCompile(`[ \t\p{Zs}]+`)
	searchIconGlyph = "\U0001F50D"
)

// IsHTML reports whether s contains common markup tags.
func IsHTML(s string) bool {
	return markupHint.MatchString(s)
}

// Text strips markup from s and returns its readable text, one block per line.
// Entities are decoded and blank lines dropped.
func Text(s string) string {
	s = scriptTag.ReplaceAllString(s, "")
	s = styleTag.ReplaceAllString(s, "")
	s = noscriptTag.ReplaceAllString(s, "")
	s = headTag.ReplaceAllString(s, "")
	s = svgTag.ReplaceAllString(s, "")
	s = htmlComments.ReplaceAllString(s, "")

	s = openBlock.ReplaceAllString(s, "\n")
	s = closeBlock.ReplaceAllString(s, "\n")
	s = lineBreaks.ReplaceAllString(s, "\n")
	s = allTags.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(multiSpaces.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Title returns the page title: the <title> element, else the first <h1>.
// The search-icon glyph some pages prepend is removed.
func Title(page string) string {
	for _, re := range []*regexp.Regexp{titleTag, h1Tag} {
		m := re.FindStringSubmatch(page)
		if len(m) < 2 {
			continue
		}
		t := html.UnescapeString(allTags.ReplaceAllString(m[1], ""))
		t = strings.TrimSpace(strings.ReplaceAll(t, searchIconGlyph, ""))
		if t != "" {
			return t
		}
	}
	return ""
}

// PageText builds query text from a whole page: its title followed by the
// body text, joined with single spaces. The title is not repeated when the
// body already opens with it.
func PageText(page string) string {
	title := Title(page)
	body := strings.ReplaceAll(Text(page), "\n", " ")
	if title != "" && !strings.HasPrefix(body, title) {
		body = title + " " + body
	}
	return strings.TrimSpace(body)
}
