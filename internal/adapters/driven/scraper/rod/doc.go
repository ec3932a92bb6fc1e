// Package rod scrapes problem pages with a headless Chromium driven by go-rod.
//
// A page is reduced to one query string: the title, every non-empty
// paragraph of the statement, then each constraint list item, separated by
// single spaces. The CSS selectors default to the layout of the problem
// site the matcher was first built for and can be overridden in config.
package rod
