// Package github fetches the problem catalog from a file in a GitHub repository.
//
// The file is read through the contents API and decoded with the same rules
// as a local catalog file (JSON, or YAML for .yaml/.yml paths). Files over
// 1MB come back without inline content and are downloaded instead.
//
// Requests go through a RateLimiter that throttles proactively with a token
// bucket and backs off when the X-RateLimit headers report a low quota.
// A token is optional; anonymous access gets GitHub's much smaller quota.
package github
