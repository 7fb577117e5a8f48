package config

import "github.com/bmatcuk/doublestar/v4"

// IsQuiet reports whether a notification source matches any quiet
// pattern. Muted sources are still archived but surfaces skip
// displaying them; the store itself is never involved in suppression.
func (c *Config) IsQuiet(source string) bool {
	if source == "" {
		return false
	}
	for _, pattern := range c.Quiet {
		if ok, err := doublestar.Match(pattern, source); err == nil && ok {
			return true
		}
	}
	return false
}
