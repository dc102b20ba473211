// Package validation checks candidate strings before they enter the store.
package validation

import "net/url"

// IsValidURL reports whether the candidate parses as an absolute URL with
// both a scheme and an authority. Parse failures fold into false.
func IsValidURL(candidate string) bool {
	if candidate == "" {
		return false
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}
