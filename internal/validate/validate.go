// Package validate holds the stateless syntax checks applied to user
// input before it reaches the database.
package validate

import "regexp"

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email reports whether s looks like an email address. No DNS or
// mailbox verification is attempted.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone strips spaces, hyphens and parentheses, then requires 10 to 15
// ASCII digits. A leading + is not stripped, so E.164-style numbers fail.
func Phone(s string) bool {
	digits := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '-', '(', ')':
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
		digits++
	}
	return digits >= 10 && digits <= 15
}
