package validation

import (
	"regexp"
	"strings"

	"taskhub/internal/errors"
)

// Check is a single predicate over a trimmed field value, paired with the
// message reported when it fails.
type Check struct {
	OK      func(string) bool
	Message string
}

// Rule validates one named field through an ordered chain of checks.
// Optional rules are skipped when the field value is empty after trimming.
type Rule struct {
	Field    string
	Optional bool
	Checks   []Check
}

// Evaluate runs every rule against values independently and aggregates all
// failures into a single ValidationError. Each field reports its first broken
// check. A nil return means the payload passed.
func Evaluate(rules []Rule, values map[string]string) error {
	verr := errors.NewValidationError()
	for _, rule := range rules {
		value := strings.TrimSpace(values[rule.Field])
		if rule.Optional && value == "" {
			continue
		}
		for _, check := range rule.Checks {
			if !check.OK(value) {
				verr.Add(rule.Field, check.Message)
				break
			}
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// NotEmpty fails on a value that is empty after trimming.
func NotEmpty(message string) Check {
	return Check{
		OK:      func(v string) bool { return v != "" },
		Message: message,
	}
}

// MaxLen fails on a value longer than n characters.
func MaxLen(n int, message string) Check {
	return Check{
		OK:      func(v string) bool { return len([]rune(v)) <= n },
		Message: message,
	}
}

// MinLen fails on a value shorter than n characters.
func MinLen(n int, message string) Check {
	return Check{
		OK:      func(v string) bool { return len([]rune(v)) >= n },
		Message: message,
	}
}

// OneOf fails on a value outside the allowed set.
func OneOf(allowed []string, message string) Check {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Check{
		OK: func(v string) bool {
			_, ok := set[v]
			return ok
		},
		Message: message,
	}
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email fails on a value that does not look like an email address.
func Email(message string) Check {
	return Check{
		OK:      emailRegex.MatchString,
		Message: message,
	}
}
